package tabula

import (
	"bytes"
	"strconv"
	"sync"

	"github.com/mgutz/logxi/v1"
)

var logger log.Logger

// maxLookup is the max lookup index for predefined lookup tables
const maxLookup = 100

// itoaTab holds 0 => "0", 1 => "1" ... n => "n" to avoid strconv.Itoa
// when writing LIMIT and OFFSET.
var itoaTab = make([]string, maxLookup)

// placeholderTab holds "?", "?, ?", "?, ?, ?" ... for VALUES lists.
var placeholderTab = make([]string, maxLookup)

var bufPool = sync.Pool{
	New: func() interface{} {
		b := bytes.NewBuffer(make([]byte, 128))
		b.Reset()
		return b
	},
}

func getBuffer() *bytes.Buffer {
	return bufPool.Get().(*bytes.Buffer)
}

func putBuffer(b *bytes.Buffer) {
	b.Reset()
	bufPool.Put(b)
}

func init() {
	var placeholders bytes.Buffer
	for i := 0; i < maxLookup; i++ {
		itoaTab[i] = strconv.Itoa(i)
		placeholderTab[i] = placeholders.String()
		if i > 0 {
			placeholders.WriteString(", ")
		}
		placeholders.WriteRune('?')
	}

	logger = log.New("tabula")
}

func writeUint64(buf *bytes.Buffer, n uint64) {
	if n < maxLookup {
		buf.WriteString(itoaTab[int(n)])
		return
	}
	buf.WriteString(strconv.FormatUint(n, 10))
}

func writePlaceholders(buf *bytes.Buffer, n int) {
	if n < maxLookup {
		buf.WriteString(placeholderTab[n])
		return
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteRune('?')
	}
}

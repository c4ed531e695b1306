package tabula

import (
	"bytes"

	"github.com/dbkit/tabula/mysql"
)

// Dialect is the active SQLDialect.
var Dialect SQLDialect = mysql.New()

// SQLDialect represents a vendor specific SQL dialect.
type SQLDialect interface {
	// WriteStringLiteral writes an escaped, quoted string literal.
	WriteStringLiteral(buf *bytes.Buffer, value string)
	// WriteValue writes v as an escaped SQL literal.
	WriteValue(buf *bytes.Buffer, v interface{}) error
}

// Escape returns v as an escaped SQL literal in the active dialect.
func Escape(v interface{}) (string, error) {
	buf := getBuffer()
	defer putBuffer(buf)
	if err := Dialect.WriteValue(buf, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package tabula

import (
	"bytes"
)

const (
	kwWhere = "WHERE"
	kwAnd   = "AND"
	kwOr    = "OR"
)

type whereFragment struct {
	keyword   string
	condition string
	args      []interface{}
}

// predicate accumulates a WHERE clause. The first fragment is the seed,
// every later fragment is joined with AND or OR. Each fragment owns its
// arguments, so arguments are always in placeholder order.
type predicate struct {
	fragments []*whereFragment
}

// where seeds the clause. Any fragments accumulated before are discarded
// along with their arguments.
func (p *predicate) where(condition string, args []interface{}) {
	p.fragments = []*whereFragment{{keyword: kwWhere, condition: condition, args: copyArgs(args)}}
}

func (p *predicate) and(condition string, args []interface{}) {
	p.join(kwAnd, condition, args)
}

func (p *predicate) or(condition string, args []interface{}) {
	p.join(kwOr, condition, args)
}

// join appends a fragment, or seeds the clause when there is no seed yet.
func (p *predicate) join(keyword, condition string, args []interface{}) {
	if len(p.fragments) == 0 {
		p.where(condition, args)
		return
	}
	p.fragments = append(p.fragments, &whereFragment{keyword: keyword, condition: condition, args: copyArgs(args)})
}

// copyArgs detaches the stored arguments from the caller's slice.
func copyArgs(args []interface{}) []interface{} {
	if len(args) == 0 {
		return nil
	}
	return append([]interface{}(nil), args...)
}

func (p *predicate) isEmpty() bool {
	return len(p.fragments) == 0
}

// writeTo writes " WHERE a AND b ..." to buf and appends the arguments.
// Invariant: buf already holds the statement up to the predicate.
func (p *predicate) writeTo(buf *bytes.Buffer, args *[]interface{}) error {
	for _, f := range p.fragments {
		if countPlaceholders(f.condition) != len(f.args) {
			logger.Warn("Placeholder mismatch", "condition", f.condition, "args", len(f.args))
			return ErrArgumentMismatch
		}
		buf.WriteRune(' ')
		buf.WriteString(f.keyword)
		buf.WriteRune(' ')
		buf.WriteString(f.condition)
		*args = append(*args, f.args...)
	}
	return nil
}

// render returns the clause text and its arguments.
func (p *predicate) render() (string, []interface{}, error) {
	if p.isEmpty() {
		return "", nil, nil
	}
	buf := getBuffer()
	defer putBuffer(buf)
	var args []interface{}
	if err := p.writeTo(buf, &args); err != nil {
		return "", nil, err
	}
	// drop the leading space
	return buf.String()[1:], args, nil
}

// countPlaceholders counts ? placeholders which are not inside a quoted
// string or identifier.
func countPlaceholders(sql string) int {
	n := 0
	var quote rune
	escaped := false
	for _, r := range sql {
		if quote != 0 {
			if escaped {
				escaped = false
			} else if r == '\\' && quote != '`' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
			continue
		}
		switch r {
		case '\'', '"', '`':
			quote = r
		case '?':
			n++
		}
	}
	return n
}

package tabula

import (
	"sort"
)

// UpdateBuilder contains the clauses for an UPDATE statement
type UpdateBuilder struct {
	execer Execer

	table      string
	setClauses []*setClause
	pred       predicate
	orderBys   []string
	limitCount uint64
	limitValid bool
}

type setClause struct {
	column string
	value  interface{}
}

// NewUpdateBuilder creates a new UpdateBuilder for the given table
func NewUpdateBuilder(execer Execer, table string) *UpdateBuilder {
	return &UpdateBuilder{execer: execerOrNull(execer), table: table}
}

// Set appends the elements of the map as column/value pairs for the
// statement, ordered by column name.
func (b *UpdateBuilder) Set(values map[string]interface{}) *UpdateBuilder {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		b.SetColumn(col, values[col])
	}
	return b
}

// SetColumn appends a column/value pair for the statement
func (b *UpdateBuilder) SetColumn(column string, value interface{}) *UpdateBuilder {
	b.setClauses = append(b.setClauses, &setClause{column: column, value: value})
	return b
}

// Where seeds the WHERE clause, discarding any conditions added before.
func (b *UpdateBuilder) Where(condition string, args ...interface{}) *UpdateBuilder {
	b.pred.where(condition, args)
	return b
}

// And appends an AND condition, or seeds the WHERE clause if it is empty.
func (b *UpdateBuilder) And(condition string, args ...interface{}) *UpdateBuilder {
	b.pred.and(condition, args)
	return b
}

// Or appends an OR condition, or seeds the WHERE clause if it is empty.
func (b *UpdateBuilder) Or(condition string, args ...interface{}) *UpdateBuilder {
	b.pred.or(condition, args)
	return b
}

// OrderBy sets the ORDER BY expressions; overrides any existing ORDER BY
func (b *UpdateBuilder) OrderBy(ords ...string) *UpdateBuilder {
	b.orderBys = ords
	return b
}

// Limit sets a limit for the statement; overrides any existing LIMIT. A zero
// limit removes it.
func (b *UpdateBuilder) Limit(limit uint64) *UpdateBuilder {
	b.limitCount = limit
	b.limitValid = limit > 0
	return b
}

// ToSQL serialized the UpdateBuilder to a SQL string. SET values are
// written as escaped literals, only WHERE arguments are returned.
func (b *UpdateBuilder) ToSQL() (string, []interface{}, error) {
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}
	if len(b.setClauses) == 0 {
		return "", nil, ErrNoColumnsSet
	}

	buf := getBuffer()
	defer putBuffer(buf)
	var args []interface{}

	buf.WriteString("UPDATE ")
	buf.WriteString(b.table)
	buf.WriteString(" SET ")

	for i, c := range b.setClauses {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(c.column)
		buf.WriteString(" = ")
		if err := Dialect.WriteValue(buf, c.value); err != nil {
			return "", nil, err
		}
	}

	if err := b.pred.writeTo(buf, &args); err != nil {
		return "", nil, err
	}

	if len(b.orderBys) > 0 {
		buf.WriteString(" ORDER BY ")
		writeList(buf, b.orderBys)
	}

	if b.limitValid {
		buf.WriteString(" LIMIT ")
		writeUint64(buf, b.limitCount)
	}

	return buf.String(), args, nil
}

// Execute runs the UPDATE and returns the number of affected rows.
func (b *UpdateBuilder) Execute() (*Result, error) {
	return execData("update", b.execer, b.table, b)
}

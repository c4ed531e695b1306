package tabula

// DeleteBuilder contains the clauses for a DELETE statement
type DeleteBuilder struct {
	execer Execer

	table      string
	pred       predicate
	orderBys   []string
	limitCount uint64
	limitValid bool
}

// NewDeleteBuilder creates a new DeleteBuilder for the given table.
func NewDeleteBuilder(execer Execer, table string) *DeleteBuilder {
	return &DeleteBuilder{execer: execerOrNull(execer), table: table}
}

// Where seeds the WHERE clause, discarding any conditions added before.
func (b *DeleteBuilder) Where(condition string, args ...interface{}) *DeleteBuilder {
	b.pred.where(condition, args)
	return b
}

// And appends an AND condition, or seeds the WHERE clause if it is empty.
func (b *DeleteBuilder) And(condition string, args ...interface{}) *DeleteBuilder {
	b.pred.and(condition, args)
	return b
}

// Or appends an OR condition, or seeds the WHERE clause if it is empty.
func (b *DeleteBuilder) Or(condition string, args ...interface{}) *DeleteBuilder {
	b.pred.or(condition, args)
	return b
}

// OrderBy sets the ORDER BY expressions; overrides any existing ORDER BY
func (b *DeleteBuilder) OrderBy(ords ...string) *DeleteBuilder {
	b.orderBys = ords
	return b
}

// Limit sets a LIMIT clause for the statement; overrides any existing LIMIT.
// A zero limit removes it.
func (b *DeleteBuilder) Limit(limit uint64) *DeleteBuilder {
	b.limitCount = limit
	b.limitValid = limit > 0
	return b
}

// ToSQL serialized the DeleteBuilder to a SQL string
// It returns the string with placeholders and a slice of query arguments
func (b *DeleteBuilder) ToSQL() (string, []interface{}, error) {
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}

	buf := getBuffer()
	defer putBuffer(buf)
	var args []interface{}

	buf.WriteString("DELETE FROM ")
	buf.WriteString(b.table)

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

// Execute runs the DELETE. Result.RowsAffected holds the number of deleted
// rows.
func (b *DeleteBuilder) Execute() (*Result, error) {
	return execData("delete", b.execer, b.table, b)
}

package tabula

// RawBuilder carries a hand-written statement with ? placeholders. It is
// rendered and logged like the other builders.
type RawBuilder struct {
	execer Execer

	sql  string
	args []interface{}
}

// NewRawBuilder creates a new RawBuilder for the given SQL string and
// arguments
func NewRawBuilder(execer Execer, sql string, args ...interface{}) *RawBuilder {
	return &RawBuilder{execer: execerOrNull(execer), sql: sql, args: args}
}

// ToSQL returns the SQL and arguments. Placeholders outside quotes must
// match the arguments.
func (b *RawBuilder) ToSQL() (string, []interface{}, error) {
	if countPlaceholders(b.sql) != len(b.args) {
		return "", nil, ErrArgumentMismatch
	}
	return b.sql, b.args, nil
}

// Exec executes a statement which returns no rows.
func (b *RawBuilder) Exec() (*Result, error) {
	return execData("exec", b.execer, "", b)
}

// Query executes the statement and returns its rows.
func (b *RawBuilder) Query() ([]Row, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}
	rows, err := b.execer.Query(sql, args...)
	if err != nil {
		return nil, &ExecutionError{Op: "query", SQL: sql, Err: err}
	}
	return rows, nil
}

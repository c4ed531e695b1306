package tabula

// Builder interface is used to tie SQL generators to executors.
type Builder interface {
	// ToSQL builds the SQL and arguments from builder. It has no side effects
	// and returns identical output when called again.
	ToSQL() (string, []interface{}, error)
}

var nullExecer Execer = &disconnectedExecer{}

// disconnectedExecer is the execer assigned to builders created without a
// Table. They can render SQL but not execute it.
type disconnectedExecer struct{}

func (nop *disconnectedExecer) Exec(sql string, args ...interface{}) (*Result, error) {
	return nil, ErrNotConnected
}

func (nop *disconnectedExecer) Query(sql string, args ...interface{}) ([]Row, error) {
	return nil, ErrNotConnected
}

func execerOrNull(ex Execer) Execer {
	if ex == nil {
		return nullExecer
	}
	return ex
}

// execData renders b and executes it as a data statement.
func execData(op string, execer Execer, table string, b Builder) (*Result, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}

	res, err := execer.Exec(sql, args...)
	if err != nil {
		return nil, &ExecutionError{Op: op, Table: table, SQL: sql, Err: err}
	}
	if res == nil {
		res = &Result{}
	}

	logger.Info("Rows changed", "op", op, "table", table, "rows", res.RowsAffected)
	return res, nil
}

// execSchema executes a rendered DDL statement.
func execSchema(op string, execer Execer, table, sql string) error {
	if _, err := execer.Exec(sql); err != nil {
		serr := newSchemaError(op, table, sql, err)
		logger.Error("Schema change failed", "op", op, "table", table, "sql", sql, "missingReference", serr.MissingReference, "err", err)
		return serr
	}
	logger.Info("Schema changed", "op", op, "table", table)
	return nil
}

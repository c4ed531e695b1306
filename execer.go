package tabula

// Result serves the same purpose as sql.Result. Defining
// it for the package avoids tight coupling with database/sql.
type Result struct {
	LastInsertID int64
	RowsAffected int64
}

// Execer sends rendered SQL to the database. Arguments bind positionally to
// the ? placeholders in sql.
type Execer interface {
	// Exec executes a statement which returns no rows.
	Exec(sql string, args ...interface{}) (*Result, error)
	// Query executes a statement and returns its rows unmodified.
	Query(sql string, args ...interface{}) ([]Row, error)
}

// Connection is a database handle tables are bound to.
type Connection interface {
	// Execer returns the live executor or nil when the handle is not
	// connected.
	Execer() Execer
}

package tabula

// DropTableBuilder renders a DROP TABLE statement.
type DropTableBuilder struct {
	execer   Execer
	table    string
	ifExists bool
}

// NewDropTableBuilder creates a new DropTableBuilder for table.
func NewDropTableBuilder(execer Execer, table string) *DropTableBuilder {
	return &DropTableBuilder{execer: execerOrNull(execer), table: table}
}

// IfExists adds IF EXISTS to the statement.
func (b *DropTableBuilder) IfExists() *DropTableBuilder {
	b.ifExists = true
	return b
}

// ToSQL renders the statement.
func (b *DropTableBuilder) ToSQL() (string, []interface{}, error) {
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}
	if b.ifExists {
		return "DROP TABLE IF EXISTS " + b.table, nil, nil
	}
	return "DROP TABLE " + b.table, nil, nil
}

// Exec drops the table. Failures are always returned as *SchemaError so a
// nil error means the table is gone.
func (b *DropTableBuilder) Exec() error {
	sql, _, err := b.ToSQL()
	if err != nil {
		return err
	}
	return execSchema("drop table", b.execer, b.table, sql)
}

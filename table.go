package tabula

// Table binds a table name to a connection handle and hands out builders
// for it. Every factory checks the connection first.
type Table struct {
	conn Connection
	name string
}

// NewTable creates a Table. conn may be nil, in which case every factory
// returns ErrNotConnected.
func NewTable(conn Connection, name string) *Table {
	return &Table{conn: conn, name: name}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// ensureConnection returns the live Execer or ErrNotConnected.
func (t *Table) ensureConnection() (Execer, error) {
	if t.conn == nil {
		return nil, ErrNotConnected
	}
	ex := t.conn.Execer()
	if ex == nil {
		return nil, ErrNotConnected
	}
	return ex, nil
}

// Select creates a SelectBuilder for the table.
func (t *Table) Select(columns ...string) (*SelectBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewSelectBuilder(ex, t.name).Columns(columns...), nil
}

// Insert creates an InsertBuilder for the table.
func (t *Table) Insert() (*InsertBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewInsertBuilder(ex, t.name), nil
}

// Update creates an UpdateBuilder for the table.
func (t *Table) Update() (*UpdateBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewUpdateBuilder(ex, t.name), nil
}

// Delete creates a DeleteBuilder for the table.
func (t *Table) Delete() (*DeleteBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewDeleteBuilder(ex, t.name), nil
}

// CreateTable creates a CreateTableBuilder for the table.
func (t *Table) CreateTable() (*CreateTableBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewCreateTableBuilder(ex, t.name), nil
}

// AlterTable creates an AlterTableBuilder for the table.
func (t *Table) AlterTable() (*AlterTableBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewAlterTableBuilder(ex, t.name), nil
}

// DropTable creates a DropTableBuilder for the table.
func (t *Table) DropTable() (*DropTableBuilder, error) {
	ex, err := t.ensureConnection()
	if err != nil {
		return nil, err
	}
	return NewDropTableBuilder(ex, t.name), nil
}

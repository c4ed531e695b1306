package tabula

type columnDef struct {
	name string
	spec ColumnSpec
}

// CreateTableBuilder contains the column definitions for a CREATE TABLE
// statement. Columns render in the order they were added.
type CreateTableBuilder struct {
	execer Execer

	table       string
	columns     []*columnDef
	ifNotExists bool
}

// NewCreateTableBuilder creates a new CreateTableBuilder for table.
func NewCreateTableBuilder(execer Execer, table string) *CreateTableBuilder {
	return &CreateTableBuilder{execer: execerOrNull(execer), table: table}
}

// Column appends a column definition.
func (b *CreateTableBuilder) Column(name string, spec ColumnSpec) *CreateTableBuilder {
	b.columns = append(b.columns, &columnDef{name: name, spec: spec})
	return b
}

// IfNotExists adds IF NOT EXISTS to the statement.
func (b *CreateTableBuilder) IfNotExists() *CreateTableBuilder {
	b.ifNotExists = true
	return b
}

// ToSQL validates the definitions and renders the statement. DDL has no
// arguments.
func (b *CreateTableBuilder) ToSQL() (string, []interface{}, error) {
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}
	if len(b.columns) == 0 {
		return "", nil, ErrNoColumns
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString("CREATE TABLE ")
	if b.ifNotExists {
		buf.WriteString("IF NOT EXISTS ")
	}
	buf.WriteString(b.table)
	buf.WriteString(" (")

	var foreignKeys []*columnDef
	hasPrimary := false
	for i, col := range b.columns {
		spec := col.spec
		sqlType, err := MapType(spec.Type)
		if err != nil {
			return "", nil, err
		}
		if spec.PrimaryKey {
			if hasPrimary {
				return "", nil, ErrMultiplePrimaryKeys
			}
			hasPrimary = true
		}
		if spec.AutoIncrement && (!spec.PrimaryKey || spec.Type != Number) {
			return "", nil, ErrInvalidAutoIncrement
		}

		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(col.name)
		buf.WriteRune(' ')
		buf.WriteString(sqlType)
		if spec.PrimaryKey {
			buf.WriteString(" PRIMARY KEY")
			if spec.AutoIncrement {
				buf.WriteString(" AUTO_INCREMENT")
			}
		}
		if spec.NotNull {
			buf.WriteString(" NOT NULL")
		}

		if spec.ForeignKey != nil {
			foreignKeys = append(foreignKeys, col)
		}
	}

	// foreign keys trail every column definition
	for _, col := range foreignKeys {
		fk := col.spec.ForeignKey
		buf.WriteString(", FOREIGN KEY (")
		buf.WriteString(col.name)
		buf.WriteString(") REFERENCES ")
		buf.WriteString(fk.References)
		buf.WriteRune('(')
		buf.WriteString(fk.ReferencedColumn)
		buf.WriteRune(')')
	}
	buf.WriteRune(')')

	return buf.String(), nil, nil
}

// Exec creates the table. Failures are returned as *SchemaError.
func (b *CreateTableBuilder) Exec() error {
	sql, _, err := b.ToSQL()
	if err != nil {
		return err
	}
	return execSchema("create table", b.execer, b.table, sql)
}

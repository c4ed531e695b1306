package tabula

// AlterTableBuilder renders and executes single-statement ALTER TABLE
// changes. Each operation is independent.
type AlterTableBuilder struct {
	execer Execer
	table  string
}

// NewAlterTableBuilder creates a new AlterTableBuilder for table.
func NewAlterTableBuilder(execer Execer, table string) *AlterTableBuilder {
	return &AlterTableBuilder{execer: execerOrNull(execer), table: table}
}

// AddColumnSQL renders ALTER TABLE t ADD column type.
func (b *AlterTableBuilder) AddColumnSQL(column string, tag TypeTag) (string, error) {
	return b.render(" ADD ", column, tag, true)
}

// DropColumnSQL renders ALTER TABLE t DROP COLUMN column.
func (b *AlterTableBuilder) DropColumnSQL(column string) (string, error) {
	return b.render(" DROP COLUMN ", column, "", false)
}

// ModifyColumnSQL renders ALTER TABLE t MODIFY COLUMN column type.
func (b *AlterTableBuilder) ModifyColumnSQL(column string, tag TypeTag) (string, error) {
	return b.render(" MODIFY COLUMN ", column, tag, true)
}

// AddColumn adds a column of the given type.
func (b *AlterTableBuilder) AddColumn(column string, tag TypeTag) error {
	sql, err := b.AddColumnSQL(column, tag)
	if err != nil {
		return err
	}
	return execSchema("add column", b.execer, b.table, sql)
}

// DropColumn removes a column.
func (b *AlterTableBuilder) DropColumn(column string) error {
	sql, err := b.DropColumnSQL(column)
	if err != nil {
		return err
	}
	return execSchema("drop column", b.execer, b.table, sql)
}

// ModifyColumn changes the type of a column.
func (b *AlterTableBuilder) ModifyColumn(column string, tag TypeTag) error {
	sql, err := b.ModifyColumnSQL(column, tag)
	if err != nil {
		return err
	}
	return execSchema("modify column", b.execer, b.table, sql)
}

func (b *AlterTableBuilder) render(action, column string, tag TypeTag, typed bool) (string, error) {
	if len(b.table) == 0 {
		return "", ErrNoTable
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString("ALTER TABLE ")
	buf.WriteString(b.table)
	buf.WriteString(action)
	buf.WriteString(column)
	if typed {
		sqlType, err := MapType(tag)
		if err != nil {
			return "", err
		}
		buf.WriteRune(' ')
		buf.WriteString(sqlType)
	}
	return buf.String(), nil
}

package tabula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableToSql(t *testing.T) {
	sql, args, err := NewCreateTableBuilder(nil, "tbl").
		Column("id", ColumnSpec{Type: Number, PrimaryKey: true, AutoIncrement: true}).
		Column("name", ColumnSpec{Type: String, NotNull: true}).
		ToSQL()
	assert.NoError(t, err)
	assert.Equal(t, "CREATE TABLE tbl (id INT PRIMARY KEY AUTO_INCREMENT, name VARCHAR(255) NOT NULL)", sql)
	assert.Nil(t, args)
}

func TestCreateTableForeignKeysTrail(t *testing.T) {
	sql, _, err := NewCreateTableBuilder(nil, "posts").
		IfNotExists().
		Column("id", ColumnSpec{Type: Number, PrimaryKey: true}).
		Column("user_id", ColumnSpec{Type: Number, NotNull: true, ForeignKey: &ForeignKey{References: "users", ReferencedColumn: "id"}}).
		Column("published", ColumnSpec{Type: Boolean}).
		Column("category", ColumnSpec{Type: String, ForeignKey: &ForeignKey{References: "categories", ReferencedColumn: "code"}}).
		Column("created_at", ColumnSpec{Type: Date}).
		ToSQL()
	assert.NoError(t, err)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS posts (id INT PRIMARY KEY, user_id INT NOT NULL, published TINYINT(1), "+
		"category VARCHAR(255), created_at DATETIME, FOREIGN KEY (user_id) REFERENCES users(id), "+
		"FOREIGN KEY (category) REFERENCES categories(code))", sql)
}

func TestCreateTableValidation(t *testing.T) {
	tests := []struct {
		name    string
		columns []ColumnSpec
		err     error
	}{
		{"no columns", nil, ErrNoColumns},
		{"two primary keys", []ColumnSpec{{Type: Number, PrimaryKey: true}, {Type: Number, PrimaryKey: true}}, ErrMultiplePrimaryKeys},
		{"auto increment without key", []ColumnSpec{{Type: Number, AutoIncrement: true}}, ErrInvalidAutoIncrement},
		{"auto increment on string", []ColumnSpec{{Type: String, PrimaryKey: true, AutoIncrement: true}}, ErrInvalidAutoIncrement},
	}
	for _, test := range tests {
		b := NewCreateTableBuilder(nil, "t")
		for i, spec := range test.columns {
			b.Column("c"+itoaTab[i], spec)
		}
		_, _, err := b.ToSQL()
		assert.Equal(t, test.err, err, test.name)
	}
}

func TestCreateTableUnsupportedType(t *testing.T) {
	ex := &recordingExecer{}
	err := NewCreateTableBuilder(ex, "t").
		Column("id", ColumnSpec{Type: Number}).
		Column("doc", ColumnSpec{Type: "json"}).
		Exec()

	var ute *UnsupportedTypeError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, TypeTag("json"), ute.Tag)
	assert.Empty(t, ex.calls)
}

func TestCreateTableExec(t *testing.T) {
	ex := &recordingExecer{}
	err := NewCreateTableBuilder(ex, "t").Column("id", ColumnSpec{Type: Number}).Exec()
	require.NoError(t, err)
	require.Len(t, ex.calls, 1)
	assert.Equal(t, "CREATE TABLE t (id INT)", ex.calls[0].sql)
	assert.Empty(t, ex.calls[0].args)
}

func TestCreateTableMissingReference(t *testing.T) {
	dbErr := &DatabaseError{Code: 1824, Message: "Failed to open the referenced table 'users'"}
	ex := &recordingExecer{failAt: 1, err: dbErr}
	err := NewCreateTableBuilder(ex, "posts").
		Column("user_id", ColumnSpec{Type: Number, ForeignKey: &ForeignKey{References: "users", ReferencedColumn: "id"}}).
		Exec()

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.MissingReference)
	assert.Equal(t, "create table", se.Op)
	assert.Equal(t, "posts", se.Table)
	assert.True(t, errors.Is(err, dbErr))
	assert.Contains(t, err.Error(), "referenced table or column does not exist")
}

func TestCreateTableGenericFailure(t *testing.T) {
	dbErr := &DatabaseError{Code: 1050, Message: "Table 't' already exists"}
	ex := &recordingExecer{failAt: 1, err: dbErr}
	err := NewCreateTableBuilder(ex, "t").Column("id", ColumnSpec{Type: Number}).Exec()

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.False(t, se.MissingReference)
	assert.Equal(t, "create table t: Error 1050: Table 't' already exists", err.Error())
}

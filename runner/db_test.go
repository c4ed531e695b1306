package runner

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbkit/tabula"
)

func TestExec(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO users (name) VALUES (?)").
		WithArgs("Al").
		WillReturnResult(sqlmock.NewResult(7, 1))

	res, err := db.Exec("INSERT INTO users (name) VALUES (?)", "Al")
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.LastInsertID)
	assert.Equal(t, int64(1), res.RowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryConvertsBytes(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(int64(1), []byte("Al")).
		AddRow(int64(2), nil)
	mock.ExpectQuery("SELECT id, name FROM users WHERE id > ?").WithArgs(0).WillReturnRows(rows)

	result, err := db.Query("SELECT id, name FROM users WHERE id > ?", 0)
	require.NoError(t, err)
	assert.Equal(t, []tabula.Row{
		{"id": int64(1), "name": "Al"},
		{"id": int64(2), "name": nil},
	}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecClassifiesMySQLErrors(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("DROP TABLE users").
		WillReturnError(&mysql.MySQLError{Number: 1051, Message: "Unknown table 'users'"})

	_, err := db.Exec("DROP TABLE users")
	var de *tabula.DatabaseError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 1051, de.Code)
	assert.Equal(t, "Unknown table 'users'", de.Message)
}

func TestExecPassesOtherErrors(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("bad connection")
	mock.ExpectExec("DELETE FROM users").WillReturnError(boom)

	_, err := db.Exec("DELETE FROM users")
	assert.Equal(t, boom, err)
}

func TestTableThroughDB(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("CREATE TABLE posts (id INT PRIMARY KEY AUTO_INCREMENT, user_id INT, FOREIGN KEY (user_id) REFERENCES users(id))").
		WillReturnError(&mysql.MySQLError{Number: 1824, Message: "Failed to open the referenced table 'users'"})

	b, err := db.Table("posts").CreateTable()
	require.NoError(t, err)
	err = b.
		Column("id", tabula.ColumnSpec{Type: tabula.Number, PrimaryKey: true, AutoIncrement: true}).
		Column("user_id", tabula.ColumnSpec{Type: tabula.Number, ForeignKey: &tabula.ForeignKey{References: "users", ReferencedColumn: "id"}}).
		Exec()

	var se *tabula.SchemaError
	require.True(t, errors.As(err, &se))
	assert.True(t, se.MissingReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateThroughDB(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE users SET age = 99 WHERE age = ?").
		WithArgs(18).
		WillReturnResult(sqlmock.NewResult(0, 4))

	b, err := db.Table("users").Update()
	require.NoError(t, err)
	res, err := b.Set(map[string]interface{}{"age": 99}).Where("age = ?", 18).Execute()
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.RowsAffected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosedDBIsNotConnected(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	assert.NotNil(t, db.Execer())
	require.NoError(t, db.Close())
	assert.Nil(t, db.Execer())

	_, err := db.Table("users").Select()
	assert.Equal(t, tabula.ErrNotConnected, err)

	var nilDB *DB
	assert.Nil(t, nilDB.Execer())
}

func TestRawSQL(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT(*) AS n FROM users WHERE age > ?").
		WithArgs(21).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(int64(3)))

	rows, err := db.SQL("SELECT COUNT(*) AS n FROM users WHERE age > ?", 21).Query()
	require.NoError(t, err)
	assert.Equal(t, []tabula.Row{{"n": int64(3)}}, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

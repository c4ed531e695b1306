package tabula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDropTableToSql(t *testing.T) {
	sql, _, err := NewDropTableBuilder(nil, "users").ToSQL()
	assert.NoError(t, err)
	assert.Equal(t, "DROP TABLE users", sql)

	sql, _, err = NewDropTableBuilder(nil, "users").IfExists().ToSQL()
	assert.NoError(t, err)
	assert.Equal(t, "DROP TABLE IF EXISTS users", sql)
}

func TestDropTableExec(t *testing.T) {
	ex := &recordingExecer{}
	require.NoError(t, NewDropTableBuilder(ex, "users").Exec())
	require.Len(t, ex.calls, 1)
	assert.Equal(t, "DROP TABLE users", ex.calls[0].sql)
}

func TestDropTableFailureIsReturned(t *testing.T) {
	dbErr := &DatabaseError{Code: 1051, Message: "Unknown table 'users'"}
	ex := &recordingExecer{failAt: 1, err: dbErr}
	err := NewDropTableBuilder(ex, "users").Exec()

	var se *SchemaError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "drop table", se.Op)
	assert.Equal(t, "DROP TABLE users", se.SQL)
	assert.False(t, se.MissingReference)
}

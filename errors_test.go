package tabula

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissingReference(t *testing.T) {
	tests := []struct {
		err      error
		expected bool
	}{
		{nil, false},
		{errors.New("boom"), false},
		{&DatabaseError{Code: 1050}, false},
		{&DatabaseError{Code: 1215}, true},
		{&DatabaseError{Code: 1822}, true},
		{&DatabaseError{Code: 1824}, true},
		{&DatabaseError{Code: 3734}, true},
		{fmt.Errorf("wrapped: %w", &DatabaseError{Code: 1824}), true},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, IsMissingReference(test.err), fmt.Sprint(test.err))
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "database connection not established", ErrNotConnected.Error())

	err := &InconsistentRecordShapeError{Index: 1, Expected: []string{"a", "b"}, Actual: []string{"a"}}
	assert.Equal(t, "record 1 has columns (a), expected (a, b)", err.Error())

	ee := &ExecutionError{Op: "insert", Table: "users", Err: errors.New("boom")}
	assert.Equal(t, "insert users: boom", ee.Error())
}

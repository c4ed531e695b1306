package tabula

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInterpolate(t *testing.T) {
	at := time.Date(2021, 6, 7, 8, 9, 10, 500000000, time.UTC)
	name := "Al"
	var nilName *string

	tests := []struct {
		sql      string
		args     []interface{}
		expected string
	}{
		{"SELECT 1", nil, "SELECT 1"},
		{"a = ?", []interface{}{1}, "a = 1"},
		{"a = ? AND b = ?", []interface{}{"x", -2.5}, "a = 'x' AND b = -2.5"},
		{"a IN ?", []interface{}{[]int{1, 2, 3}}, "a IN (1, 2, 3)"},
		{"a IN ?", []interface{}{[]string{"x", "y"}}, "a IN ('x', 'y')"},
		{"a = ?", []interface{}{nil}, "a = NULL"},
		{"a = ?", []interface{}{&name}, "a = 'Al'"},
		{"a = ?", []interface{}{nilName}, "a = NULL"},
		{"a = ?", []interface{}{[]byte{0xde, 0xad}}, "a = X'dead'"},
		{"a = ?", []interface{}{at}, "a = '2021-06-07 08:09:10.5'"},
		{"a = ?", []interface{}{false}, "a = FALSE"},
		{"a = '?' AND b = ?", []interface{}{uint8(7)}, "a = '?' AND b = 7"},
		{"`c?` = ?", []interface{}{"it's"}, "`c?` = 'it''s'"},
	}
	for _, test := range tests {
		s, err := Interpolate(test.sql, test.args)
		assert.NoError(t, err, test.sql)
		assert.Equal(t, test.expected, s)
	}
}

func TestInterpolateMismatch(t *testing.T) {
	_, err := Interpolate("a = ? AND b = ?", []interface{}{1})
	assert.Equal(t, ErrArgumentMismatch, err)

	_, err = Interpolate("a = ?", []interface{}{1, 2})
	assert.Equal(t, ErrArgumentMismatch, err)

	_, err = Interpolate("a = ?", nil)
	assert.Equal(t, ErrArgumentMismatch, err)

	_, err = Interpolate("", []interface{}{1})
	assert.Equal(t, ErrArgumentMismatch, err)
}

func TestMustInterpolatePanics(t *testing.T) {
	assert.Panics(t, func() { MustInterpolate("a = ?", nil) })
	assert.Equal(t, "a = 1", MustInterpolate("a = ?", []interface{}{1}))
}

func TestInterpolateBuilder(t *testing.T) {
	s, err := InterpolateBuilder(NewSelectBuilder(nil, "users").Where("name = ?", "O'Neil").Limit(1))
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM users WHERE name = 'O''Neil' LIMIT 1`, s)
}

func TestEscape(t *testing.T) {
	s, err := Escape("a\nb")
	assert.NoError(t, err)
	assert.Equal(t, `'a\nb'`, s)

	_, err = Escape(map[string]int{})
	assert.Error(t, err)
}

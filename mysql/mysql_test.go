package mysql

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteStringLiteral(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"", `''`},
		{"plain", `'plain'`},
		{"it's", `'it''s'`},
		{"'", `''''`},
		{"o'neil's", `'o''neil''s'`},
		{`say "hi"`, `'say \"hi\"'`},
		{`back\slash`, `'back\\slash'`},
		{"a\nb\rc", `'a\nb\rc'`},
		{"nul\x00", `'nul\0'`},
		{"ctrl\x1aZ", `'ctrl\ZZ'`},
		{"unicodé", `'unicodé'`},
	}
	my := New()
	for _, test := range tests {
		var buf bytes.Buffer
		my.WriteStringLiteral(&buf, test.in)
		assert.Equal(t, test.expected, buf.String(), test.in)
	}
}

func TestWriteValue(t *testing.T) {
	n := 5
	tests := []struct {
		in       interface{}
		expected string
	}{
		{nil, "NULL"},
		{42, "42"},
		{int8(-3), "-3"},
		{uint64(18446744073709551615), "18446744073709551615"},
		{float32(0.1), "0.1"},
		{3.25, "3.25"},
		{true, "TRUE"},
		{"x", "'x'"},
		{&n, "5"},
		{[]byte("ab"), "X'6162'"},
		{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "'2020-01-02 03:04:05'"},
		{sql.NullString{String: "v", Valid: true}, "'v'"},
		{sql.NullInt64{}, "NULL"},
		{[]int64{1, 2}, "(1, 2)"},
	}
	my := New()
	for _, test := range tests {
		var buf bytes.Buffer
		err := my.WriteValue(&buf, test.in)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, buf.String())
	}
}

func TestWriteValueErrors(t *testing.T) {
	tests := []struct {
		in  interface{}
		err error
	}{
		{"\xff", ErrNotUTF8},
		{[]int{}, ErrInvalidSliceLength},
		{[]float64{1}, ErrInvalidSliceValue},
		{struct{}{}, ErrInvalidValue},
		{map[string]int{}, ErrInvalidValue},
	}
	my := New()
	for _, test := range tests {
		var buf bytes.Buffer
		assert.Equal(t, test.err, my.WriteValue(&buf, test.in))
	}
}

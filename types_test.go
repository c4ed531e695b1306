package tabula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		tag      TypeTag
		expected string
	}{
		{String, "VARCHAR(255)"},
		{Number, "INT"},
		{Boolean, "TINYINT(1)"},
		{Date, "DATETIME"},
	}
	for _, test := range tests {
		sqlType, err := MapType(test.tag)
		assert.NoError(t, err)
		assert.Equal(t, test.expected, sqlType)
	}
}

func TestMapTypeUnsupported(t *testing.T) {
	_, err := MapType("json")
	var ute *UnsupportedTypeError
	assert.True(t, errors.As(err, &ute))
	assert.Equal(t, TypeTag("json"), ute.Tag)
	assert.Equal(t, `unsupported type: "json"`, err.Error())
}

func TestRecordColumnsAndValues(t *testing.T) {
	rec := Record{{"name", "Al"}, {"age", 30}}
	assert.Equal(t, []string{"name", "age"}, rec.Columns())
	assert.Equal(t, []interface{}{"Al", 30}, rec.Values())
}

// Package mysql is the MySQL dialect: string literal and value escaping for
// SQL text which is not sent with placeholders.
//
// Single quotes are doubled, which is valid in every sql_mode. Backslash and
// control character escapes assume NO_BACKSLASH_ESCAPES is off, the server
// default.
package mysql

import (
	"bytes"
	"database/sql/driver"
	"encoding/hex"
	"errors"
	"reflect"
	"strconv"
	"time"
	"unicode/utf8"
)

var (
	// ErrNotUTF8 ...
	ErrNotUTF8 = errors.New("invalid UTF-8")
	// ErrInvalidSliceLength ...
	ErrInvalidSliceLength = errors.New("length of slice is 0. length must be >= 1")
	// ErrInvalidSliceValue ...
	ErrInvalidSliceValue = errors.New("trying to escape invalid slice value")
	// ErrInvalidValue ...
	ErrInvalidValue = errors.New("trying to escape invalid value")
)

// TimeFormat is the layout used for DATETIME literals. Fractional seconds
// are written only when present.
const TimeFormat = "2006-01-02 15:04:05.999999"

var typeOfTime = reflect.TypeOf(time.Time{})

// MySQL is the MySQL dialect.
type MySQL struct{}

// New returns a new MySQL dialect.
func New() *MySQL {
	return &MySQL{}
}

// WriteStringLiteral writes val quoted with the escapes of
// mysql_real_escape_string, except that a single quote is doubled.
func (my *MySQL) WriteStringLiteral(buf *bytes.Buffer, val string) {
	buf.WriteRune('\'')
	for _, char := range val {
		switch char {
		case 0:
			buf.WriteString(`\0`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\\':
			buf.WriteString(`\\`)
		case '\'':
			buf.WriteString(`''`)
		case '"':
			buf.WriteString(`\"`)
		case '\x1a':
			buf.WriteString(`\Z`)
		default:
			buf.WriteRune(char)
		}
	}
	buf.WriteRune('\'')
}

// WriteValue writes v as a SQL literal. Supported values are nil, integers,
// floats, booleans, UTF-8 strings, []byte, time.Time, pointers to those,
// driver.Valuers and non-empty slices of integers or strings.
func (my *MySQL) WriteValue(buf *bytes.Buffer, v interface{}) error {
	if valuer, ok := v.(driver.Valuer); ok {
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
			buf.WriteString("NULL")
			return nil
		}
		val, err := valuer.Value()
		if err != nil {
			return err
		}
		v = val
	}

	if v == nil {
		buf.WriteString("NULL")
		return nil
	}

	if b, ok := v.([]byte); ok {
		buf.WriteString("X'")
		buf.WriteString(hex.EncodeToString(b))
		buf.WriteRune('\'')
		return nil
	}

	valueOfV := reflect.ValueOf(v)
	kindOfV := valueOfV.Kind()

	// Dereference pointer values
	if kindOfV == reflect.Ptr {
		if valueOfV.IsNil() {
			buf.WriteString("NULL")
			return nil
		}
		return my.WriteValue(buf, valueOfV.Elem().Interface())
	}

	switch {
	case kindOfV == reflect.String:
		s := valueOfV.String()
		if !utf8.ValidString(s) {
			return ErrNotUTF8
		}
		my.WriteStringLiteral(buf, s)
	case isInt(kindOfV):
		buf.WriteString(strconv.FormatInt(valueOfV.Int(), 10))
	case isUint(kindOfV):
		buf.WriteString(strconv.FormatUint(valueOfV.Uint(), 10))
	case isFloat(kindOfV):
		bitSize := 64
		if kindOfV == reflect.Float32 {
			bitSize = 32
		}
		buf.WriteString(strconv.FormatFloat(valueOfV.Float(), 'f', -1, bitSize))
	case kindOfV == reflect.Bool:
		if valueOfV.Bool() {
			buf.WriteString("TRUE")
		} else {
			buf.WriteString("FALSE")
		}
	case kindOfV == reflect.Struct:
		if valueOfV.Type() != typeOfTime {
			return ErrInvalidValue
		}
		t := valueOfV.Interface().(time.Time)
		buf.WriteRune('\'')
		buf.WriteString(t.Format(TimeFormat))
		buf.WriteRune('\'')
	case kindOfV == reflect.Slice:
		return my.writeSlice(buf, valueOfV)
	default:
		return ErrInvalidValue
	}
	return nil
}

// writeSlice writes a parenthesized list for use with IN.
func (my *MySQL) writeSlice(buf *bytes.Buffer, valueOfV reflect.Value) error {
	sliceLen := valueOfV.Len()
	if sliceLen == 0 {
		return ErrInvalidSliceLength
	}

	kindOfSubtype := valueOfV.Type().Elem().Kind()
	if !isInt(kindOfSubtype) && !isUint(kindOfSubtype) && kindOfSubtype != reflect.String {
		return ErrInvalidSliceValue
	}

	buf.WriteRune('(')
	for i := 0; i < sliceLen; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		if err := my.WriteValue(buf, valueOfV.Index(i).Interface()); err != nil {
			return err
		}
	}
	buf.WriteRune(')')
	return nil
}

func isUint(k reflect.Kind) bool {
	return k == reflect.Uint ||
		k == reflect.Uint8 ||
		k == reflect.Uint16 ||
		k == reflect.Uint32 ||
		k == reflect.Uint64
}

func isInt(k reflect.Kind) bool {
	return k == reflect.Int ||
		k == reflect.Int8 ||
		k == reflect.Int16 ||
		k == reflect.Int32 ||
		k == reflect.Int64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 ||
		k == reflect.Float64
}

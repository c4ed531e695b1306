package tabula

// Interpolate takes a SQL string with ? placeholders and a list of arguments
// to replace them with, escaping each through the active Dialect. Returns a
// blank string and error if the number of placeholders does not match the
// number of arguments. Placeholders inside quoted strings and identifiers are
// left alone.
//
// The result is meant for logging, cache keys and dry runs. Statements are
// always executed with placeholders.
func Interpolate(sql string, vals []interface{}) (string, error) {
	lenVals := len(vals)
	if sql == "" {
		if lenVals != 0 {
			return "", ErrArgumentMismatch
		}
		return "", nil
	}
	if lenVals == 0 {
		if countPlaceholders(sql) != 0 {
			return "", ErrArgumentMismatch
		}
		return sql, nil
	}

	buf := getBuffer()
	defer putBuffer(buf)

	pos := 0
	var quote rune
	escaped := false
	for _, r := range sql {
		if quote != 0 {
			if escaped {
				escaped = false
			} else if r == '\\' && quote != '`' {
				escaped = true
			} else if r == quote {
				quote = 0
			}
			buf.WriteRune(r)
			continue
		}

		switch r {
		case '\'', '"', '`':
			quote = r
		case '?':
			if pos >= lenVals {
				return "", ErrArgumentMismatch
			}
			if err := Dialect.WriteValue(buf, vals[pos]); err != nil {
				return "", err
			}
			pos++
			continue
		}
		buf.WriteRune(r)
	}

	if pos != lenVals {
		return "", ErrArgumentMismatch
	}
	return buf.String(), nil
}

// MustInterpolate interpolates or panics.
func MustInterpolate(sql string, vals []interface{}) string {
	s, err := Interpolate(sql, vals)
	if err != nil {
		panic(err)
	}
	return s
}

// InterpolateBuilder renders b and interpolates its arguments.
func InterpolateBuilder(b Builder) (string, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return "", err
	}
	return Interpolate(sql, args)
}

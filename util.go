package tabula

import "bytes"

// NameMapping is the routine to use when mapping struct fields without a db
// tag to column names.
var NameMapping = camelCaseToSnakeCase

func camelCaseToSnakeCase(name string) string {
	var buf bytes.Buffer

	// handle the common ID idiom
	if name == "ID" {
		return "id"
	}

	firstTime := true
	for _, chr := range name {
		if isUpper := 'A' <= chr && chr <= 'Z'; isUpper {
			if firstTime {
				firstTime = false
			} else {
				buf.WriteRune('_')
			}
			chr -= ('A' - 'a')
		} else {
			firstTime = false
		}
		buf.WriteRune(chr)
	}

	return buf.String()
}

func writeList(buf *bytes.Buffer, items []string) {
	for i, s := range items {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(s)
	}
}

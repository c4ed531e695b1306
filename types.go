package tabula

// TypeTag is an abstract column type.
type TypeTag string

// Supported column types.
const (
	String  TypeTag = "string"
	Number  TypeTag = "number"
	Boolean TypeTag = "boolean"
	Date    TypeTag = "date"
)

var typeMapping = map[TypeTag]string{
	String:  "VARCHAR(255)",
	Number:  "INT",
	Boolean: "TINYINT(1)",
	Date:    "DATETIME",
}

// MapType returns the MySQL column type for tag.
func MapType(tag TypeTag) (string, error) {
	sqlType, ok := typeMapping[tag]
	if !ok {
		return "", &UnsupportedTypeError{Tag: tag}
	}
	return sqlType, nil
}

// ForeignKey references a column of another table.
type ForeignKey struct {
	References       string
	ReferencedColumn string
}

// ColumnSpec describes a column for CREATE TABLE.
//
// AutoIncrement is only valid on a Number column which is also the
// PrimaryKey.
type ColumnSpec struct {
	Type          TypeTag
	PrimaryKey    bool
	AutoIncrement bool
	NotNull       bool
	ForeignKey    *ForeignKey
}

// Row is a result row keyed by column name.
type Row map[string]interface{}

// Pair is a column/value pair.
type Pair struct {
	Column string
	Value  interface{}
}

// Record is an ordered list of column/value pairs. Use it instead of a map
// when the column order of an INSERT matters.
type Record []Pair

// Columns returns the record's column names in order.
func (r Record) Columns() []string {
	cols := make([]string, len(r))
	for i, p := range r {
		cols[i] = p.Column
	}
	return cols
}

// Values returns the record's values in order.
func (r Record) Values() []interface{} {
	vals := make([]interface{}, len(r))
	for i, p := range r {
		vals[i] = p.Value
	}
	return vals
}

package tabula

import (
	"reflect"
	"sort"

	"github.com/jmoiron/sqlx/reflectx"
	"github.com/mgutz/str"
)

var fieldMapper = reflectx.NewMapperFunc("db", func(name string) string {
	return NameMapping(name)
})

// InsertBuilder contains the records for an INSERT statement. The rendered
// statement is a single-row template executed once per record.
type InsertBuilder struct {
	execer Execer

	table    string
	records  []Record
	excludes []string
	err      error
}

// NewInsertBuilder creates a new InsertBuilder for the given table.
func NewInsertBuilder(execer Execer, table string) *InsertBuilder {
	return &InsertBuilder{execer: execerOrNull(execer), table: table}
}

// Records sets the records to insert, replacing any earlier call. Each
// record is a Record, a map[string]interface{}, a Row or a struct (or
// pointer to one) whose exported fields map to columns through `db` tags.
// A single slice of records is expanded.
//
// Map columns are ordered by name. Struct columns follow field order.
func (b *InsertBuilder) Records(data ...interface{}) *InsertBuilder {
	b.records = nil
	b.err = nil

	if len(data) == 1 {
		data = expandSlice(data[0])
	}
	if len(data) == 0 {
		b.err = ErrEmptyData
		return b
	}

	for _, d := range data {
		rec, err := toRecord(d)
		if err != nil {
			b.err = err
			return b
		}
		b.records = append(b.records, rec)
	}
	return b
}

// Exclude drops columns from every record, for example an AUTO_INCREMENT id
// read from a struct.
func (b *InsertBuilder) Exclude(columns ...string) *InsertBuilder {
	b.excludes = columns
	return b
}

// columns returns the column list of the first record after exclusions.
func (b *InsertBuilder) columns() []string {
	var cols []string
	for _, col := range b.records[0].Columns() {
		if str.SliceContains(b.excludes, col) {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// ToSQL renders the INSERT template and returns the arguments of each
// record, aligned to the template's columns.
func (b *InsertBuilder) ToSQL() (string, []interface{}, error) {
	sql, argSets, err := b.toSQLSets()
	if err != nil {
		return "", nil, err
	}
	return sql, argSets[0], nil
}

// ToSQLSets renders the INSERT template and the arguments for every record
// in record order.
func (b *InsertBuilder) ToSQLSets() (string, [][]interface{}, error) {
	return b.toSQLSets()
}

func (b *InsertBuilder) toSQLSets() (string, [][]interface{}, error) {
	if b.err != nil {
		return "", nil, b.err
	}
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}
	if len(b.records) == 0 {
		return "", nil, ErrEmptyData
	}

	cols := b.columns()
	if len(cols) == 0 {
		return "", nil, ErrEmptyData
	}

	// every record must have exactly the columns of the first one
	argSets := make([][]interface{}, len(b.records))
	for i, rec := range b.records {
		vals, err := alignRecord(rec, cols, b.excludes)
		if err != nil {
			err.(*InconsistentRecordShapeError).Index = i
			return "", nil, err
		}
		argSets[i] = vals
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString("INSERT INTO ")
	buf.WriteString(b.table)
	buf.WriteString(" (")
	writeList(buf, cols)
	buf.WriteString(") VALUES (")
	writePlaceholders(buf, len(cols))
	buf.WriteRune(')')

	return buf.String(), argSets, nil
}

// Execute inserts the records one statement at a time, in order. The first
// failure stops the remaining records; records already inserted stay.
func (b *InsertBuilder) Execute() (*Result, error) {
	sql, argSets, err := b.toSQLSets()
	if err != nil {
		return nil, err
	}

	total := &Result{}
	for i, args := range argSets {
		res, err := b.execer.Exec(sql, args...)
		if err != nil {
			logger.Error("Insert failed", "table", b.table, "record", i, "inserted", i, "err", err)
			return nil, &ExecutionError{Op: "insert", Table: b.table, SQL: sql, Err: err}
		}
		if res != nil {
			total.RowsAffected += res.RowsAffected
			total.LastInsertID = res.LastInsertID
		}
	}

	logger.Info("Records inserted", "table", b.table, "count", len(argSets))
	return total, nil
}

// alignRecord returns rec's values in cols order. rec must have the same
// column set as cols, ignoring excludes.
func alignRecord(rec Record, cols []string, excludes []string) ([]interface{}, error) {
	byName := make(map[string]interface{}, len(rec))
	var actual []string
	for _, p := range rec {
		if str.SliceContains(excludes, p.Column) {
			continue
		}
		byName[p.Column] = p.Value
		actual = append(actual, p.Column)
	}

	shapeErr := &InconsistentRecordShapeError{Expected: cols, Actual: actual}
	if len(actual) != len(cols) || len(byName) != len(cols) {
		return nil, shapeErr
	}

	vals := make([]interface{}, len(cols))
	for i, col := range cols {
		v, ok := byName[col]
		if !ok {
			return nil, shapeErr
		}
		vals[i] = v
	}
	return vals, nil
}

// expandSlice returns the elements of v if v is a slice of records,
// otherwise v itself.
func expandSlice(v interface{}) []interface{} {
	switch t := v.(type) {
	case Record:
		return []interface{}{t}
	case []Record:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	case []Row:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = t[i]
		}
		return out
	}

	val := reflect.ValueOf(v)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return []interface{}{v}
	}
	out := make([]interface{}, val.Len())
	for i := range out {
		out[i] = val.Index(i).Interface()
	}
	return out
}

func toRecord(v interface{}) (Record, error) {
	switch t := v.(type) {
	case Record:
		return t, nil
	case map[string]interface{}:
		return mapRecord(t), nil
	case Row:
		return mapRecord(t), nil
	}

	val := reflect.Indirect(reflect.ValueOf(v))
	if val.Kind() != reflect.Struct {
		return nil, ErrInvalidRecord
	}
	var rec Record
	structPairs(fieldMapper.TypeMap(val.Type()), val, val.Type(), nil, &rec)
	return rec, nil
}

func mapRecord(m map[string]interface{}) Record {
	cols := make([]string, 0, len(m))
	for k := range m {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	rec := make(Record, len(cols))
	for i, col := range cols {
		rec[i] = Pair{Column: col, Value: m[col]}
	}
	return rec
}

// structPairs appends the exported fields of typ, in declaration order, to
// rec. Embedded structs are flattened.
func structPairs(tm *reflectx.StructMap, record reflect.Value, typ reflect.Type, path []int, rec *Record) {
	for i := 0; i < typ.NumField(); i++ {
		index := append(append([]int{}, path...), i)
		fi := tm.GetByTraversal(index)
		if fi == nil || fi.Name == "-" {
			continue
		}
		if fi.Embedded && fi.Field.Type.Kind() == reflect.Struct {
			structPairs(tm, record, fi.Field.Type, index, rec)
			continue
		}
		val := reflectx.FieldByIndexesReadOnly(record, fi.Index)
		*rec = append(*rec, Pair{Column: fi.Name, Value: val.Interface()})
	}
}

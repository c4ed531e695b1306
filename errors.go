package tabula

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNotConnected is returned by a Table when its connection handle has
	// no live connection.
	ErrNotConnected = NewError("database connection not established")
	// ErrEmptyData is returned when an insert has no records.
	ErrEmptyData = NewError("data should not be empty")
	// ErrNoColumnsSet is returned when an update has no SET clauses.
	ErrNoColumnsSet = NewError("no columns have been set for update")
	// ErrNoColumns is returned when a table definition has no columns.
	ErrNoColumns = NewError("no columns defined")
	// ErrNoTable is returned when a builder has an empty table name.
	ErrNoTable = NewError("no table specified")
	// ErrMultiplePrimaryKeys is returned when more than one column is marked
	// as the primary key.
	ErrMultiplePrimaryKeys = NewError("only one column may be the primary key")
	// ErrInvalidAutoIncrement is returned when AUTO_INCREMENT is requested on a
	// column that is not a numeric primary key.
	ErrInvalidAutoIncrement = NewError("auto increment requires a number primary key")
	// ErrArgumentMismatch ...
	ErrArgumentMismatch = NewError("mismatch between ? (placeholders) and arguments")
	// ErrInconsistentRecordShape is matched by *InconsistentRecordShapeError.
	ErrInconsistentRecordShape = NewError("records do not share the same columns")
	// ErrInvalidRecord is returned for records that are not a Record, map or struct.
	ErrInvalidRecord = NewError("record must be a Record, map[string]interface{} or struct")
)

// Error are errors returned by tabula.
type Error struct {
	Code    int
	Message string
}

// Error returns the enclosed error message.
func (de *Error) Error() string {
	return de.Message
}

// NewError creates a new tabula Error.
func NewError(msg string) error {
	return &Error{Message: msg}
}

// UnsupportedTypeError is returned when a column type tag has no SQL mapping.
type UnsupportedTypeError struct {
	Tag TypeTag
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type: %q", string(e.Tag))
}

// InconsistentRecordShapeError reports the first record whose columns differ
// from the first record's.
type InconsistentRecordShapeError struct {
	Index    int
	Expected []string
	Actual   []string
}

func (e *InconsistentRecordShapeError) Error() string {
	return fmt.Sprintf("record %d has columns (%s), expected (%s)",
		e.Index, strings.Join(e.Actual, ", "), strings.Join(e.Expected, ", "))
}

// Is makes errors.Is(err, ErrInconsistentRecordShape) true.
func (e *InconsistentRecordShapeError) Is(target error) bool {
	return target == ErrInconsistentRecordShape
}

// DatabaseError is a failure reported by the database server, classified by
// its vendor error number.
type DatabaseError struct {
	Code    int
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.Code, e.Message)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// MySQL error numbers raised when a foreign key points at a missing table
// or column.
const (
	mysqlCannotAddForeign   = 1215
	mysqlFKNoIndexParent    = 1822
	mysqlFKCannotOpenParent = 1824
	mysqlFKNoColumnParent   = 3734
)

// IsMissingReference reports whether err is a database failure caused by a
// foreign key referencing a table or column that does not exist.
func IsMissingReference(err error) bool {
	var de *DatabaseError
	if !errors.As(err, &de) {
		return false
	}
	switch de.Code {
	case mysqlCannotAddForeign, mysqlFKNoIndexParent, mysqlFKCannotOpenParent, mysqlFKNoColumnParent:
		return true
	}
	return false
}

// ExecutionError wraps a failure of a data statement (SELECT, INSERT, UPDATE,
// DELETE).
type ExecutionError struct {
	Op    string
	Table string
	SQL   string
	Err   error
}

func (e *ExecutionError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// SchemaError wraps a failure of a DDL statement.
type SchemaError struct {
	Op    string
	Table string
	SQL   string
	// MissingReference is set when a foreign key references a table or
	// column that does not exist.
	MissingReference bool
	Err              error
}

func (e *SchemaError) Error() string {
	if e.MissingReference {
		return fmt.Sprintf("%s %s: referenced table or column does not exist: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

func newSchemaError(op, table, sql string, err error) *SchemaError {
	return &SchemaError{
		Op:               op,
		Table:            table,
		SQL:              sql,
		MissingReference: IsMissingReference(err),
		Err:              err,
	}
}

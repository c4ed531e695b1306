package tabula

import (
	"math"
	"time"
)

// maxLimit is the row count MySQL documents for "all remaining rows" when
// only an offset is wanted.
const maxLimit uint64 = math.MaxUint64

// SelectBuilder contains the clauses for a SELECT statement
type SelectBuilder struct {
	execer Execer

	table       string
	columns     []string
	aggregates  []string
	isDistinct  bool
	pred        predicate
	groupBys    []string
	orderBys    []string
	limitCount  uint64
	limitValid  bool
	offsetCount uint64
	offsetValid bool

	cacheID         string
	cacheTTL        time.Duration
	cacheInvalidate bool
}

// NewSelectBuilder creates a new SelectBuilder for table. A nil execer
// yields a builder which renders SQL but cannot execute it.
func NewSelectBuilder(execer Execer, table string) *SelectBuilder {
	return &SelectBuilder{execer: execerOrNull(execer), table: table}
}

// Columns sets the projection, replacing any earlier call. No columns
// selects *.
func (b *SelectBuilder) Columns(columns ...string) *SelectBuilder {
	b.columns = columns
	return b
}

// Max adds MAX(column) AS max_column to the projection.
func (b *SelectBuilder) Max(column string) *SelectBuilder {
	return b.aggregate("MAX", "max_", column)
}

// Min adds MIN(column) AS min_column to the projection.
func (b *SelectBuilder) Min(column string) *SelectBuilder {
	return b.aggregate("MIN", "min_", column)
}

// Avg adds AVG(column) AS avg_column to the projection.
func (b *SelectBuilder) Avg(column string) *SelectBuilder {
	return b.aggregate("AVG", "avg_", column)
}

// Sum adds SUM(column) AS sum_column to the projection.
func (b *SelectBuilder) Sum(column string) *SelectBuilder {
	return b.aggregate("SUM", "sum_", column)
}

// Count adds COUNT(column) AS count_column to the projection.
func (b *SelectBuilder) Count(column string) *SelectBuilder {
	return b.aggregate("COUNT", "count_", column)
}

func (b *SelectBuilder) aggregate(fn, prefix, column string) *SelectBuilder {
	b.aggregates = append(b.aggregates, fn+"("+column+") AS "+prefix+column)
	return b
}

// Distinct marks the statement as a DISTINCT SELECT
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.isDistinct = true
	return b
}

// Where seeds the WHERE clause, discarding any conditions added before.
func (b *SelectBuilder) Where(condition string, args ...interface{}) *SelectBuilder {
	b.pred.where(condition, args)
	return b
}

// And appends an AND condition, or seeds the WHERE clause if it is empty.
func (b *SelectBuilder) And(condition string, args ...interface{}) *SelectBuilder {
	b.pred.and(condition, args)
	return b
}

// Or appends an OR condition, or seeds the WHERE clause if it is empty.
func (b *SelectBuilder) Or(condition string, args ...interface{}) *SelectBuilder {
	b.pred.or(condition, args)
	return b
}

// GroupBy sets the GROUP BY columns; overrides any existing GROUP BY
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.groupBys = columns
	return b
}

// OrderBy sets the ORDER BY expressions; overrides any existing ORDER BY
func (b *SelectBuilder) OrderBy(ords ...string) *SelectBuilder {
	b.orderBys = ords
	return b
}

// Limit sets a limit for the statement; overrides any existing LIMIT. A zero
// limit removes it.
func (b *SelectBuilder) Limit(limit uint64) *SelectBuilder {
	b.limitCount = limit
	b.limitValid = limit > 0
	return b
}

// Offset sets an offset for the statement; overrides any existing OFFSET
func (b *SelectBuilder) Offset(offset uint64) *SelectBuilder {
	b.offsetCount = offset
	b.offsetValid = true
	return b
}

// Paginate sets LIMIT/OFFSET for the statement based on the given page/perPage.
// Pages are numbered from 1; a zero page is treated as the first page.
func (b *SelectBuilder) Paginate(page, perPage uint64) *SelectBuilder {
	if page == 0 {
		page = 1
	}
	b.Limit(perPage)
	b.Offset((page - 1) * perPage)
	return b
}

// Cache caches the rows returned by Execute in the package Cache store for
// ttl. An empty id keys the entry by a hash of the interpolated SQL.
// invalidate forces a query and refreshes the entry.
//
// Rows served from the cache are decoded from JSON: numbers come back as
// json.Number and times as strings, not the driver's types.
func (b *SelectBuilder) Cache(id string, ttl time.Duration, invalidate bool) *SelectBuilder {
	b.cacheID = id
	b.cacheTTL = ttl
	b.cacheInvalidate = invalidate
	return b
}

// ToSQL serialized the SelectBuilder to a SQL string
// It returns the string with placeholders and a slice of query arguments
func (b *SelectBuilder) ToSQL() (string, []interface{}, error) {
	if len(b.table) == 0 {
		return "", nil, ErrNoTable
	}

	buf := getBuffer()
	defer putBuffer(buf)
	var args []interface{}

	buf.WriteString("SELECT ")
	if b.isDistinct {
		buf.WriteString("DISTINCT ")
	}

	// aggregates replace the column list entirely
	switch {
	case len(b.aggregates) > 0:
		writeList(buf, b.aggregates)
	case len(b.columns) > 0:
		writeList(buf, b.columns)
	default:
		buf.WriteRune('*')
	}

	buf.WriteString(" FROM ")
	buf.WriteString(b.table)

	if err := b.pred.writeTo(buf, &args); err != nil {
		return "", nil, err
	}

	if len(b.groupBys) > 0 {
		buf.WriteString(" GROUP BY ")
		writeList(buf, b.groupBys)
	}

	if len(b.orderBys) > 0 {
		buf.WriteString(" ORDER BY ")
		writeList(buf, b.orderBys)
	}

	// MySQL has no bare OFFSET
	if b.limitValid {
		buf.WriteString(" LIMIT ")
		writeUint64(buf, b.limitCount)
	} else if b.offsetValid {
		buf.WriteString(" LIMIT ")
		writeUint64(buf, maxLimit)
	}

	if b.offsetValid {
		buf.WriteString(" OFFSET ")
		writeUint64(buf, b.offsetCount)
	}

	return buf.String(), args, nil
}

// Execute runs the query and returns its rows unmodified.
func (b *SelectBuilder) Execute() ([]Row, error) {
	sql, args, err := b.ToSQL()
	if err != nil {
		return nil, err
	}

	key, rows, hit := b.cached(sql, args)
	if hit {
		return rows, nil
	}

	rows, err = b.execer.Query(sql, args...)
	if err != nil {
		return nil, &ExecutionError{Op: "select", Table: b.table, SQL: sql, Err: err}
	}

	b.setCache(key, rows)
	if logger.IsDebug() {
		logger.Debug("Selected rows", "table", b.table, "rows", len(rows))
	}
	return rows, nil
}

package runner

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	guid "github.com/satori/go.uuid"

	"github.com/dbkit/tabula"
)

func toOutputStr(args []interface{}) string {
	if args == nil {
		return "nil"
	}
	var buf bytes.Buffer
	for i, arg := range args {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString("?")
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString("=")
		switch t := arg.(type) {
		default:
			buf.WriteString(fmt.Sprintf("%v", t))
		case []byte:
			buf.WriteString("<binary>")
		}
	}
	return buf.String()
}

// classify turns server errors into *tabula.DatabaseError so callers can
// match on the vendor error number.
func classify(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return &tabula.DatabaseError{Code: int(me.Number), Message: me.Message, Err: err}
	}
	return err
}

func logSQLError(err error, msg, id, statement string, args []interface{}) error {
	logger.Error(msg, "id", id, "err", err, "sql", statement, "args", toOutputStr(args))
	return err
}

func logExecutionTime(start time.Time, id, sql string, args []interface{}) {
	logged := false
	if logger.IsWarn() {
		elapsed := time.Since(start)
		if LogQueriesThreshold > 0 && elapsed > LogQueriesThreshold {
			if len(args) > 0 {
				logger.Warn("SLOW query", "id", id, "elapsed", elapsed.String(), "sql", sql, "args", toOutputStr(args))
			} else {
				logger.Warn("SLOW query", "id", id, "elapsed", elapsed.String(), "sql", sql)
			}
			logged = true
		}
	}

	if logger.IsInfo() && !logged {
		elapsed := time.Since(start)
		logger.Info("Query time", "id", id, "elapsed", elapsed.String(), "sql", sql)
	}
}

// Exec executes a statement which returns no rows.
func (db *DB) Exec(sql string, args ...interface{}) (*tabula.Result, error) {
	id := uuid()
	defer logExecutionTime(time.Now(), id, sql, args)

	res, err := db.DB.Exec(sql, args...)
	if err != nil {
		return nil, logSQLError(classify(err), "Exec failed", id, sql, args)
	}

	// MySQL always reports both
	affected, _ := res.RowsAffected()
	lastID, _ := res.LastInsertId()
	return &tabula.Result{LastInsertID: lastID, RowsAffected: affected}, nil
}

// Query executes a statement and returns its rows as column maps. Text and
// blob values are returned as strings.
func (db *DB) Query(sql string, args ...interface{}) ([]tabula.Row, error) {
	id := uuid()
	defer logExecutionTime(time.Now(), id, sql, args)

	rows, err := db.DB.Queryx(sql, args...)
	if err != nil {
		return nil, logSQLError(classify(err), "Query failed", id, sql, args)
	}
	defer rows.Close()

	var result []tabula.Row
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, logSQLError(classify(err), "Scan failed", id, sql, args)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result = append(result, tabula.Row(row))
	}
	if err := rows.Err(); err != nil {
		return nil, logSQLError(classify(err), "Query failed", id, sql, args)
	}
	return result, nil
}

// uuid generates a statement id for correlating log entries.
func uuid() string {
	return guid.NewV4().String()
}

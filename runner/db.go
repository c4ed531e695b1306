package runner

import (
	"sync/atomic"

	"github.com/cenkalti/backoff"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/dbkit/tabula"
)

// DB is a MySQL connection pool. It is the tabula.Connection tables are
// bound to and the tabula.Execer builders run against.
type DB struct {
	DB     *sqlx.DB
	closed atomic.Bool
}

// Open connects to MySQL. The server is pinged with exponential backoff
// until it answers or conf.PingTimeout elapses.
func Open(conf *Config) (*DB, error) {
	c, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}

	dbx, err := sqlx.Open("mysql", c.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	dbx.SetMaxIdleConns(c.MaxIdleConns)
	if c.MaxOpenConns > 0 {
		dbx.SetMaxOpenConns(c.MaxOpenConns)
	}
	if c.ConnMaxLifetime > 0 {
		dbx.SetConnMaxLifetime(c.ConnMaxLifetime)
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.PingTimeout
	err = backoff.Retry(func() error {
		err := dbx.Ping()
		if err != nil {
			logger.Warn("Could not ping database, retrying", "addr", c.Addr(), "err", err)
		}
		return err
	}, b)
	if err != nil {
		dbx.Close()
		return nil, errors.Wrapf(err, "could not ping %s", c.Addr())
	}

	logger.Info("Connected", "addr", c.Addr(), "database", c.Database)
	return NewDBFromSqlx(dbx), nil
}

// NewDBFromSqlx creates a DB from an existing sqlx.DB.
func NewDBFromSqlx(dbx *sqlx.DB) *DB {
	return &DB{DB: dbx}
}

// Execer returns db, or nil once db is closed. It implements
// tabula.Connection.
func (db *DB) Execer() tabula.Execer {
	if db == nil || db.DB == nil || db.closed.Load() {
		return nil
	}
	return db
}

// Table binds name to db.
func (db *DB) Table(name string) *tabula.Table {
	return tabula.NewTable(db, name)
}

// SQL creates a RawBuilder for a hand-written statement.
func (db *DB) SQL(sql string, args ...interface{}) *tabula.RawBuilder {
	return tabula.NewRawBuilder(db.Execer(), sql, args...)
}

// Ping verifies the connection is alive.
func (db *DB) Ping() error {
	return db.DB.Ping()
}

// Close closes the pool. Tables bound to db report tabula.ErrNotConnected
// afterwards.
func (db *DB) Close() error {
	if db.closed.Swap(true) {
		return nil
	}
	return db.DB.Close()
}

package runner

import (
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/imdario/mergo"
	"github.com/pkg/errors"
)

// Config holds the connection parameters of a MySQL server.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	// Params are extra DSN parameters, e.g. "charset": "utf8mb4".
	Params map[string]string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// PingTimeout bounds the retries Open makes before giving up.
	PingTimeout time.Duration
}

// DefaultConfig fills the zero fields of every Config passed to Open.
var DefaultConfig = Config{
	Host:         "127.0.0.1",
	Port:         3306,
	User:         "root",
	Params:       map[string]string{"charset": "utf8mb4"},
	MaxIdleConns: 2,
	PingTimeout:  30 * time.Second,
}

// withDefaults returns a copy of conf with DefaultConfig merged in.
func (conf *Config) withDefaults() (*Config, error) {
	merged := *conf
	if conf.Params != nil {
		merged.Params = make(map[string]string, len(conf.Params))
		for k, v := range conf.Params {
			merged.Params[k] = v
		}
	}
	if err := mergo.Merge(&merged, DefaultConfig); err != nil {
		return nil, errors.Wrap(err, "merge default config")
	}
	return &merged, nil
}

// Addr returns host:port.
func (conf *Config) Addr() string {
	return net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))
}

// DSN formats the go-sql-driver/mysql data source name. DATETIME columns
// are parsed into time.Time.
func (conf *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = conf.User
	mc.Passwd = conf.Password
	mc.Net = "tcp"
	mc.Addr = conf.Addr()
	mc.DBName = conf.Database
	mc.Params = conf.Params
	mc.ParseTime = true
	return mc.FormatDSN()
}

package main

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/alexflint/go-arg"
	"github.com/joho/godotenv"

	"github.com/dbkit/tabula/runner"
)

// Connection are the options for building the connection.
type Connection struct {
	Database    string `arg:"-d,--database,required,env:tabula_database" placeholder:"DB"`
	ExtraParams string `arg:"-e,--extraParams,env:tabula_extraParams" help:"Extra connection params, k=v&k=v" placeholder:"QS"`
	Host        string `arg:"-H,--host,env:tabula_host" default:"127.0.0.1"`
	Password    string `arg:"--password,env:tabula_password"`
	Port        int    `arg:"-p,--port,env:tabula_port" default:"3306"`
	User        string `arg:"-u,--user,env:tabula_user" default:"root"`
}

// CLIArgs are the command line arguments.
type CLIArgs struct {
	PingCmd *struct {
	} `arg:"subcommand:ping" help:"Ping the database (0 exit code means OK)"`

	SelectCmd *struct {
		Table    string        `arg:"positional,required"`
		Columns  []string      `arg:"-c,--columns" help:"Columns to select"`
		Where    string        `arg:"-w,--where" help:"WHERE condition"`
		OrderBy  []string      `arg:"-o,--orderBy"`
		Limit    uint64        `arg:"-l,--limit"`
		CacheTTL time.Duration `arg:"--cacheTTL" help:"Cache rows in redis for this long"`
	} `arg:"subcommand:select" help:"Select rows from a table"`

	DropCmd *struct {
		Table    string `arg:"positional,required"`
		IfExists bool   `arg:"--ifExists"`
	} `arg:"subcommand:drop" help:"Drop a table"`

	AddColumnCmd *struct {
		Table  string `arg:"positional,required"`
		Column string `arg:"positional,required"`
		Type   string `arg:"positional,required" help:"string, number, boolean or date"`
	} `arg:"subcommand:add-column" help:"Add a column to a table"`

	DropColumnCmd *struct {
		Table  string `arg:"positional,required"`
		Column string `arg:"positional,required"`
	} `arg:"subcommand:drop-column" help:"Drop a column from a table"`

	ExecCmd *struct {
		Query string `arg:"positional,required" help:"SQL statement"`
		Rows  bool   `arg:"-r,--rows" help:"Statement returns rows"`
	} `arg:"subcommand:exec" help:"Execute a SQL statement"`

	ModifyColumnCmd *struct {
		Table  string `arg:"positional,required"`
		Column string `arg:"positional,required"`
		Type   string `arg:"positional,required" help:"string, number, boolean or date"`
	} `arg:"subcommand:modify-column" help:"Change the type of a column"`

	Connection
	DryRun bool   `arg:"--dryRun" help:"Print SQL instead of executing it"`
	Prompt bool   `arg:"-W,--prompt" help:"Prompt for the password"`
	Redis  string `arg:"--redis,env:tabula_redis" help:"Redis address for the select cache" placeholder:"ADDR"`
}

func loadEnvFiles() error {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// do nothing, it's not error if .env file does not exist
			return nil
		}

		return fmt.Errorf("Cannot load .env file: %w", err)
	}
	return nil
}

var (
	rootParser *arg.Parser
)

func parseArgs() (*CLIArgs, error) {
	err := loadEnvFiles()
	if err != nil {
		return nil, err
	}

	var args CLIArgs
	rootParser = arg.MustParse(&args)
	if rootParser.Subcommand() == nil {
		rootParser.Fail("missing command")
	}
	return &args, nil
}

// runnerConfig converts the connection flags to a runner.Config.
func (c *Connection) runnerConfig() (*runner.Config, error) {
	conf := &runner.Config{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Database,
	}
	if c.ExtraParams != "" {
		values, err := url.ParseQuery(c.ExtraParams)
		if err != nil {
			return nil, fmt.Errorf("invalid extraParams: %w", err)
		}
		conf.Params = map[string]string{}
		for k := range values {
			conf.Params[k] = values.Get(k)
		}
	}
	return conf, nil
}

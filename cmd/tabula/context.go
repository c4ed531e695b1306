package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	survey "gopkg.in/AlecAivazis/survey.v1"

	"github.com/dbkit/tabula"
	"github.com/dbkit/tabula/kvs"
	"github.com/dbkit/tabula/runner"
)

// AppContext is the state shared by commands.
type AppContext struct {
	Options *CLIArgs
	conn    tabula.Connection
	db      *runner.DB
	cache   *kvs.RedisStore
}

// dryRunConnection prints statements instead of executing them.
type dryRunConnection struct{}

func (dryRunConnection) Execer() tabula.Execer {
	return dryRunExecer{}
}

type dryRunExecer struct{}

func (dryRunExecer) Exec(sql string, args ...interface{}) (*tabula.Result, error) {
	return &tabula.Result{}, printSQL(sql, args)
}

func (dryRunExecer) Query(sql string, args ...interface{}) ([]tabula.Row, error) {
	return nil, printSQL(sql, args)
}

func printSQL(sql string, args []interface{}) error {
	s, err := tabula.Interpolate(sql, args)
	if err != nil {
		return err
	}
	fmt.Println(s + ";")
	return nil
}

func askPassword() (string, error) {
	var password string
	prompt := &survey.Password{Message: "password"}
	if err := survey.AskOne(prompt, &password, nil); err != nil {
		return "", err
	}
	return password, nil
}

func newAppContext(options *CLIArgs) (*AppContext, error) {
	ctx := &AppContext{Options: options}

	if options.Redis != "" {
		ctx.cache = kvs.NewRedisStore(&kvs.RedisConfig{Addr: options.Redis, Namespace: "tabula"})
		tabula.SetCache(ctx.cache)
	}

	if options.DryRun {
		ctx.conn = dryRunConnection{}
		return ctx, nil
	}

	if options.Prompt && options.Password == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		password, err := askPassword()
		if err != nil {
			return nil, err
		}
		options.Password = password
	}

	conf, err := options.Connection.runnerConfig()
	if err != nil {
		return nil, err
	}
	db, err := runner.Open(conf)
	if err != nil {
		return nil, err
	}
	ctx.db = db
	ctx.conn = db
	return ctx, nil
}

// Table binds name to the context's connection.
func (ctx *AppContext) Table(name string) *tabula.Table {
	return tabula.NewTable(ctx.conn, name)
}

// Close releases the database and cache connections.
func (ctx *AppContext) Close() {
	if ctx.db != nil {
		ctx.db.Close()
	}
	if ctx.cache != nil {
		ctx.cache.Close()
	}
}

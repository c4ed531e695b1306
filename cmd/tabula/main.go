// tabula runs table operations against a MySQL database.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

func exitError(err error) {
	msg := "ERROR " + err.Error()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		msg = ansi.Color(msg, "red+b")
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	args, err := parseArgs()
	if err != nil {
		exitError(err)
	}

	ctx, err := newAppContext(args)
	if err != nil {
		exitError(err)
	}
	defer ctx.Close()

	if err := run(ctx); err != nil {
		ctx.Close()
		exitError(err)
	}
}

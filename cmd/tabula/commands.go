package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/dbkit/tabula"
)

func run(ctx *AppContext) error {
	o := ctx.Options
	switch {
	case o.PingCmd != nil:
		return ping(ctx)
	case o.SelectCmd != nil:
		return selectRows(ctx)
	case o.DropCmd != nil:
		return dropTable(ctx)
	case o.AddColumnCmd != nil:
		return alterTable(ctx, o.AddColumnCmd.Table, func(b *tabula.AlterTableBuilder) error {
			return b.AddColumn(o.AddColumnCmd.Column, tabula.TypeTag(o.AddColumnCmd.Type))
		})
	case o.DropColumnCmd != nil:
		return alterTable(ctx, o.DropColumnCmd.Table, func(b *tabula.AlterTableBuilder) error {
			return b.DropColumn(o.DropColumnCmd.Column)
		})
	case o.ExecCmd != nil:
		return execSQL(ctx)
	case o.ModifyColumnCmd != nil:
		return alterTable(ctx, o.ModifyColumnCmd.Table, func(b *tabula.AlterTableBuilder) error {
			return b.ModifyColumn(o.ModifyColumnCmd.Column, tabula.TypeTag(o.ModifyColumnCmd.Type))
		})
	}
	return fmt.Errorf("unknown command")
}

func ping(ctx *AppContext) error {
	if ctx.db == nil {
		fmt.Println("dry run, not connected")
		return nil
	}
	if err := ctx.db.Ping(); err != nil {
		return err
	}
	fmt.Println("OK")
	return nil
}

func selectRows(ctx *AppContext) error {
	cmd := ctx.Options.SelectCmd
	b, err := ctx.Table(cmd.Table).Select(cmd.Columns...)
	if err != nil {
		return err
	}
	if cmd.Where != "" {
		b.Where(cmd.Where)
	}
	b.OrderBy(cmd.OrderBy...).Limit(cmd.Limit)
	if cmd.CacheTTL > 0 {
		b.Cache("", cmd.CacheTTL, false)
	}

	rows, err := b.Execute()
	if err != nil {
		return err
	}
	if ctx.Options.DryRun {
		return nil
	}
	printRows(rows, cmd.Columns)
	return nil
}

func execSQL(ctx *AppContext) error {
	cmd := ctx.Options.ExecCmd
	ex := ctx.conn.Execer()
	if ex == nil {
		return tabula.ErrNotConnected
	}
	b := tabula.NewRawBuilder(ex, cmd.Query)

	if !cmd.Rows {
		res, err := b.Exec()
		if err != nil {
			return err
		}
		if !ctx.Options.DryRun {
			fmt.Printf("%d rows affected\n", res.RowsAffected)
		}
		return nil
	}

	rows, err := b.Query()
	if err != nil {
		return err
	}
	if !ctx.Options.DryRun {
		printRows(rows, nil)
	}
	return nil
}

// printRows renders rows as a table. Without columns the header is the
// sorted column names of the first row.
func printRows(rows []tabula.Row, columns []string) {
	if len(rows) == 0 {
		fmt.Println("No rows found.")
		return
	}

	header := columns
	if len(header) == 0 {
		for col := range rows[0] {
			header = append(header, col)
		}
		sort.Strings(header)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetBorder(false)
	for _, row := range rows {
		line := make([]string, len(header))
		for i, col := range header {
			if v := row[col]; v != nil {
				line[i] = fmt.Sprint(v)
			} else {
				line[i] = "NULL"
			}
		}
		table.Append(line)
	}
	table.Render()
}

func dropTable(ctx *AppContext) error {
	cmd := ctx.Options.DropCmd
	b, err := ctx.Table(cmd.Table).DropTable()
	if err != nil {
		return err
	}
	if cmd.IfExists {
		b.IfExists()
	}
	return b.Exec()
}

func alterTable(ctx *AppContext, table string, fn func(*tabula.AlterTableBuilder) error) error {
	b, err := ctx.Table(table).AlterTable()
	if err != nil {
		return err
	}
	return fn(b)
}

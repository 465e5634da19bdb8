package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/config"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
	"github.com/seongmin-k/biffplan/internal/sheets"
)

// initStore connects to the configured spreadsheet.
func initStore(ctx context.Context) (*sheets.Store, error) {
	cfg, err := config.LoadSheetsConfig()
	if err != nil {
		return nil, err
	}
	return sheets.NewStore(ctx, *cfg, slog.Default())
}

// loadSheet ensures the named sheet exists with its headers and loads it.
func loadSheet(ctx context.Context, store service.TabularStore, name string, headers []string) (service.Handle, *model.Table, error) {
	h, err := store.EnsureTable(ctx, name, headers)
	if err != nil {
		return service.Handle{}, nil, err
	}
	table, err := store.Load(ctx, h)
	if err != nil {
		return service.Handle{}, nil, err
	}
	return h, table, nil
}

// printTable renders a table with numbered rows. Row numbers are the
// positional identity used by editing commands.
func printTable(table *model.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	header := append([]string{"#"}, table.Columns...)
	fmt.Fprintln(w, cli.BoldStyle.Render(strings.Join(header, "\t")))
	for i := range table.Rows {
		cells := make([]string, 0, len(table.Columns)+1)
		cells = append(cells, fmt.Sprintf("%d", i+1))
		for _, c := range table.Columns {
			cells = append(cells, table.Get(i, c))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/schedule"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func moviesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "Manage the festival movie schedule",
	}

	cmd.AddCommand(listMoviesCmd())
	cmd.AddCommand(fetchMovieCmd())
	cmd.AddCommand(bookMovieCmd())

	return cmd
}

func listMoviesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List movie schedule rows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			_, table, err := loadSheet(ctx, store, model.SheetMovies, model.MovieHeaders)
			if err != nil {
				return err
			}

			if len(table.Rows) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no movies yet, add one with 'biffplan movies fetch <url>'"))
				return nil
			}
			printTable(table)
			return nil
		},
	}
}

func fetchMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <url>",
		Short: "Scrape a film detail page into schedule rows",
		Long: `Fetch a festival film detail page, extract the film fields and its
showings, and append one row per showing to the movies sheet. A film with no
published showings still gets one row for manual follow-up.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			url := args[0]

			timeout := viper.GetDuration("extract.timeout")
			if timeout <= 0 {
				timeout = 15 * time.Second
			}
			extractor := schedule.NewExtractor(slog.Default(), timeout)

			rows, err := extractor.Extract(ctx, url)
			if err != nil {
				// No partial rows on extraction faults; report and stop.
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetMovies, model.MovieHeaders)
			if err != nil {
				return err
			}

			for _, row := range rows {
				table.Append(row.Cells()...)
			}
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %s: %d row(s) added", rows[0].Title, len(rows))))
			return nil
		},
	}
}

func bookMovieCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "book <row>",
		Short: "Mark a schedule row as booked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			row, err := parseRowNumber(args[0])
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetMovies, model.MovieHeaders)
			if err != nil {
				return err
			}
			if row > len(table.Rows) {
				return fmt.Errorf("row %d does not exist: movies has %d rows", row, len(table.Rows))
			}

			table.Set(row-1, model.ColBooked, "TRUE")
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ row %d marked booked", row)))
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strconv"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/spf13/cobra"
)

// candidateSheets maps the CLI kind argument to its sheet and headers.
var candidateSheets = map[string]struct {
	sheet   string
	headers []string
}{
	"accommodation": {model.SheetAccommodation, model.AccommodationHeaders},
	"activity":      {model.SheetActivities, model.ActivityHeaders},
}

func candidatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "Manage accommodation and activity candidates",
		Long:  `List, add, edit and remove rows in the planning buffer sheets.`,
	}

	cmd.AddCommand(listCandidatesCmd())
	cmd.AddCommand(addCandidateCmd())
	cmd.AddCommand(editCandidateCmd())
	cmd.AddCommand(removeCandidateCmd())

	return cmd
}

func resolveCandidateSheet(kind string) (string, []string, error) {
	s, ok := candidateSheets[kind]
	if !ok {
		return "", nil, fmt.Errorf("unknown candidate kind %q (want accommodation or activity)", kind)
	}
	return s.sheet, s.headers, nil
}

func listCandidatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <accommodation|activity>",
		Short: "List candidate rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sheet, headers, err := resolveCandidateSheet(args[0])
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			_, table, err := loadSheet(ctx, store, sheet, headers)
			if err != nil {
				return err
			}

			if len(table.Rows) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no candidates yet"))
				return nil
			}
			printTable(table)
			return nil
		},
	}
}

func addCandidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <accommodation|activity> <cell>...",
		Short: "Append a candidate row",
		Long: `Append a row with the given cells, in sheet column order. Missing
trailing cells are left empty.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sheet, headers, err := resolveCandidateSheet(args[0])
			if err != nil {
				return err
			}
			cells := args[1:]
			if len(cells) > len(headers) {
				return fmt.Errorf("too many cells: %s has %d columns", sheet, len(headers))
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, sheet, headers)
			if err != nil {
				return err
			}

			table.Append(cells...)
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ added row %d to %s", len(table.Rows), sheet)))
			return nil
		},
	}
}

func editCandidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <accommodation|activity> <row> <column> <value>",
		Short: "Edit one cell of a candidate row",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sheet, headers, err := resolveCandidateSheet(args[0])
			if err != nil {
				return err
			}
			row, err := parseRowNumber(args[1])
			if err != nil {
				return err
			}
			column, value := args[2], args[3]

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, sheet, headers)
			if err != nil {
				return err
			}
			if row > len(table.Rows) {
				return fmt.Errorf("row %d does not exist: %s has %d rows", row, sheet, len(table.Rows))
			}
			if table.ColumnIndex(column) < 0 {
				return fmt.Errorf("unknown column %q in %s", column, sheet)
			}

			table.Set(row-1, column, value)
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ updated row %d of %s", row, sheet)))
			return nil
		},
	}
}

func removeCandidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <accommodation|activity> <row>",
		Short: "Remove a candidate row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sheet, headers, err := resolveCandidateSheet(args[0])
			if err != nil {
				return err
			}
			row, err := parseRowNumber(args[1])
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, sheet, headers)
			if err != nil {
				return err
			}
			if row > len(table.Rows) {
				return fmt.Errorf("row %d does not exist: %s has %d rows", row, sheet, len(table.Rows))
			}

			table.Rows = append(table.Rows[:row-1], table.Rows[row:]...)
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ removed row %d from %s", row, sheet)))
			return nil
		},
	}
}

// parseRowNumber parses a 1-based row argument.
func parseRowNumber(s string) (int, error) {
	row, err := strconv.Atoi(s)
	if err != nil || row < 1 {
		return 0, fmt.Errorf("invalid row number %q", s)
	}
	return row, nil
}

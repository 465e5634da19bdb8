package main

import (
	"fmt"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/spf13/cobra"
)

func overviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Show or update the trip overview",
	}

	cmd.AddCommand(showOverviewCmd())
	cmd.AddCommand(setOverviewCmd())

	return cmd
}

func showOverviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the trip overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			_, table, err := loadSheet(ctx, store, model.SheetOverview, model.OverviewHeaders)
			if err != nil {
				return err
			}

			o := model.OverviewFromTable(table)
			fmt.Println(cli.TitleStyle.Render("📌 " + o.Title))
			fmt.Println(cli.SubtleStyle.Render(o.Purpose))
			fmt.Printf("%s → %s\n", o.StartDate, o.EndDate)
			return nil
		},
	}
}

func setOverviewCmd() *cobra.Command {
	var title, purpose string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the trip title or purpose",
		Long: `Update the editable overview fields and save the sheet. The festival
dates are fixed and cannot be changed here.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetOverview, model.OverviewHeaders)
			if err != nil {
				return err
			}

			o := model.OverviewFromTable(table)
			if title != "" {
				o.Title = title
			}
			if purpose != "" {
				o.Purpose = purpose
			}

			if err := store.Save(ctx, h, o.Table()); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("✓ overview saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "trip title")
	cmd.Flags().StringVar(&purpose, "purpose", "", "trip purpose")

	return cmd
}

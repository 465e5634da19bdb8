package main

import (
	"fmt"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/spf13/cobra"
)

func offersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offers",
		Short: "Manage campaign offer applications",
		Long:  `Track creator-campaign offers: platform, application window and status.`,
	}

	cmd.AddCommand(listOffersCmd())
	cmd.AddCommand(addOfferCmd())
	cmd.AddCommand(setOfferStatusCmd())

	return cmd
}

func listOffersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List offers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			_, table, err := loadSheet(ctx, store, model.SheetEvents, model.EventHeaders)
			if err != nil {
				return err
			}

			if len(table.Rows) == 0 {
				fmt.Println(cli.SubtleStyle.Render("no offers yet"))
				return nil
			}
			printTable(table)
			return nil
		},
	}
}

func addOfferCmd() *cobra.Command {
	var offer model.Offer
	var status string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append an offer row",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			parsed, err := model.ParseOfferStatus(status)
			if err != nil {
				return err
			}
			offer.Status = parsed

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetEvents, model.EventHeaders)
			if err != nil {
				return err
			}

			table.Append(offer.Cells()...)
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ added offer %q", offer.Offer)))
			return nil
		},
	}

	cmd.Flags().StringVar(&offer.Platform, "platform", "", "campaign platform")
	cmd.Flags().StringVar(&offer.Offer, "offer", "", "what the campaign offers")
	cmd.Flags().StringVar(&offer.OpenDate, "open", "", "application window start")
	cmd.Flags().StringVar(&offer.CloseDate, "close", "", "application window end")
	cmd.Flags().StringVar(&offer.ResultDate, "result", "", "result announcement date")
	cmd.Flags().StringVar(&offer.Link, "link", "", "application page URL")
	cmd.Flags().StringVar(&status, "status", string(model.StatusPrepared), "prepared, applied, selected or rejected")
	_ = cmd.MarkFlagRequired("offer")

	return cmd
}

func setOfferStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <row> <status>",
		Short: "Update an offer's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			row, err := parseRowNumber(args[0])
			if err != nil {
				return err
			}
			status, err := model.ParseOfferStatus(args[1])
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetEvents, model.EventHeaders)
			if err != nil {
				return err
			}
			if row > len(table.Rows) {
				return fmt.Errorf("row %d does not exist: events has %d rows", row, len(table.Rows))
			}

			table.Set(row-1, model.ColStatus, string(status))
			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ offer %d → %s", row, status)))
			return nil
		},
	}
}

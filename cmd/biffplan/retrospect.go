package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/metrics"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/spf13/cobra"
)

func retrospectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "retrospect",
		Short: "Summarize last year's trip",
		Long: `Compute the derived view of last year's visit log: total spend,
spend by category bucket, a per-day timeline and the average arrival delta.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			_, table, err := loadSheet(ctx, store, model.SheetHistory, model.HistoryHeaders)
			if err != nil {
				return err
			}

			// A freshly created or hand-edited history sheet may be missing
			// the keyed columns; degrade to an empty view, not a crash.
			var missingErr *model.MissingColumnsError
			if err := table.Require(model.SheetHistory, model.ColPlaceName); err != nil {
				if errors.As(err, &missingErr) {
					fmt.Println(cli.WarningStyle.Render("history sheet has no usable data yet"))
					return nil
				}
				return err
			}

			r := metrics.Summarize(model.VisitsFromTable(table))
			render(r)
			return nil
		},
	}
}

func render(r *metrics.Retrospect) {
	fmt.Println(cli.TitleStyle.Render("👑 작년 여행 돌아보기"))
	fmt.Printf("%s %d곳  %s %s원\n",
		cli.BoldStyle.Render("방문"), r.TotalPlaces,
		cli.BoldStyle.Render("지출"), formatWon(r.TotalSpend))

	if len(r.SpendByBucket) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Spend by bucket"))
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, bs := range r.SpendByBucket {
			fmt.Fprintf(w, "%s\t%s원\n", bs.Bucket, formatWon(bs.Total))
		}
		_ = w.Flush()
	}

	for _, day := range r.Days {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render(day.Date.Format("2006년 01월 02일")))
		for _, v := range day.Visits {
			fmt.Println(visitLine(v))
		}
	}

	if r.Arrival != nil {
		fmt.Println()
		label := "late"
		if !r.Arrival.Late() {
			label = "early"
		}
		fmt.Printf("%s %.0f min %s on average (%d rows)\n",
			cli.BoldStyle.Render("Arrival:"),
			math.Abs(r.Arrival.MeanMinutes), label, r.Arrival.Count)
	}
}

// visitLine renders one timeline entry: time, place, category, then the
// ordered menu and spend when present.
func visitLine(v model.Visit) string {
	line := fmt.Sprintf("  %s  %s (%s)", v.VisitTime, v.PlaceName, v.Category)
	if v.OrderedMenu != "" {
		line += "  " + v.OrderedMenu
	}
	if total := v.TotalCost(); total > 0 {
		line += cli.SubtleStyle.Render(fmt.Sprintf("  %s원", formatWon(total)))
	}
	return line
}

// formatWon renders a cost with thousands separators, the way the sheet
// displays 원 amounts.
func formatWon(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

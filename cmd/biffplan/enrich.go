package main

import (
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/seongmin-k/biffplan/internal/cli"
	"github.com/seongmin-k/biffplan/internal/config"
	"github.com/seongmin-k/biffplan/internal/geocode"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/storage"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func enrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Geocode last year's visit log",
		Long: `Resolve coordinates for history rows that don't have them yet. Each
external lookup is rate limited per the geocoder's usage policy, so a large
backlog takes a while; already-resolved rows are skipped, making re-runs
cheap. Rows that fail to resolve stay empty and are retried next run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := slog.Default()
			geoCfg := config.LoadGeocodeConfig()

			cache, err := storage.NewSQLiteGeocodeCache(geoCfg.CachePath)
			if err != nil {
				return fmt.Errorf("failed to open geocode cache: %w", err)
			}
			defer func() { _ = cache.Close() }()

			resolver := geocode.NewResolver(
				geocode.NewClient(geoCfg.Timeout),
				rate.NewLimiter(rate.Every(geoCfg.MinInterval), 1),
				logger,
				geocode.WithCache(cache),
				geocode.WithRegionBias(geoCfg.RegionBias),
			)

			store, err := initStore(ctx)
			if err != nil {
				return err
			}

			h, table, err := loadSheet(ctx, store, model.SheetHistory, model.HistoryHeaders)
			if err != nil {
				return err
			}

			var bar *progressbar.ProgressBar
			result, err := geocode.EnrichVisits(ctx, table, resolver, logger, func(done, total int) {
				if bar == nil {
					bar = progressbar.Default(int64(total), "geocoding")
				}
				_ = bar.Set(done)
			})
			if err != nil {
				return err
			}

			if result.Candidates == 0 {
				fmt.Println(cli.SubtleStyle.Render("nothing to enrich, all rows resolved"))
				return nil
			}

			if err := store.Save(ctx, h, table); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ resolved %d/%d places", result.Resolved, result.Candidates)))
			if result.Unresolved > 0 {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("%d place(s) unresolved, will retry next run", result.Unresolved)))
			}
			return nil
		},
	}
}

package geocode

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
)

// EnrichResult summarizes one enrichment pass.
type EnrichResult struct {
	Candidates int
	Resolved   int
	Unresolved int
}

// EnrichVisits fills the coordinate columns of the history table in place.
// Only rows whose coordinate cells are absent or non-numeric are candidates;
// already-resolved rows are untouched, which keeps incremental re-runs
// cheap. Per-row failures leave the cells empty and are retried naturally on
// the next pass. The progress callback, when non-nil, is invoked after every
// candidate row.
func EnrichVisits(ctx context.Context, table *model.Table, geocoder service.Geocoder, logger *slog.Logger, progress func(done, total int)) (EnrichResult, error) {
	var result EnrichResult

	if err := table.Require(model.SheetHistory, model.ColPlaceName, model.ColLatitude, model.ColLongitude); err != nil {
		return result, err
	}

	candidates := make([]int, 0, len(table.Rows))
	for i := range table.Rows {
		if table.Get(i, model.ColPlaceName) == "" {
			continue
		}
		if rowResolved(table, i) {
			continue
		}
		candidates = append(candidates, i)
	}
	result.Candidates = len(candidates)

	for done, i := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		name := table.Get(i, model.ColPlaceName)
		address := table.Get(i, model.ColAddress)

		coord, err := geocoder.Resolve(ctx, address, name)
		if err != nil {
			// Resolve never fails for a miss; an error here is a context
			// cancellation from the throttle.
			return result, err
		}
		if coord == nil {
			result.Unresolved++
			logger.Debug("place unresolved", "place", name)
		} else {
			table.Set(i, model.ColLatitude, formatCoord(coord.Lat))
			table.Set(i, model.ColLongitude, formatCoord(coord.Lon))
			result.Resolved++
		}

		if progress != nil {
			progress(done+1, len(candidates))
		}
	}

	logger.Info("enrichment pass finished",
		"candidates", result.Candidates,
		"resolved", result.Resolved,
		"unresolved", result.Unresolved)
	return result, nil
}

func rowResolved(t *model.Table, row int) bool {
	_, latErr := strconv.ParseFloat(t.Get(row, model.ColLatitude), 64)
	_, lonErr := strconv.ParseFloat(t.Get(row, model.ColLongitude), 64)
	return latErr == nil && lonErr == nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// Package schedule extracts screening rows from festival film detail pages.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/seongmin-k/biffplan/internal/common"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
)

// Selectors for the film detail page layout. Structural extraction is
// brittle to upstream markup changes; a selector that stops matching
// degrades to a reported extraction failure, never a crash.
const (
	selTitle    = "div.film-detail h2.film-title"
	selDirector = "div.film-detail .credit .director"
	selCountry  = "div.film-detail ul.spec li.country"
	selRuntime  = "div.film-detail ul.spec li.runtime"
	selFormat   = "div.film-detail ul.spec li.format"
	selSynopsis = "div.film-detail div.synopsis"
	selShowing  = "table.screening-schedule tbody tr"
)

// Extractor fetches and parses film detail pages.
type Extractor struct {
	logger  *slog.Logger
	timeout time.Duration
}

var _ service.ScheduleExtractor = (*Extractor)(nil)

// NewExtractor creates an extractor with a bounded per-page timeout.
func NewExtractor(logger *slog.Logger, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Extractor{logger: logger, timeout: timeout}
}

// Extract converts one detail page into schedule rows, one per showing. A
// page with showings listed but empty yields exactly one film-only row so
// every successfully fetched film surfaces for manual follow-up. Any
// network, status, or parse fault yields (nil, err) with no partial rows.
func (e *Extractor) Extract(ctx context.Context, url string) ([]model.ScheduleRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector()
	c.SetRequestTimeout(e.timeout)

	var film model.Film
	var showings []model.Showing

	c.OnHTML(selTitle, func(h *colly.HTMLElement) {
		film.Title = clean(h.Text)
	})
	c.OnHTML(selDirector, func(h *colly.HTMLElement) {
		film.Director = clean(h.Text)
	})
	c.OnHTML(selCountry, func(h *colly.HTMLElement) {
		film.Country = clean(h.Text)
	})
	c.OnHTML(selRuntime, func(h *colly.HTMLElement) {
		film.Runtime = clean(h.Text)
	})
	c.OnHTML(selFormat, func(h *colly.HTMLElement) {
		film.Format = clean(h.Text)
	})
	c.OnHTML(selSynopsis, func(h *colly.HTMLElement) {
		film.Synopsis = clean(h.Text)
	})
	c.OnHTML(selShowing, func(h *colly.HTMLElement) {
		showings = append(showings, model.Showing{
			Date:        clean(h.ChildText("td.date")),
			Time:        clean(h.ChildText("td.time")),
			Venue:       clean(h.ChildText("td.venue")),
			BookingCode: clean(h.ChildText("td.code")),
			Notes:       clean(h.ChildText("td.notes")),
		})
	})

	if err := c.Visit(url); err != nil {
		e.logger.Warn("film page fetch failed", "url", url, "error", err)
		return nil, common.NewUserError(fmt.Sprintf("could not fetch film page %s", url), err)
	}

	// A page without the film title block is a layout we don't understand.
	if film.Title == "" {
		e.logger.Warn("film page did not match expected layout", "url", url)
		return nil, common.NewUserError(fmt.Sprintf("could not parse film page %s", url), common.ErrExtractFailed)
	}

	rows := model.ScheduleRows(film, showings)
	e.logger.Info("extracted film schedule", "url", url, "title", film.Title, "showings", len(showings))
	return rows, nil
}

func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

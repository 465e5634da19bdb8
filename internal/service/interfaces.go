// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/seongmin-k/biffplan/internal/model"
)

// Handle identifies one named sheet inside the configured spreadsheet.
type Handle struct {
	SpreadsheetID string
	Sheet         string
}

// TabularStore defines the contract for the remote tabular store. Every
// sheet is a rectangular string table; Save is a whole-sheet overwrite and
// the only mutation primitive.
type TabularStore interface {
	// EnsureTable returns a handle to the named sheet, creating it with the
	// given header row if absent. Idempotent once created.
	EnsureTable(ctx context.Context, name string, headers []string) (Handle, error)
	// Load fetches the sheet as a text table. Header-only sheets yield zero
	// rows with the right columns; a sheet with no header yields an empty
	// table — callers re-check column presence before keying into it.
	Load(ctx context.Context, h Handle) (*model.Table, error)
	// Save replaces the sheet's entire contents, header included, and
	// invalidates any cached load for the handle before returning.
	Save(ctx context.Context, h Handle, table *model.Table) error
}

// Coordinate is a resolved latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Geocoder resolves a free-text place to a coordinate. A nil result with a
// nil error means the place could not be resolved; resolution faults never
// escape this boundary.
type Geocoder interface {
	Resolve(ctx context.Context, address, name string) (*Coordinate, error)
}

// ScheduleExtractor converts one film detail page into schedule rows. Any
// fetch or parse fault yields (nil, err) with no partial rows.
type ScheduleExtractor interface {
	Extract(ctx context.Context, url string) ([]model.ScheduleRow, error)
}

// GeocodeCache persists resolved queries so repeated runs skip the network.
type GeocodeCache interface {
	Get(ctx context.Context, query string) (*Coordinate, bool, error)
	Put(ctx context.Context, query string, c *Coordinate) error
	Close() error
}

package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/seongmin-k/biffplan/internal/common"
	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
	"google.golang.org/api/sheets/v4"
)

// Store implements the TabularStore interface against one Google
// spreadsheet. Transport and auth faults wrap into common.UserError and
// propagate to the command boundary; no operation retries.
type Store struct {
	service       *sheets.Service
	logger        *slog.Logger
	cache         *loadCache
	knownSheets   map[string]bool
	config        Config
	spreadsheetID string
	mu            sync.Mutex
}

var _ service.TabularStore = (*Store)(nil)

// NewStore creates a store bound to the configured spreadsheet, creating the
// spreadsheet itself when no ID is configured.
func NewStore(ctx context.Context, config Config, logger *slog.Logger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := newSheetsService(ctx, config)
	if err != nil {
		return nil, common.NewUserError("could not connect to Google Sheets", err)
	}

	s := &Store{
		service:     srv,
		logger:      logger,
		config:      config,
		cache:       newLoadCache(config.CacheTTL),
		knownSheets: make(map[string]bool),
	}

	if err := s.openSpreadsheet(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) openSpreadsheet(ctx context.Context) error {
	if s.config.SpreadsheetID != "" {
		sp, err := s.service.Spreadsheets.Get(s.config.SpreadsheetID).Context(ctx).Do()
		if err != nil {
			return common.NewUserError(fmt.Sprintf("unable to access spreadsheet %s", s.config.SpreadsheetID), err)
		}
		s.spreadsheetID = sp.SpreadsheetId
		for _, sheet := range sp.Sheets {
			s.knownSheets[sheet.Properties.Title] = true
		}
		return nil
	}

	created, err := s.service.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: s.config.SpreadsheetName},
	}).Context(ctx).Do()
	if err != nil {
		return common.NewUserError("unable to create spreadsheet", err)
	}

	s.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)
	s.spreadsheetID = created.SpreadsheetId
	for _, sheet := range created.Sheets {
		s.knownSheets[sheet.Properties.Title] = true
	}
	return nil
}

// EnsureTable returns a handle to the named sheet, creating it with the
// header row if absent. Repeat calls are side-effect-free once created.
func (s *Store) EnsureTable(ctx context.Context, name string, headers []string) (service.Handle, error) {
	h := service.Handle{SpreadsheetID: s.spreadsheetID, Sheet: name}

	s.mu.Lock()
	known := s.knownSheets[name]
	s.mu.Unlock()
	if known {
		return h, nil
	}

	_, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{
					Title: name,
					GridProperties: &sheets.GridProperties{
						RowCount:    s.config.NewSheetRows,
						ColumnCount: s.config.NewSheetCols,
					},
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		// Racing a previous run that already added the sheet is fine.
		if !strings.Contains(err.Error(), "already exists") {
			return service.Handle{}, common.NewUserError(fmt.Sprintf("unable to create sheet %q", name), err)
		}
	} else if len(headers) > 0 {
		headerRow := make([]any, len(headers))
		for i, c := range headers {
			headerRow[i] = c
		}
		_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, valuesRange(name), &sheets.ValueRange{
			Values: [][]any{headerRow},
		}).ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return service.Handle{}, common.NewUserError(fmt.Sprintf("unable to write header row for %q", name), err)
		}
		s.logger.Info("created sheet", "sheet", name, "columns", len(headers))
	}

	s.mu.Lock()
	s.knownSheets[name] = true
	s.mu.Unlock()
	return h, nil
}

// Load fetches the whole sheet as a text table. Ragged rows are padded with
// empty strings; a header-only sheet yields zero rows with the right
// columns; a sheet with no header at all yields an empty table.
func (s *Store) Load(ctx context.Context, h service.Handle) (*model.Table, error) {
	if cached, ok := s.cache.get(h); ok {
		s.logger.Debug("load served from cache", "sheet", h.Sheet)
		return cached, nil
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, valuesRange(h.Sheet)).Context(ctx).Do()
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("unable to load sheet %q", h.Sheet), err)
	}

	table := tableFromValues(resp.Values)
	s.cache.put(h, table)

	s.logger.Debug("loaded sheet", "sheet", h.Sheet, "rows", len(table.Rows), "columns", len(table.Columns))
	return table, nil
}

// Save replaces the sheet's entire contents with the table, header row
// included. The cached load for this handle is invalidated before Save
// returns, so a subsequent Load is never stale relative to this write.
// The clear-then-write pair is not atomic for concurrent readers; the store
// is single-user by design.
func (s *Store) Save(ctx context.Context, h service.Handle, table *model.Table) error {
	defer s.cache.invalidate(h)

	_, err := s.service.Spreadsheets.Values.Clear(s.spreadsheetID, valuesRange(h.Sheet), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return common.NewUserError(fmt.Sprintf("unable to clear sheet %q", h.Sheet), err)
	}

	_, err = s.service.Spreadsheets.Values.Update(s.spreadsheetID, valuesRange(h.Sheet), &sheets.ValueRange{
		Values: valuesFromTable(table),
	}).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return common.NewUserError(fmt.Sprintf("unable to save sheet %q", h.Sheet), err)
	}

	s.logger.Info("saved sheet", "sheet", h.Sheet, "rows", len(table.Rows))
	return nil
}

// valuesRange addresses a whole sheet by name. Quoting keeps sheet names
// with spaces or Korean text valid in A1 notation.
func valuesRange(sheet string) string {
	return fmt.Sprintf("'%s'!A1:ZZ", strings.ReplaceAll(sheet, "'", "''"))
}

// valuesFromTable builds the header-plus-rows grid Save writes. Rows are
// padded or truncated to the column count so the write is rectangular.
func valuesFromTable(table *model.Table) [][]any {
	values := make([][]any, 0, len(table.Rows)+1)
	header := make([]any, len(table.Columns))
	for i, c := range table.Columns {
		header[i] = c
	}
	values = append(values, header)
	for _, row := range table.Rows {
		cells := make([]any, len(table.Columns))
		for i := range cells {
			if i < len(row) {
				cells[i] = row[i]
			} else {
				cells[i] = ""
			}
		}
		values = append(values, cells)
	}
	return values
}

// tableFromValues converts an API value grid into a Table, coercing every
// cell to text.
func tableFromValues(values [][]any) *model.Table {
	if len(values) == 0 {
		return model.NewTable(nil)
	}

	columns := make([]string, len(values[0]))
	for i, v := range values[0] {
		columns[i] = cellString(v)
	}

	table := model.NewTable(columns)
	for _, raw := range values[1:] {
		cells := make([]string, len(raw))
		for i, v := range raw {
			cells[i] = cellString(v)
		}
		table.Rows = append(table.Rows, cells)
	}
	table.Normalize()
	return table
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

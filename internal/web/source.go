package web

import (
	"context"
	"sync"

	"github.com/arifmahmud/sheetboard/internal/cache"
	"github.com/arifmahmud/sheetboard/internal/sheets"
	"github.com/rs/zerolog/log"
)

// RowSource fetches a named worksheet's rows. Handlers depend on this instead
// of the concrete sheets client so tests can stub worksheet data.
type RowSource interface {
	Records(ctx context.Context, worksheet string) ([]sheets.Record, error)
}

// SheetSource reads worksheets from one named spreadsheet, resolving its ID
// on first use and going through the row cache when one is configured.
type SheetSource struct {
	client          *sheets.Client
	spreadsheetName string
	cache           cache.RowCache

	mu            sync.Mutex
	spreadsheetID string
}

func NewSheetSource(client *sheets.Client, spreadsheetName string, rowCache cache.RowCache) *SheetSource {
	if rowCache == nil {
		rowCache = cache.NewNoopRowCache()
	}
	return &SheetSource{
		client:          client,
		spreadsheetName: spreadsheetName,
		cache:           rowCache,
	}
}

func (s *SheetSource) Records(ctx context.Context, worksheet string) ([]sheets.Record, error) {
	if rows, ok, err := s.cache.Get(ctx, worksheet); err == nil && ok {
		return rows, nil
	} else if err != nil {
		log.Warn().Err(err).Str("worksheet", worksheet).Msg("row cache get failed")
	}

	id, err := s.spreadsheet(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.client.Records(ctx, id, worksheet)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, worksheet, rows); err != nil {
		log.Warn().Err(err).Str("worksheet", worksheet).Msg("row cache set failed")
	}

	return rows, nil
}

// spreadsheet memoizes the Drive lookup of the spreadsheet ID. A lookup that
// fails is retried on the next request rather than remembered.
func (s *SheetSource) spreadsheet(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	id, err := s.client.OpenSpreadsheet(ctx, s.spreadsheetName)
	if err != nil {
		return "", err
	}

	s.spreadsheetID = id
	return id, nil
}

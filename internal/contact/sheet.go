package contact

import (
	"context"
	"time"
)

// RowAppender appends one row to a worksheet. The sheets client satisfies it.
type RowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID, worksheet string, values []any) error
}

// SheetStore appends submissions as rows to a contact worksheet, so the
// spreadsheet stays the single place all business data lives.
type SheetStore struct {
	appender      RowAppender
	spreadsheetID string
	worksheet     string
}

func NewSheetStore(appender RowAppender, spreadsheetID, worksheet string) *SheetStore {
	return &SheetStore{
		appender:      appender,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}
}

func (s *SheetStore) Save(ctx context.Context, sub Submission) error {
	row := []any{
		sub.ReceivedAt.Format(time.RFC3339),
		sub.Name,
		sub.Email,
		sub.Message,
	}
	return s.appender.AppendRow(ctx, s.spreadsheetID, s.worksheet, row)
}

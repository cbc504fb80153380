package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifmahmud/sheetboard/internal/contact"
)

type fakeAppender struct {
	spreadsheetID string
	worksheet     string
	values        []any
	err           error
}

func (f *fakeAppender) AppendRow(ctx context.Context, spreadsheetID, worksheet string, values []any) error {
	f.spreadsheetID = spreadsheetID
	f.worksheet = worksheet
	f.values = values
	return f.err
}

func TestSheetStore_AppendsRowLayout(t *testing.T) {
	appender := &fakeAppender{}
	store := contact.NewSheetStore(appender, "sheet-id", "Contact")

	received := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	err := store.Save(context.Background(), contact.Submission{
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "Do you deliver on Fridays?",
		ReceivedAt: received,
	})
	require.NoError(t, err)

	assert.Equal(t, "sheet-id", appender.spreadsheetID)
	assert.Equal(t, "Contact", appender.worksheet)
	assert.Equal(t, []any{
		"2024-06-01T10:30:00Z",
		"Alice",
		"alice@example.com",
		"Do you deliver on Fridays?",
	}, appender.values)
}

func TestSheetStore_PropagatesAppendError(t *testing.T) {
	appender := &fakeAppender{err: errors.New("append failed")}
	store := contact.NewSheetStore(appender, "sheet-id", "Contact")

	err := store.Save(context.Background(), contact.Submission{Name: "Bob"})
	assert.Error(t, err)
}

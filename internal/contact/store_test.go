package contact_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arifmahmud/sheetboard/internal/contact"
)

func TestLogStore_AcceptsSubmission(t *testing.T) {
	store := contact.NewLogStore()

	err := store.Save(context.Background(), contact.Submission{
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "hello",
		ReceivedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
}

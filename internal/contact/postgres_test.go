package contact

import (
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertSubmissionSQL_NamedBinding(t *testing.T) {
	received := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	sub := Submission{
		Name:       "Alice",
		Email:      "alice@example.com",
		Message:    "hello",
		ReceivedAt: received,
	}

	query, args, err := sqlx.Named(insertSubmissionSQL, sub)
	require.NoError(t, err)

	// every named parameter resolves through the db tags, in column order
	assert.Equal(t, []any{"Alice", "alice@example.com", "hello", received}, args)

	bound := sqlx.Rebind(sqlx.DOLLAR, query)
	assert.Contains(t, bound, "INSERT INTO contact_submissions (name, email, message, received_at)")
	assert.Contains(t, bound, "$4")
	assert.NotContains(t, bound, ":received_at")
}

func TestCreateTableSQL_Shape(t *testing.T) {
	assert.Contains(t, createTableSQL, "CREATE TABLE IF NOT EXISTS contact_submissions")
	for _, column := range []string{"name", "email", "message", "received_at"} {
		assert.True(t, strings.Contains(createTableSQL, column), column)
	}
	assert.Contains(t, createTableSQL, "TIMESTAMPTZ")
}

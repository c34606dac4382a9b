package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/adapters/database"
	"github.com/winnipegconnect/backend/internal/domain/entities"
)

func TestSearchAnalyticsAdapter_LogEventFillsDefaults(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewSearchAnalyticsAdapter(client)

	mock.ExpectExec(`INSERT INTO "search_analytics"`).WillReturnResult(sqlmock.NewResult(0, 1))

	event := &entities.SearchEvent{SearchTerm: "roofing"}
	require.NoError(t, repo.LogEvent(context.Background(), event))

	assert.NotEmpty(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchAnalyticsAdapter_GetZeroResultQueries(t *testing.T) {
	client, mock := setupMockDB(t)
	repo := database.NewSearchAnalyticsAdapter(client)

	now := time.Now()
	mock.ExpectQuery(`FROM "search_analytics" WHERE \("result_count" = 0\) ORDER BY "created_at" DESC LIMIT 5`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "search_term", "category", "min_rating", "sort_key",
			"result_count", "latency_ms", "session_id", "created_at",
		}).AddRow("e1", "roofing", "", 0.0, "rating", 0, 2, "", now))

	events, err := repo.GetZeroResultQueries(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "roofing", events[0].SearchTerm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

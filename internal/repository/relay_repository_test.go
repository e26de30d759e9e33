package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suar-net/food-relay/internal/model"
)

func TestRelayRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	status := 200
	executedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	record := &model.RelayRecord{
		ID:                 "0b6f3c1e-6a53-4a57-9d2c-3f1f4c1f9a10",
		Kind:               model.RelayKindLookup,
		CallerID:           "test-user-123",
		UpstreamURL:        "https://world.openfoodfacts.org/api/v2/product/3017624010701?product_type=all",
		UpstreamStatusCode: &status,
		DurationMs:         42,
		ExecutedAt:         executedAt,
	}

	mock.ExpectExec("INSERT INTO relay_history").
		WithArgs(record.ID, "lookup", record.CallerID, record.UpstreamURL, &status, int64(42), "", executedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewRepository(db).Relay()
	require.NoError(t, repo.Create(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelayRepositoryCreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO relay_history").WillReturnError(errors.New("connection refused"))

	err = NewRelayRepository(db).Create(context.Background(), &model.RelayRecord{Kind: model.RelayKindSearch})
	assert.EqualError(t, err, "connection refused")
}

func TestRelayRepositoryGetByCallerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	newer := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "kind", "caller_id", "upstream_url", "upstream_status_code", "duration_ms", "error", "executed_at"}).
		AddRow("b", "search", "alice", "https://example.test/search", int64(200), int64(12), "", newer).
		AddRow("a", "lookup", "alice", "https://example.test/product/1", nil, int64(30000), "request timeout", older)

	mock.ExpectQuery("SELECT (.+) FROM relay_history").
		WithArgs("alice", 50).
		WillReturnRows(rows)

	records, err := NewRelayRepository(db).GetByCallerID(context.Background(), "alice", 50)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "b", records[0].ID)
	assert.Equal(t, model.RelayKindSearch, records[0].Kind)
	require.NotNil(t, records[0].UpstreamStatusCode)
	assert.Equal(t, 200, *records[0].UpstreamStatusCode)

	assert.Equal(t, model.RelayKindLookup, records[1].Kind)
	assert.Nil(t, records[1].UpstreamStatusCode)
	assert.Equal(t, "request timeout", records[1].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

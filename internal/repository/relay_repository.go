package repository

import (
	"context"
	"database/sql"

	"github.com/suar-net/food-relay/internal/model"
)

// relayRepository is the implementation of IRelayRepository.
type relayRepository struct {
	db *sql.DB
}

// NewRelayRepository is the constructor for relayRepository.
func NewRelayRepository(db *sql.DB) IRelayRepository {
	return &relayRepository{db: db}
}

// Create inserts a new relay record into the database.
func (r *relayRepository) Create(ctx context.Context, record *model.RelayRecord) error {
	query := `
		INSERT INTO relay_history (id, kind, caller_id, upstream_url, upstream_status_code, duration_ms, error, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		string(record.Kind),
		record.CallerID,
		record.UpstreamURL,
		record.UpstreamStatusCode,
		record.DurationMs,
		record.Error,
		record.ExecutedAt,
	)

	return err
}

// GetByCallerID retrieves the most recent relay records of a caller.
func (r *relayRepository) GetByCallerID(ctx context.Context, callerID string, limit int) ([]*model.RelayRecord, error) {
	query := `
		SELECT id, kind, caller_id, upstream_url, upstream_status_code, duration_ms, error, executed_at
		FROM relay_history
		WHERE caller_id = $1
		ORDER BY executed_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, callerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*model.RelayRecord{}
	for rows.Next() {
		var rec model.RelayRecord
		var kind string
		var statusCode sql.NullInt64
		if err := rows.Scan(
			&rec.ID,
			&kind,
			&rec.CallerID,
			&rec.UpstreamURL,
			&statusCode,
			&rec.DurationMs,
			&rec.Error,
			&rec.ExecutedAt,
		); err != nil {
			return nil, err
		}
		rec.Kind = model.RelayKind(kind)
		if statusCode.Valid {
			code := int(statusCode.Int64)
			rec.UpstreamStatusCode = &code
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}

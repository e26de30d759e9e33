package repository

import (
	"context"
	"database/sql"

	"github.com/suar-net/food-relay/internal/model"
)

type IRelayRepository interface {
	Create(ctx context.Context, record *model.RelayRecord) error
	GetByCallerID(ctx context.Context, callerID string, limit int) ([]*model.RelayRecord, error)
}

type IRepository interface {
	Relay() IRelayRepository
}

type Repository struct {
	relay IRelayRepository
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		relay: NewRelayRepository(db),
	}
}

func (r *Repository) Relay() IRelayRepository {
	return r.relay
}

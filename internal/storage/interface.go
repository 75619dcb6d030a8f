package storage

import (
	"context"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Match record operations
	SaveMatchRecord(ctx context.Context, record *model.MatchRecord) error
	GetMatchRecord(ctx context.Context, id model.MatchID) (*model.MatchRecord, error)
	ListMatchRecords(ctx context.Context) ([]*model.MatchRecord, error)
	DeleteMatchRecord(ctx context.Context, id model.MatchID) error
}

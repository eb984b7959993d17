package store

import (
	"context"
	"errors"

	"github.com/railconnect/reservation-service/internal/models"
)

// ErrNotExist means no snapshot has ever been saved. The caller seeds
// default data instead of treating this as a failure.
var ErrNotExist = errors.New("no saved snapshot")

// Snapshot is the full persisted state: every train, every confirmed
// passenger and the waiting queue in order.
type Snapshot struct {
	Trains    []models.Train
	Confirmed []models.Passenger
	Waiting   []models.Passenger
}

// Store persists and restores engine snapshots. Save is called after
// every mutating operation; Load once at startup.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

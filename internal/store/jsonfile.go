package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/railconnect/reservation-service/internal/models"
)

// FileStore keeps the snapshot in two JSON files: an array of trains
// and an object holding confirmed passengers plus the waiting queue.
type FileStore struct {
	trainsFile   string
	bookingsFile string
}

type bookingsDocument struct {
	Passengers []models.Passenger `json:"passengers"`
	Waiting    []models.Passenger `json:"waiting"`
}

func NewFileStore(trainsFile, bookingsFile string) *FileStore {
	return &FileStore{trainsFile: trainsFile, bookingsFile: bookingsFile}
}

func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(s.trainsFile)
	if os.IsNotExist(err) {
		return nil, ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.trainsFile, err)
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, &snap.Trains); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.trainsFile, err)
	}

	// Bookings file may lag behind the trains file (first run saves
	// trains before any booking exists), so its absence is not fatal.
	bdata, err := os.ReadFile(s.bookingsFile)
	if os.IsNotExist(err) {
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.bookingsFile, err)
	}

	var doc bookingsDocument
	if err := json.Unmarshal(bdata, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.bookingsFile, err)
	}
	snap.Confirmed = doc.Passengers
	snap.Waiting = doc.Waiting
	return snap, nil
}

func (s *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	tdata, err := json.MarshalIndent(snap.Trains, "", "  ")
	if err != nil {
		return fmt.Errorf("encode trains: %w", err)
	}
	if err := os.WriteFile(s.trainsFile, tdata, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.trainsFile, err)
	}

	doc := bookingsDocument{Passengers: snap.Confirmed, Waiting: snap.Waiting}
	bdata, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode bookings: %w", err)
	}
	if err := os.WriteFile(s.bookingsFile, bdata, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.bookingsFile, err)
	}
	return nil
}

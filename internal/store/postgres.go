package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/railconnect/reservation-service/internal/models"
	"gorm.io/gorm"
)

// PostgresStore persists snapshots into two tables. Each Save replaces
// the previous snapshot inside one transaction; Load reads rows back
// in their saved order.
type PostgresStore struct {
	db *gorm.DB
}

const (
	rowStateConfirmed = "confirmed"
	rowStateWaiting   = "waiting"
)

// TrainRow and PassengerRow are the storage shapes; the domain models
// stay free of gorm concerns.
type TrainRow struct {
	ID          uint    `gorm:"primaryKey"`
	Position    int     `gorm:"not null;index"`
	TrainID     string  `gorm:"not null"`
	Name        string  `gorm:"not null"`
	Source      string  `gorm:"not null"`
	Destination string  `gorm:"not null"`
	TotalSeats  int     `gorm:"not null"`
	BookedSeats int     `gorm:"not null"`
	BaseFare    float64 `gorm:"not null"`
}

type PassengerRow struct {
	ID       uint   `gorm:"primaryKey"`
	State    string `gorm:"type:varchar(20);not null;index"`
	Position int    `gorm:"not null;index"`
	Name     string `gorm:"not null"`
	Age      int    `gorm:"not null"`
	Gender   string `gorm:"not null"`
	PNR      string `gorm:"column:pnr"`
	TrainID  string
	SeatNo   int
	Fare     float64
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	var trainRows []TrainRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&trainRows).Error; err != nil {
		return nil, fmt.Errorf("load trains: %w", err)
	}
	if len(trainRows) == 0 {
		return nil, ErrNotExist
	}

	var passengerRows []PassengerRow
	if err := s.db.WithContext(ctx).Order("position ASC").Find(&passengerRows).Error; err != nil {
		return nil, fmt.Errorf("load passengers: %w", err)
	}

	snap := &Snapshot{}
	for _, r := range trainRows {
		snap.Trains = append(snap.Trains, models.Train{
			TrainID:     r.TrainID,
			Name:        r.Name,
			Source:      r.Source,
			Destination: r.Destination,
			TotalSeats:  r.TotalSeats,
			BookedSeats: r.BookedSeats,
			BaseFare:    r.BaseFare,
		})
	}
	for _, r := range passengerRows {
		p := models.Passenger{
			Name:    r.Name,
			Age:     r.Age,
			Gender:  r.Gender,
			PNR:     r.PNR,
			TrainID: r.TrainID,
			SeatNo:  r.SeatNo,
			Fare:    r.Fare,
		}
		switch r.State {
		case rowStateConfirmed:
			p.Status = models.StatusConfirmed
			snap.Confirmed = append(snap.Confirmed, p)
		case rowStateWaiting:
			p.Status = models.StatusWaitlisted
			snap.Waiting = append(snap.Waiting, p)
		default:
			return nil, fmt.Errorf("load passengers: unknown state %q", r.State)
		}
	}
	return snap, nil
}

func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	if snap == nil {
		return errors.New("nil snapshot")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&TrainRow{}).Error; err != nil {
			return fmt.Errorf("clear trains: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PassengerRow{}).Error; err != nil {
			return fmt.Errorf("clear passengers: %w", err)
		}

		for i, t := range snap.Trains {
			row := TrainRow{
				Position:    i,
				TrainID:     t.TrainID,
				Name:        t.Name,
				Source:      t.Source,
				Destination: t.Destination,
				TotalSeats:  t.TotalSeats,
				BookedSeats: t.BookedSeats,
				BaseFare:    t.BaseFare,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("save train %s: %w", t.TrainID, err)
			}
		}

		for i, p := range snap.Confirmed {
			if err := tx.Create(passengerRow(p, rowStateConfirmed, i)).Error; err != nil {
				return fmt.Errorf("save passenger %s: %w", p.PNR, err)
			}
		}
		for i, p := range snap.Waiting {
			if err := tx.Create(passengerRow(p, rowStateWaiting, i)).Error; err != nil {
				return fmt.Errorf("save waiting passenger %s: %w", p.Name, err)
			}
		}
		return nil
	})
}

func passengerRow(p models.Passenger, state string, position int) *PassengerRow {
	return &PassengerRow{
		State:    state,
		Position: position,
		Name:     p.Name,
		Age:      p.Age,
		Gender:   p.Gender,
		PNR:      p.PNR,
		TrainID:  p.TrainID,
		SeatNo:   p.SeatNo,
		Fare:     p.Fare,
	}
}

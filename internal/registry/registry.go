package registry

import (
	"strings"

	"github.com/railconnect/reservation-service/internal/models"
)

// Registry owns the set of known trains. Trains are held behind
// pointers so references handed out by FindByID stay valid when the
// set grows. It performs no uniqueness checks; callers are expected
// to reject duplicate IDs before adding.
type Registry struct {
	trains []*models.Train
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Add(t models.Train) {
	tc := t
	r.trains = append(r.trains, &tc)
}

// FindByID returns the first train with the exact given ID, or nil.
func (r *Registry) FindByID(id string) *models.Train {
	for _, t := range r.trains {
		if t.TrainID == id {
			return t
		}
	}
	return nil
}

// Search returns trains matching both source and destination,
// case-insensitively, in insertion order. No match yields an empty
// slice, not an error.
func (r *Registry) Search(source, destination string) []models.Train {
	res := []models.Train{}
	for _, t := range r.trains {
		if strings.EqualFold(t.Source, source) && strings.EqualFold(t.Destination, destination) {
			res = append(res, *t)
		}
	}
	return res
}

// All returns a copy of every train in insertion order.
func (r *Registry) All() []models.Train {
	res := make([]models.Train, 0, len(r.trains))
	for _, t := range r.trains {
		res = append(res, *t)
	}
	return res
}

func (r *Registry) Len() int {
	return len(r.trains)
}

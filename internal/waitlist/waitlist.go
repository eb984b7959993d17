package waitlist

import "github.com/railconnect/reservation-service/internal/models"

// Queue is a strict FIFO of pending booking requests. No priorities,
// no reordering, no capacity bound.
type Queue struct {
	entries []models.Passenger
}

func New() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(p models.Passenger) {
	q.entries = append(q.entries, p)
}

// DequeueFront removes and returns the longest-waiting request.
// ok is false when nobody is waiting.
func (q *Queue) DequeueFront() (models.Passenger, bool) {
	if len(q.entries) == 0 {
		return models.Passenger{}, false
	}
	front := q.entries[0]
	q.entries = q.entries[1:]
	return front, true
}

func (q *Queue) IsEmpty() bool {
	return len(q.entries) == 0
}

func (q *Queue) Len() int {
	return len(q.entries)
}

// Snapshot returns the waiting requests in queue order without
// mutating the queue.
func (q *Queue) Snapshot() []models.Passenger {
	out := make([]models.Passenger, len(q.entries))
	copy(out, q.entries)
	return out
}

// Restore replaces the queue contents, preserving the given order.
// Used when loading persisted state.
func (q *Queue) Restore(entries []models.Passenger) {
	q.entries = make([]models.Passenger, len(entries))
	copy(q.entries, entries)
}

package waitlist

import (
	"fmt"
	"testing"

	"github.com/railconnect/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	q := New()
	for i := 0; i < 5; i++ {
		q.Enqueue(models.Passenger{Name: fmt.Sprintf("passenger-%d", i)})
	}

	for i := 0; i < 5; i++ {
		p, ok := q.DequeueFront()
		require.True(t, ok)
		assert.Equal(t, fmt.Sprintf("passenger-%d", i), p.Name)
	}
	assert.True(t, q.IsEmpty())
}

func TestDequeueFront_Empty(t *testing.T) {
	q := New()

	_, ok := q.DequeueFront()
	assert.False(t, ok)
}

func TestSnapshot_DoesNotMutate(t *testing.T) {
	q := New()
	q.Enqueue(models.Passenger{Name: "first"})
	q.Enqueue(models.Passenger{Name: "second"})

	snap := q.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "first", snap[0].Name)
	assert.Equal(t, 2, q.Len())

	// Mutating the snapshot must not touch the queue.
	snap[0].Name = "changed"
	front, ok := q.DequeueFront()
	require.True(t, ok)
	assert.Equal(t, "first", front.Name)
}

func TestRestore(t *testing.T) {
	q := New()
	q.Enqueue(models.Passenger{Name: "stale"})

	q.Restore([]models.Passenger{{Name: "a"}, {Name: "b"}})
	assert.Equal(t, 2, q.Len())

	front, ok := q.DequeueFront()
	require.True(t, ok)
	assert.Equal(t, "a", front.Name)
}

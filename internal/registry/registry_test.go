package registry

import (
	"testing"

	"github.com/railconnect/reservation-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrains() []models.Train {
	return []models.Train{
		{TrainID: "123A", Name: "Express One", Source: "Mumbai", Destination: "Pune", TotalSeats: 100, BaseFare: 200},
		{TrainID: "456B", Name: "Coastal Mail", Source: "Chennai", Destination: "Bangalore", TotalSeats: 80, BaseFare: 350},
		{TrainID: "789C", Name: "InterCity", Source: "Delhi", Destination: "Agra", TotalSeats: 120, BaseFare: 150},
	}
}

func newRegistry() *Registry {
	r := New()
	for _, t := range sampleTrains() {
		r.Add(t)
	}
	return r
}

func TestFindByID(t *testing.T) {
	r := newRegistry()

	train := r.FindByID("456B")
	require.NotNil(t, train)
	assert.Equal(t, "Coastal Mail", train.Name)

	assert.Nil(t, r.FindByID("000X"))
}

func TestFindByID_StableAcrossGrowth(t *testing.T) {
	r := newRegistry()
	train := r.FindByID("123A")
	require.NotNil(t, train)

	// References handed out must survive later additions.
	for i := 0; i < 100; i++ {
		r.Add(models.Train{TrainID: "X", Source: "A", Destination: "B"})
	}
	train.BookedSeats = 7

	assert.Equal(t, 7, r.FindByID("123A").BookedSeats)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	r := newRegistry()

	res := r.Search("mumbai", "PUNE")
	require.Len(t, res, 1)
	assert.Equal(t, "123A", res[0].TrainID)
}

func TestSearch_NoMatchIsEmptyNotNil(t *testing.T) {
	r := newRegistry()

	res := r.Search("Mumbai", "Agra")
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestSearch_InsertionOrder(t *testing.T) {
	r := newRegistry()
	r.Add(models.Train{TrainID: "999Z", Name: "Second Express", Source: "Mumbai", Destination: "Pune"})

	res := r.Search("Mumbai", "Pune")
	require.Len(t, res, 2)
	assert.Equal(t, "123A", res[0].TrainID)
	assert.Equal(t, "999Z", res[1].TrainID)
}

func TestAll(t *testing.T) {
	r := newRegistry()

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "123A", all[0].TrainID)
	assert.Equal(t, "789C", all[2].TrainID)

	// All returns copies, not live references.
	all[0].BookedSeats = 50
	assert.Equal(t, 0, r.FindByID("123A").BookedSeats)
}

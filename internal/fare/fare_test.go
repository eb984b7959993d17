package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		base     float64
		occupied int
		want     float64
	}{
		{"first seat", 100, 1, 101},
		{"tenth seat", 100, 10, 110},
		{"full hundred", 100, 100, 200},
		{"base 200 first seat", 200, 1, 202},
		{"base 350 third seat", 350, 3, 360.5},
		{"zero base", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Compute(tt.base, tt.occupied), 1e-9)
		})
	}
}

func TestCompute_LinearInOccupancy(t *testing.T) {
	base := 150.0
	for n := 1; n <= 120; n++ {
		assert.InDelta(t, base*(1+0.01*float64(n)), Compute(base, n), 1e-9)
	}
}

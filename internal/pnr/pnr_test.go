package pnr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Format(t *testing.T) {
	p := New()

	assert.Len(t, p, 8)
	for _, r := range p {
		ok := (r >= '0' && r <= '9') || (r >= 'A' && r <= 'Z')
		assert.True(t, ok, "unexpected character %q in PNR %s", r, p)
	}
}

func TestNew_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		p := New()
		assert.False(t, seen[p], "duplicate PNR %s after %d draws", p, i)
		seen[p] = true
	}
}

package pnr

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh 8-character uppercase booking reference.
// It takes the leading hex of a random UUID, so collisions are
// negligible at realistic booking volumes and no counter is needed.
func New() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

// Package directory resolves configured player handles to stable player
// profiles. The production implementation talks to the FACEIT data API;
// a static implementation serves tests and offline development.
package directory

import (
	"context"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Directory resolves a player handle to its profile
type Directory interface {
	Lookup(ctx context.Context, handle string) (*model.Profile, error)
}

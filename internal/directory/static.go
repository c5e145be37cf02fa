package directory

import (
	"context"
	"fmt"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Static is an in-memory Directory keyed by nickname, for tests and
// offline development without a FACEIT API key.
type Static struct {
	profiles map[string]model.Profile
}

// NewStatic creates a static directory from the given profiles
func NewStatic(profiles ...model.Profile) *Static {
	m := make(map[string]model.Profile, len(profiles))
	for _, p := range profiles {
		m[p.Nickname] = p
	}
	return &Static{profiles: m}
}

// Ensure Static implements the interface
var _ Directory = (*Static)(nil)

func (s *Static) Lookup(ctx context.Context, handle string) (*model.Profile, error) {
	p, ok := s.profiles[handle]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrProfileNotFound, handle)
	}
	return &p, nil
}

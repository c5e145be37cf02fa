// Package scoring holds the fixed rule table translating in-game events
// into signed anchor-count adjustments. The table is append-only policy:
// it never enforces event ordering or exclusivity, callers record each
// applicable event once per occurrence.
package scoring

import (
	"fmt"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// EventKind identifies an in-game occurrence that adjusts a player's anchor count
type EventKind string

const (
	EventTSideStart     EventKind = "t_side_start"    // round started on the T side
	EventCTSideStart    EventKind = "ct_side_start"   // round started on the CT side
	EventLongMatch      EventKind = "long_match"      // match reached 20+ rounds
	EventMatchCompleted EventKind = "match_completed" // match finished
)

var deltas = map[EventKind]int{
	EventTSideStart:     3,
	EventCTSideStart:    5,
	EventLongMatch:      10,
	EventMatchCompleted: -1,
}

// Delta resolves an event kind to its signed counter adjustment
func Delta(kind EventKind) (int, error) {
	d, ok := deltas[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownEvent, kind)
	}
	return d, nil
}

// Kinds returns every known event kind in rule-table order
func Kinds() []EventKind {
	return []EventKind{
		EventTSideStart,
		EventCTSideStart,
		EventLongMatch,
		EventMatchCompleted,
	}
}

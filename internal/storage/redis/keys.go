package redis

import (
	"fmt"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Key prefix for all anchor-tracker data
const keyPrefix = "anchor"

// countKey returns the Redis key for a player's anchor counter
func countKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:count:%s", keyPrefix, id)
}

package redis

import (
	"fmt"

	"github.com/jdmorgan/noughts/internal/model"
)

// Key prefix for all match data
const keyPrefix = "noughts"

// matchKey returns the Redis key for a Match record
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

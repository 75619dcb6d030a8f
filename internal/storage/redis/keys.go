package redis

import (
	"fmt"

	"github.com/mcoot/schnapsen-go/internal/model"
)

// Key prefix for all arena data
const keyPrefix = "schnapsen"

// matchKey returns the Redis key for a MatchRecord
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchIndexKey returns the Redis key for the SET of all match record keys
func matchIndexKey() string {
	return fmt.Sprintf("%s:idx:matches", keyPrefix)
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchCache holds derived match lists only. Entries are short-lived
// and wiped wholesale whenever skills or profiles change, since any
// user's mutation can alter every other user's candidates.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const matchCacheTTL = 5 * time.Minute

func matchesCacheKey(userID uuid.UUID) string {
	return "matches:" + userID.String()
}

func invalidateMatches(ctx context.Context, cache MatchCache) {
	if cache == nil {
		return
	}
	_ = cache.DeleteByPattern(ctx, "matches:*")
}

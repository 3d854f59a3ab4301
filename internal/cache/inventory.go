package cache

import (
	"context"
	"fmt"
	"time"
)

// FeedKey is the single cache key for the unfiltered global feed.
// The cached value is a superset snapshot; callers slice it to the
// requested limit. Filtered (byUser) reads never touch this key.
const FeedKey = "feed:global"

const UserKeyPrefix = "user:%d"

const (
	// FeedTTL bounds staleness of the global feed snapshot.
	FeedTTL = time.Hour
	UserTTL = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

// Invalidate deletes a key. Whole-key delete only, never partial.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateFeed drops the global feed snapshot. Called synchronously
// from every mutation that can change feed output, before the response
// is written.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey)
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_NilRedisIsNoop(t *testing.T) {
	n := NewNotifier(nil)
	assert.NoError(t, n.PublishBroadcast(context.Background(), "payload"))
	assert.NoError(t, n.StartSubscriber(context.Background(), nil))
}

func TestNotifier_PublishReachesSubscriber(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payloads := make(chan string, 1)
	require.NoError(t, n.StartSubscriber(ctx, func(channel, payload string) {
		assert.Equal(t, FeedChannel, channel)
		payloads <- payload
	}))

	// Subscription setup races the publish; retry until delivered.
	assert.Eventually(t, func() bool {
		_ = n.PublishBroadcast(ctx, `{"type":"receive_message"}`)
		select {
		case p := <-payloads:
			return p == `{"type":"receive_message"}`
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)
}

func TestNotifier_SubscriberStopsOnCancel(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	n := NewNotifier(rdb)
	ctx, cancel := context.WithCancel(context.Background())

	received := make(chan string, 4)
	require.NoError(t, n.StartSubscriber(ctx, func(_, payload string) {
		received <- payload
	}))

	cancel()
	time.Sleep(50 * time.Millisecond)

	_ = n.PublishBroadcast(context.Background(), "after cancel")
	select {
	case p := <-received:
		t.Fatalf("subscriber delivered %q after cancel", p)
	case <-time.After(100 * time.Millisecond):
	}
}

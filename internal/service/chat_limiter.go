package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ChatLimiter enforces a fixed-window per-user message cap backed by
// Redis, so the limit holds across instances.
type ChatLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewChatLimiter(client *redis.Client, limit int, window time.Duration) *ChatLimiter {
	return &ChatLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// incrWindowScript counts a request and arms the window TTL only when
// the counter is fresh, all in one round trip.
var incrWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// Allow reports whether the user may send another chat message in the
// current window. Fails open on Redis errors so a cache outage does
// not take the chat down.
func (l *ChatLimiter) Allow(ctx context.Context, userID int) (bool, error) {
	key := fmt.Sprintf("chat:ratelimit:%d", userID)

	count, err := incrWindowScript.Run(ctx, l.client, []string{key}, int(l.window.Seconds())).Int64()
	if err != nil {
		return true, err
	}

	return count <= int64(l.limit), nil
}

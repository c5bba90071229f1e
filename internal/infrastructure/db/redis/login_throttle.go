package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginKeyPrefix = "login:attempts:"

// loginAttemptScript counts one attempt in a fixed window. The window starts
// with the first attempt and expires after ARGV[1] milliseconds.
var loginAttemptScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// LoginThrottle limits login attempts per username with a Redis counter.
// It implements ports.LoginThrottle.
type LoginThrottle struct {
	client      redis.Scripter
	maxAttempts int
	window      time.Duration
}

// NewLoginThrottle allows maxAttempts logins per username within window. A
// non-positive maxAttempts disables throttling.
func NewLoginThrottle(client redis.Scripter, maxAttempts int, window time.Duration) *LoginThrottle {
	if window <= 0 {
		window = time.Minute
	}
	return &LoginThrottle{client: client, maxAttempts: maxAttempts, window: window}
}

// Allow records an attempt for username and reports whether it is within the
// limit. The key does not depend on whether the account exists.
func (t *LoginThrottle) Allow(ctx context.Context, username string) (bool, error) {
	if t.maxAttempts <= 0 {
		return true, nil
	}
	result, err := loginAttemptScript.Run(ctx, t.client, []string{loginKeyPrefix + username}, t.window.Milliseconds()).Result()
	if err != nil {
		return false, fmt.Errorf("login throttle: %w", err)
	}
	return withinLimit(result, t.maxAttempts)
}

func withinLimit(result any, maxAttempts int) (bool, error) {
	current, ok := result.(int64)
	if !ok {
		return false, errors.New("login throttle: unexpected counter response")
	}
	return current <= int64(maxAttempts), nil
}

package interceptor

import (
	"context"
	"time"

	"smartparking/be/biz/db/redis"
)

const keyPrefix = "rate_limit:"

// luaScript ensures atomicity of INCR + EXPIRE and provides self-healing for keys without TTL.
// KEYS[1]: The rate limit key
// ARGV[1]: Window duration in seconds
// ARGV[2]: Max limit count
const luaScript = `
local key = KEYS[1]
local window = ARGV[1]
local limit = tonumber(ARGV[2])

local current = redis.call("INCR", key)

if current == 1 then
    redis.call("EXPIRE", key, window)
else
    if redis.call("TTL", key) == -1 then
        redis.call("EXPIRE", key, window)
    end
end

if current > limit then
    return 0
end
return 1
`

// Interceptor is a fixed window counter stored in redis.
type Interceptor struct {
	window time.Duration
	limit  int64
}

func NewInterceptor(windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

// Allow counts one hit for key and reports whether it is still within the limit.
func (i *Interceptor) Allow(ctx context.Context, key string) (bool, error) {
	result, err := redis.GetRedisClient().
		Eval(ctx, luaScript, []string{Key(key)}, int(i.window.Seconds()), i.limit).Int64()
	if err != nil {
		return false, err
	}

	return result == 1, nil
}

// Key is the redis key used for a counter.
func Key(key string) string {
	return keyPrefix + key
}

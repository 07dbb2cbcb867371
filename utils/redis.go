package utils

import (
	"context"

	"github.com/go-redis/redis/v8"
)

var redisClient *redis.Client

// SetRedis stores the global Redis client (OTP storage, rate limits,
// JWT blacklist).
func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

var ctx = context.Background()

func RedisCtx() context.Context {
	return ctx
}

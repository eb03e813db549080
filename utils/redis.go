package utils

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ======================
// Redis Client (conversation memory)
// ======================
var RedisClient *redis.Client

func InitRedis(addr, password string, db int) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := RedisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	log.Println("✅ Redis connected:", addr)
	return nil
}

func IsRedisEnabled() bool {
	return RedisClient != nil
}

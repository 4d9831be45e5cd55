package rdx

import (
	"log"
	"os"
	"time"

	"cocina/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

// RdxSet caches a value under key with a default TTL.
func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 10*time.Minute).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func RdxDel(key string) (int64, error) {
	n, err := Conn.Del(globals.Ctx, key).Result()
	if err != nil {
		log.Println("Redis delete error for key", key, ":", err)
	}
	return n, err
}

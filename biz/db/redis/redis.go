package redis

import (
	"context"
	"fmt"
	"time"

	"smartparking/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

func Init() {
	conf := config.GetRedisConf()
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, conf.Port),
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Errorf("ping redis: %w", err))
	}

	SetRedisClient(client)
	hlog.Infof("redis connected, addr=%s", client.Options().Addr)
}

func GetRedisClient() *redis.Client {
	return redisClient
}

// SetRedisClient replaces the shared client, tests point it at miniredis.
func SetRedisClient(client *redis.Client) {
	redisClient = client
}

package redis

import (
	"context"
	"time"

	"github.com/KianoushAmirpour/detection_server/internal/domain"
	"github.com/redis/go-redis/v9"
)

func ConnectToRedis(addr string, database int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   database,
	})

	ctx, cancelFunc := context.WithTimeout(context.Background(), time.Second*5)
	defer cancelFunc()

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		_ = rdb.Close()
		return nil, domain.NewDomainError(domain.ErrRedisConnection.Code, domain.ErrRedisConnection.Message, err)
	}

	return rdb, nil

}

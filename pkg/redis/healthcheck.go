package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/chiclang/chicweb/pkg/httpserver"
)

// CheckName is the readiness check name reported for the cache backend.
const CheckName = "redis"

// Healthcheck returns a readiness check that pings the cache backend.
func Healthcheck(client redis.UniversalClient) httpserver.Check {
	return httpserver.Check{
		Name: CheckName,
		Func: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Join(ErrUnhealthy, err)
			}
			return nil
		},
	}
}

// Package redis connects to the redis server that backs the shared content
// cache.
//
//	client, err := redis.Connect(ctx, cfg.Redis)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	cache := content.NewRedisCache(client)
//	checks = append(checks, redis.Healthcheck(client))
//
// Errors are sentinel values joined with the go-redis error, so both can be
// matched with errors.Is.
package redis

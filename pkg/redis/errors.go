package redis

import "errors"

var (
	ErrMissingURL = errors.New("redis: REDIS_URL is required for the shared content cache")
	ErrInvalidURL = errors.New("redis: invalid REDIS_URL")
	ErrNotReady   = errors.New("redis: server did not answer before the connect deadline")
	ErrUnhealthy  = errors.New("redis: content cache backend is not reachable")
)

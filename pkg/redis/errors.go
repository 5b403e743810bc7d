package redis

import (
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

var (
	ErrHostRequired = errors.New("redis: host is required")
	ErrInvalidPort  = errors.New("redis: invalid port")
)

// IsNil reports whether err is the go-redis key-missing error.
func IsNil(err error) bool {
	return errors.Is(err, goredis.Nil)
}

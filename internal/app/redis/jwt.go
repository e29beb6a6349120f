package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

const jwtPrefix = "jwt."

func getJWTKey(token string) string {
	return servicePrefix + jwtPrefix + token
}

// WriteJWTToBlacklist отзывает токен на оставшийся срок его жизни
func (c *Client) WriteJWTToBlacklist(ctx context.Context, jwtStr string, jwtTTL time.Duration) error {
	return c.client.Set(ctx, getJWTKey(jwtStr), true, jwtTTL).Err()
}

// IsJWTBlacklisted сообщает, отозван ли токен.
// Ошибка возвращается только при сбое Redis, отсутствие записи ошибкой не считается.
func (c *Client) IsJWTBlacklisted(ctx context.Context, jwtStr string) (bool, error) {
	err := c.client.Get(ctx, getJWTKey(jwtStr)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	SessionTokenPrefix = "login:account:token"
	SessionTokenExpire = 60 * 30
)

// SessionRepository 单点登录：每个账号只留最近一次签发的 access token
type SessionRepository struct{}

func (r *SessionRepository) AddSessionToken(accountID uint64, token string) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, accountID)
	if err := Client.Set(context.Background(), key, token, time.Second*SessionTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *SessionRepository) GetSessionToken(accountID uint64) (string, error) {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, accountID)
	token, err := Client.Get(context.Background(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendSessionToken 校验通过后顺延过期时间
func (r *SessionRepository) ExtendSessionToken(accountID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, accountID)
	_, err := Client.Expire(context.Background(), key, time.Second*SessionTokenExpire).Result()
	if err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *SessionRepository) DeleteSessionToken(accountID uint64) error {
	key := fmt.Sprintf("%s:%d", SessionTokenPrefix, accountID)
	err := Client.Del(context.Background(), key).Err()
	if err != nil {
		return ErrTokenDeleted
	}
	return nil
}

package auth

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

type userGetter interface {
	GetByUID(ctx context.Context, uid string) (*User, error)
}

// LoginChecker resolves a bearer token to the user it was minted for.
type LoginChecker struct {
	redisClient *redis.Client
	users       userGetter
}

func NewLoginChecker(redisClient *redis.Client, users userGetter) *LoginChecker {
	return &LoginChecker{
		redisClient: redisClient,
		users:       users,
	}
}

func (lc *LoginChecker) UserFromToken(ctx context.Context, token string) (*User, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := lc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	uid := cmd.Val()
	if uid == "" {
		return nil, ErrInvalidToken
	}

	return lc.users.GetByUID(ctx, uid)
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	_, err := lc.UserFromToken(ctx, token)
	if errors.Is(err, ErrInvalidToken) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

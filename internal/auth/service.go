package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mpetrov/fittrack/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"

	minPasswordLength = 6
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidToken  = errors.New("invalid token")
)

type usersStore interface {
	Add(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUID(ctx context.Context, uid string) (*User, error)
	UpdateDisplayName(ctx context.Context, uid, displayName string) error
}

type Service struct {
	users       usersStore
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(
	users usersStore,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		redisClient:    redisClient,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

type RegisterParams struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (params RegisterParams) validate() error {
	if params.Email == "" || !strings.Contains(params.Email, "@") {
		return errors.New("invalid email")
	}
	if len(params.Password) < minPasswordLength {
		return fmt.Errorf("password must have at least %d characters", minPasswordLength)
	}
	if params.DisplayName == "" {
		return errors.New("display name empty")
	}
	return nil
}

func (as *Service) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	passwordHash, err := pkg.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		UID:          uuid.NewString(),
		Email:        params.Email,
		DisplayName:  params.DisplayName,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	if err := as.users.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("add user: %w", err)
	}
	return &user, nil
}

func (as *Service) UpdateDisplayName(ctx context.Context, uid, displayName string) error {
	if displayName == "" {
		return errors.New("display name empty")
	}
	return as.users.UpdateDisplayName(ctx, uid, displayName)
}

func (as *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := as.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !pkg.CheckPasswordHash(password, user.PasswordHash) {
		return "", ErrWrongPassword
	}

	token, err := as.RandStringFunc(35)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, user.UID, as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to the set of known sessions, cleaned by ScanAndClean
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	sessionKey := sessionKeyPrefix + token
	cmdExists := as.redisClient.Exists(ctx, sessionKey)
	if err := cmdExists.Err(); err != nil {
		return err
	}
	if cmdExists.Val() == 0 {
		return ErrInvalidToken
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return err
	}
	return as.redisClient.SRem(ctx, tokensSetKey, token).Err()
}

// ScanAndClean removes expired session tokens from the sessions set. The
// session keys themselves expire via redis TTL, only the set needs tending.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmdExists := as.redisClient.Exists(ctx, sessionKey)
		if err := cmdExists.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if cmdExists.Val() > 0 {
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}

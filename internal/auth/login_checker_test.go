package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginChecker_UserFromToken(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	checker := NewLoginChecker(rdb, newUsersStoreStub(testUser()))

	token := "test_token"
	mock.ExpectGet(sessionKeyPrefix + token).SetVal(testUID)

	user, err := checker.UserFromToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, testUID, user.UID)
	assert.Equal(t, testEmail, user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginChecker_UserFromToken_UnknownToken(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	checker := NewLoginChecker(rdb, newUsersStoreStub(testUser()))

	token := "unknown_token"
	mock.ExpectGet(sessionKeyPrefix + token).RedisNil()

	user, err := checker.UserFromToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, user)
}

func TestLoginChecker_UserFromToken_UserGone(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	checker := NewLoginChecker(rdb, newUsersStoreStub())

	token := "test_token"
	mock.ExpectGet(sessionKeyPrefix + token).SetVal("deleted-uid")

	user, err := checker.UserFromToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, user)
}

func TestLoginChecker_IsLogged(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	defer rdb.Close()

	checker := NewLoginChecker(rdb, newUsersStoreStub(testUser()))

	mock.ExpectGet(sessionKeyPrefix + "t1").SetVal(testUID)
	logged, err := checker.IsLogged(context.Background(), "t1")
	require.NoError(t, err)
	assert.True(t, logged)

	mock.ExpectGet(sessionKeyPrefix + "t2").RedisNil()
	logged, err = checker.IsLogged(context.Background(), "t2")
	require.NoError(t, err)
	assert.False(t, logged)

	mock.ExpectGet(sessionKeyPrefix + "t3").SetErr(errors.New("connection refused"))
	logged, err = checker.IsLogged(context.Background(), "t3")
	assert.Error(t, err)
	assert.False(t, logged)
}

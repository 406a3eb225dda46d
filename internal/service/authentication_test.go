package service

import (
	"testing"

	"brainfeed/internal/model"

	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("Secret123!")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123!", hash)

	require.NoError(t, ComparePassword(hash, "Secret123!"))
	require.Error(t, ComparePassword(hash, "wrong"))
}

func TestAuthenticateUser(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	user := model.User{ID: 1, Username: "writer1", PasswordHash: hash, Role: model.RoleWriter}

	got, err := AuthenticateUser(user, "pw")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = AuthenticateUser(user, "nope")
	require.Error(t, err)

	// 空哈希不可放行任何密碼
	_, err = AuthenticateUser(model.User{Username: "x"}, "")
	require.Error(t, err)
}

package userservice

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftwerk/studiohub/internal/common"
)

func setupTestEnvironment(t *testing.T) (*UserService, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM users")
		return err
	}

	return NewUserService(db), db, cleanup
}

func registerAndActivate(t *testing.T, s *UserService) {
	t.Helper()

	token, err := s.CreateUser(context.Background(), "admin42", "admin@example.com", "Str0ngPass!")
	assert.NoError(t, err)
	assert.NoError(t, s.ActivateUser(context.Background(), *token))
}

func TestCreateUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	token, err := s.CreateUser(context.Background(), "admin42", "admin@example.com", "Str0ngPass!")
	assert.NoError(t, err)
	assert.Len(t, *token, 26)

	// duplicate username
	_, err = s.CreateUser(context.Background(), "admin42", "other@example.com", "Str0ngPass!")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// duplicate email
	_, err = s.CreateUser(context.Background(), "admin43", "admin@example.com", "Str0ngPass!")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	assert.NoError(t, cleanup())
}

func TestActivateUserGrantsPermissions(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	registerAndActivate(t, s)

	authToken, err := s.LoginUser(context.Background(), "admin42", "Str0ngPass!")
	assert.NoError(t, err)

	user, err := s.GetUserByAccessToken(context.Background(), authToken.AccessTokenPlain)
	assert.NoError(t, err)
	assert.True(t, user.IsActivated())
	assert.True(t, user.HasPermission(PermissionAdminAccess))
	assert.True(t, user.HasPermission(PermissionWritePosts))

	assert.NoError(t, cleanup())
}

func TestLoginUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	registerAndActivate(t, s)

	authToken, err := s.LoginUser(context.Background(), "admin42", "Str0ngPass!")
	assert.NoError(t, err)
	assert.NotEmpty(t, authToken.AccessTokenPlain)
	assert.NotEmpty(t, authToken.RefreshTokenPlain)

	_, err = s.LoginUser(context.Background(), "admin42", "WrongPass1!")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	_, err = s.LoginUser(context.Background(), "nobody99", "Str0ngPass!")
	assert.ErrorIs(t, err, ErrAuthenticationFailure)

	assert.NoError(t, cleanup())
}

func TestLogoutUser(t *testing.T) {
	s, _, cleanup := setupTestEnvironment(t)

	registerAndActivate(t, s)

	authToken, err := s.LoginUser(context.Background(), "admin42", "Str0ngPass!")
	assert.NoError(t, err)

	user, err := s.GetUserByAccessToken(context.Background(), authToken.AccessTokenPlain)
	assert.NoError(t, err)

	assert.NoError(t, s.LogoutUser(context.Background(), user.ID))

	_, err = s.GetUserByAccessToken(context.Background(), authToken.AccessTokenPlain)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, cleanup())
}

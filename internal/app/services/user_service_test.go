package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/auth"
)

func seedUser(t *testing.T, users *memUsers, email, password string) int64 {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	id, err := users.Create(context.Background(), &models.User{
		Name:     "Jane Doe",
		Email:    email,
		Password: hash,
		RoleType: models.RoleMember,
		Skills:   []string{},
	})
	require.NoError(t, err)
	return id
}

func TestUpdateProfileNormalizesSkillsAndSavesAvatar(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	storage := &memStorage{}
	svc := NewUserService(users, storage, zerolog.Nop())
	id := seedUser(t, users, "jane@example.com", "s3cret-pass")

	avatar := "data:image/png;base64,aGVsbG8="
	resp, err := svc.UpdateProfile(ctx, id, dto.UpdateProfileRequest{
		Name:   "  Jane D.  ",
		Skills: []string{" Go ", "go", "Postgres"},
		Avatar: &avatar,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane D.", resp.Name)
	assert.Equal(t, []string{"go", "postgres"}, resp.Skills)
	require.NotNil(t, resp.AvatarURL)
	assert.Contains(t, *resp.AvatarURL, "avatars")
	assert.Len(t, storage.saved, 1)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := NewUserService(users, &memStorage{}, zerolog.Nop())
	id := seedUser(t, users, "jane@example.com", "s3cret-pass")

	err := svc.ChangePassword(ctx, id, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass-123",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestChangePasswordRejectsReuse(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := NewUserService(users, &memStorage{}, zerolog.Nop())
	id := seedUser(t, users, "jane@example.com", "s3cret-pass")

	err := svc.ChangePassword(ctx, id, dto.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "s3cret-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestChangePasswordReplacesHash(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := NewUserService(users, &memStorage{}, zerolog.Nop())
	id := seedUser(t, users, "jane@example.com", "s3cret-pass")

	err := svc.ChangePassword(ctx, id, dto.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-pass-123",
	})
	require.NoError(t, err)

	stored, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "new-pass-123"))
	assert.False(t, auth.CheckPassword(stored.Password, "s3cret-pass"))
}

func TestGetProfileMissingUser(t *testing.T) {
	svc := NewUserService(newMemUsers(), &memStorage{}, zerolog.Nop())

	_, err := svc.GetProfile(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/pkg/apperrors"
	"github.com/devforum/devforum/internal/pkg/auth"
)

func newAuthService(users *memUsers, tokens *memTokens) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "devforum-test",
	})
	return NewAuthService(users, tokens, jwtService, zerolog.Nop())
}

func TestRegisterCreatesMemberAndIssuesTokens(t *testing.T) {
	ctx := context.Background()
	users := newMemUsers()
	svc := newAuthService(users, newMemTokens())

	resp, err := svc.Register(ctx, dto.RegisterRequest{
		Name:     "Jane Doe",
		Email:    "  Jane@Example.COM ",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, string(models.RoleMember), resp.User.Role)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.NotEmpty(t, resp.Token.RefreshToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)

	stored, err := users.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "s3cret-pass"))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newMemUsers(), newMemTokens())

	req := dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestLoginWrongEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newMemUsers(), newMemTokens())

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, errWrongPassword := svc.Login(ctx, dto.LoginRequest{Email: "jane@example.com", Password: "bad"})
	_, errWrongEmail := svc.Login(ctx, dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret-pass"})

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongEmail, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errWrongEmail.Error())
}

func TestLoginSucceedsWithCorrectCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newMemUsers(), newMemTokens())

	_, err := svc.Register(ctx, dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "Jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token.AccessToken)
}

func TestRefreshTokenRotates(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newMemUsers(), newMemTokens())

	registered, err := svc.Register(ctx, dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	oldToken := registered.Token.RefreshToken

	refreshed, err := svc.RefreshToken(ctx, oldToken)
	require.NoError(t, err)
	assert.NotEqual(t, oldToken, refreshed.Token.RefreshToken)

	// The presented token was revoked and cannot be replayed
	_, err = svc.RefreshToken(ctx, oldToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc := newAuthService(newMemUsers(), newMemTokens())

	_, err := svc.RefreshToken(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestLogoutRevokesAllTokens(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newMemUsers(), newMemTokens())

	registered, err := svc.Register(ctx, dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	loggedIn, err := svc.Login(ctx, dto.LoginRequest{Email: "jane@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, registered.User.ID))

	_, err = svc.RefreshToken(ctx, registered.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
	_, err = svc.RefreshToken(ctx, loggedIn.Token.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

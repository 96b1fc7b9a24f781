package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

func TestCanMutate(t *testing.T) {
	t.Run("owner may mutate", func(t *testing.T) {
		assert.NoError(t, CanMutate(7, models.RoleMember, 7))
	})

	t.Run("admin may mutate anything", func(t *testing.T) {
		assert.NoError(t, CanMutate(1, models.RoleAdmin, 7))
	})

	t.Run("other member is denied", func(t *testing.T) {
		err := CanMutate(2, models.RoleMember, 7)
		assert.True(t, errors.Is(err, apperrors.ErrPermissionDenied))
	})
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(models.RoleAdmin))
	assert.False(t, IsAdmin(models.RoleMember))
}

package auth

import (
	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

// CanMutate enforces the ownership gate: only the creator of a record
// or an admin may modify or delete it. The same forbidden error comes
// back regardless of who the real owner is.
func CanMutate(actorID int64, actorRole models.RoleType, ownerID int64) error {
	if actorID == ownerID || actorRole == models.RoleAdmin {
		return nil
	}
	return apperrors.NewForbiddenError("you do not have permission for this action")
}

// IsAdmin reports whether the role carries admin privileges
func IsAdmin(role models.RoleType) bool {
	return role == models.RoleAdmin
}

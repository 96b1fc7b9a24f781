package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

func newSocialService(social *memSocial, existingIDs ...int64) *SocialService {
	return NewSocialService(social, checkersFor(existingIDs...), zerolog.Nop())
}

func TestToggleLikeFlipsMembership(t *testing.T) {
	ctx := context.Background()
	svc := newSocialService(newMemSocial(), 1)

	liked, count, err := svc.ToggleLike(ctx, models.KindProject, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)

	liked, count, err = svc.ToggleLike(ctx, models.KindProject, 1, 10)
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, int64(0), count)

	// A full flip cycle returns to the liked state with the same count
	liked, count, err = svc.ToggleLike(ctx, models.KindProject, 1, 10)
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeCountsDistinctUsers(t *testing.T) {
	ctx := context.Background()
	svc := newSocialService(newMemSocial(), 1)

	_, _, err := svc.ToggleLike(ctx, models.KindBlog, 1, 10)
	require.NoError(t, err)
	_, count, err := svc.ToggleLike(ctx, models.KindBlog, 1, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Removing one user leaves the other's like in place
	_, count, err = svc.ToggleLike(ctx, models.KindBlog, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleLikeKeepsKindsSeparate(t *testing.T) {
	ctx := context.Background()
	social := newMemSocial()
	svc := newSocialService(social, 1)

	_, _, err := svc.ToggleLike(ctx, models.KindProject, 1, 10)
	require.NoError(t, err)

	count, err := social.LikeCount(ctx, models.KindBlog, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleLikeUnknownResource(t *testing.T) {
	svc := newSocialService(newMemSocial(), 1)

	_, _, err := svc.ToggleLike(context.Background(), models.KindProject, 99, 10)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestAddCommentRejectsEmptyText(t *testing.T) {
	svc := newSocialService(newMemSocial(), 1)

	_, err := svc.AddComment(context.Background(), models.KindDiscussion, 1, 10, "   ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCommentsKeepAppendOrder(t *testing.T) {
	ctx := context.Background()
	svc := newSocialService(newMemSocial(), 1)

	for _, text := range []string{"first", "second", "third"} {
		_, err := svc.AddComment(ctx, models.KindBlog, 1, 10, text)
		require.NoError(t, err)
	}

	comments, err := svc.GetComments(ctx, models.KindBlog, 1)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "third", comments[2].Text)
}

func TestDeleteCommentPreservesOrderOfRest(t *testing.T) {
	ctx := context.Background()
	svc := newSocialService(newMemSocial(), 1)

	var ids []int64
	for _, text := range []string{"c1", "c2", "c3"} {
		c, err := svc.AddComment(ctx, models.KindQuestion, 1, 10, text)
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	err := svc.DeleteComment(ctx, models.KindQuestion, 1, ids[1], 10, models.RoleMember)
	require.NoError(t, err)

	comments, err := svc.GetComments(ctx, models.KindQuestion, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "c1", comments[0].Text)
	assert.Equal(t, "c3", comments[1].Text)
}

func TestDeleteCommentOwnershipGate(t *testing.T) {
	ctx := context.Background()
	svc := newSocialService(newMemSocial(), 1)

	c, err := svc.AddComment(ctx, models.KindEvent, 1, 10, "mine")
	require.NoError(t, err)

	t.Run("another member is denied and nothing changes", func(t *testing.T) {
		err := svc.DeleteComment(ctx, models.KindEvent, 1, c.ID, 11, models.RoleMember)
		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

		comments, err := svc.GetComments(ctx, models.KindEvent, 1)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})

	t.Run("an admin may delete", func(t *testing.T) {
		err := svc.DeleteComment(ctx, models.KindEvent, 1, c.ID, 99, models.RoleAdmin)
		require.NoError(t, err)

		comments, err := svc.GetComments(ctx, models.KindEvent, 1)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

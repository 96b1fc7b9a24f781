package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devforum/devforum/internal/app/models"
	"github.com/devforum/devforum/internal/app/models/dto"
	"github.com/devforum/devforum/internal/app/repositories"
	"github.com/devforum/devforum/internal/pkg/apperrors"
)

type memBlogs struct {
	blogs  map[int64]*models.Blog
	nextID int64
}

func newMemBlogs() *memBlogs {
	return &memBlogs{blogs: make(map[int64]*models.Blog)}
}

func (m *memBlogs) Create(_ context.Context, blog *models.Blog) (int64, error) {
	m.nextID++
	blog.ID = m.nextID
	blog.CreatedAt = time.Now()
	blog.UpdatedAt = blog.CreatedAt
	copied := *blog
	m.blogs[blog.ID] = &copied
	return blog.ID, nil
}

func (m *memBlogs) GetByID(_ context.Context, id int64) (*models.Blog, error) {
	b, ok := m.blogs[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("blog not found")
	}
	copied := *b
	return &copied, nil
}

func (m *memBlogs) GetAll(_ context.Context, _ repositories.ListFilter) ([]models.Blog, int64, error) {
	var out []models.Blog
	for _, b := range m.blogs {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (m *memBlogs) Update(_ context.Context, blog *models.Blog) error {
	if _, ok := m.blogs[blog.ID]; !ok {
		return apperrors.NewResourceNotFoundError("blog not found")
	}
	copied := *blog
	m.blogs[blog.ID] = &copied
	return nil
}

func (m *memBlogs) Delete(_ context.Context, id int64) error {
	if _, ok := m.blogs[id]; !ok {
		return apperrors.NewResourceNotFoundError("blog not found")
	}
	delete(m.blogs, id)
	return nil
}

func newBlogService(blogs *memBlogs) *BlogService {
	return NewBlogService(blogs, newMemSocial(), &memStorage{}, zerolog.Nop())
}

func TestCreateBlogDerivesExcerptAndReadTime(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(newMemBlogs())

	content := strings.TrimSpace(strings.Repeat("word ", 450))
	resp, err := svc.Create(ctx, 1, dto.CreateBlogRequest{
		Title:   "Pagination in Go",
		Content: content,
	})
	require.NoError(t, err)

	assert.Equal(t, string([]rune(content)[:150])+"...", resp.Excerpt)
	assert.Equal(t, 3, resp.ReadTime)
}

func TestCreateBlogKeepsExplicitExcerpt(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(newMemBlogs())

	excerpt := "A hand written summary."
	resp, err := svc.Create(ctx, 1, dto.CreateBlogRequest{
		Title:   "Pagination in Go",
		Content: "Some content.",
		Excerpt: &excerpt,
	})
	require.NoError(t, err)
	assert.Equal(t, excerpt, resp.Excerpt)
	assert.Equal(t, 1, resp.ReadTime)
}

func TestUpdateBlogContentRecomputesReadTime(t *testing.T) {
	ctx := context.Background()
	blogs := newMemBlogs()
	svc := newBlogService(blogs)

	created, err := svc.Create(ctx, 1, dto.CreateBlogRequest{Title: "Post", Content: "short"})
	require.NoError(t, err)

	longContent := strings.TrimSpace(strings.Repeat("word ", 800))
	updated, err := svc.Update(ctx, created.ID, 1, models.RoleMember, dto.UpdateBlogRequest{Content: &longContent})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.ReadTime)
	assert.Equal(t, string([]rune(longContent)[:150])+"...", updated.Excerpt)
}

func TestUpdateBlogOwnershipGate(t *testing.T) {
	ctx := context.Background()
	blogs := newMemBlogs()
	svc := newBlogService(blogs)

	created, err := svc.Create(ctx, 1, dto.CreateBlogRequest{Title: "Post", Content: "content"})
	require.NoError(t, err)

	other := "Hijacked"
	_, err = svc.Update(ctx, created.ID, 2, models.RoleMember, dto.UpdateBlogRequest{Title: &other})
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	unchanged, err := blogs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Post", unchanged.Title)
}

func TestDeleteBlogAdminOverride(t *testing.T) {
	ctx := context.Background()
	blogs := newMemBlogs()
	svc := newBlogService(blogs)

	created, err := svc.Create(ctx, 1, dto.CreateBlogRequest{Title: "Post", Content: "content"})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, 2, models.RoleMember)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, created.ID, 2, models.RoleAdmin))

	_, err = blogs.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestBlogTagsNormalized(t *testing.T) {
	ctx := context.Background()
	svc := newBlogService(newMemBlogs())

	resp, err := svc.Create(ctx, 1, dto.CreateBlogRequest{
		Title:   "Post",
		Content: "content",
		Tags:    []string{" Go ", "GO", "Web"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "web"}, resp.Tags)
}

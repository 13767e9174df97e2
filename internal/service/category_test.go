package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
)

func newCategoryService(t *testing.T) *CategoryService {
	t.Helper()
	env := newTestEnv(t)
	return NewCategoryService(env.store, env.validator, env.logger)
}

func TestCategoryService_Create_TrimsName(t *testing.T) {
	svc := newCategoryService(t)

	category, err := svc.Create(context.Background(), CategoryRequest{Name: "  Film News  "})
	require.NoError(t, err)

	assert.Equal(t, "Film News", category.Name)
	assert.Equal(t, "film-news", category.Slug)
}

func TestCategoryService_Create_TrimmedDuplicate(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.Create(context.Background(), CategoryRequest{Name: "Film News"})
	require.NoError(t, err)

	// Whitespace padding normalizes to the same slug.
	_, err = svc.Create(context.Background(), CategoryRequest{Name: " Film News "})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Category with this slug already exists", derr.Message)
}

func TestCategoryService_Create_DuplicateNameDistinctSlug(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CategoryRequest{Name: "Film News"})
	require.NoError(t, err)

	// A distinct slug dodges the slug index but the trimmed name is
	// still taken.
	_, err = svc.Create(ctx, CategoryRequest{Name: " Film News ", Slug: "film-news-2"})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Category with this name already exists", derr.Message)
}

func TestCategoryService_Create_WhitespaceOnlyName(t *testing.T) {
	svc := newCategoryService(t)

	_, err := svc.Create(context.Background(), CategoryRequest{Name: "   "})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestCategoryService_List_SortedByName(t *testing.T) {
	svc := newCategoryService(t)
	ctx := context.Background()

	for _, name := range []string{"Releases", "Awards", "Festivals"} {
		_, err := svc.Create(ctx, CategoryRequest{Name: name})
		require.NoError(t, err)
	}

	categories, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Awards", categories[0].Name)
	assert.Equal(t, "Festivals", categories[1].Name)
	assert.Equal(t, "Releases", categories[2].Name)
}

func TestCategoryService_Delete_LeavesBlogReferences(t *testing.T) {
	env := newTestEnv(t)
	categories := NewCategoryService(env.store, env.validator, env.logger)
	blogs := NewBlogService(env.store, env.search, env.validator, env.logger)
	ctx := context.Background()

	category, err := categories.Create(ctx, CategoryRequest{Name: "Festivals"})
	require.NoError(t, err)

	req := validBlogRequest()
	req.CategoryIDs = []string{category.ID}
	post, err := blogs.Create(ctx, req)
	require.NoError(t, err)

	require.NoError(t, categories.Delete(ctx, category.ID))

	// The post keeps the dangling ID; readers skip what no longer
	// resolves.
	got, err := blogs.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{category.ID}, got.CategoryIDs)
}

func TestTagService_CreateAndDuplicate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTagService(env.store, env.validator, env.logger)
	ctx := context.Background()

	tag, err := svc.Create(ctx, TagRequest{Name: "Post Production"})
	require.NoError(t, err)
	assert.Equal(t, "post-production", tag.Slug)

	_, err = svc.Create(ctx, TagRequest{Name: "Post Production"})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)

	_, err = svc.Create(ctx, TagRequest{Name: "Post Production ", Slug: "post-prod"})
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Tag with this name already exists", derr.Message)
}

func TestAuthorService_UniqueEmail(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthorService(env.store, env.validator, env.logger)
	ctx := context.Background()

	_, err := svc.Create(ctx, AuthorRequest{Name: "Priya Nair", Email: "priya@framelight.example"})
	require.NoError(t, err)

	// Email uniqueness is case-insensitive.
	_, err = svc.Create(ctx, AuthorRequest{Name: "P. Nair", Email: "PRIYA@framelight.example"})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Author with this email already exists", derr.Message)
}

func TestAuthorService_SlugDerivedAndUnique(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthorService(env.store, env.validator, env.logger)
	ctx := context.Background()

	author, err := svc.Create(ctx, AuthorRequest{Name: "Priya Nair", Email: "priya@framelight.example"})
	require.NoError(t, err)
	assert.Equal(t, "priya-nair", author.Slug)

	got, err := svc.GetBySlug(ctx, "priya-nair")
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)

	// Same derived slug under a fresh email still conflicts.
	_, err = svc.Create(ctx, AuthorRequest{Name: "Priya Nair", Email: "priya2@framelight.example"})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Author with this slug already exists", derr.Message)

	_, err = svc.GetBySlug(ctx, "no-such-author")
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeNotFound, derr.Code)
}

func TestBannerService_ActiveOnlyOrdered(t *testing.T) {
	env := newTestEnv(t)
	svc := NewBannerService(env.store, env.validator, env.logger)
	ctx := context.Background()

	banners := []BannerRequest{
		{Title: "Second", ImageURL: "https://cdn.example/b2.jpg", IsActive: true, Order: 2},
		{Title: "First", ImageURL: "https://cdn.example/b1.jpg", IsActive: true, Order: 1},
		{Title: "Hidden", ImageURL: "https://cdn.example/b3.jpg", IsActive: false, Order: 0},
	}
	for _, req := range banners {
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Title)
	assert.Equal(t, "Second", active[1].Title)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestBannerService_UntitledSlide(t *testing.T) {
	env := newTestEnv(t)
	svc := NewBannerService(env.store, env.validator, env.logger)
	ctx := context.Background()

	// A slide can be image-only with call to action links.
	banner, err := svc.Create(ctx, BannerRequest{
		Platform:      "In Theaters",
		ImageURL:      "https://cdn.example/key-art.jpg",
		WatchNowLink:  "https://watch.example/film",
		LearnMoreLink: "https://framelight.example/films/the-crossing",
		IsActive:      true,
	})
	require.NoError(t, err)
	assert.Empty(t, banner.Title)
	assert.Equal(t, "In Theaters", banner.Platform)
	assert.Equal(t, "https://watch.example/film", banner.WatchNowLink)
	assert.Equal(t, "https://framelight.example/films/the-crossing", banner.LearnMoreLink)

	_, err = svc.Create(ctx, BannerRequest{
		ImageURL:     "https://cdn.example/b.jpg",
		WatchNowLink: "not a url",
	})
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/store"
)

func newBlogService(t *testing.T) *BlogService {
	t.Helper()
	env := newTestEnv(t)
	return NewBlogService(env.store, env.search, env.validator, env.logger)
}

func validBlogRequest() BlogRequest {
	return BlogRequest{
		Title:            "Behind the Scenes",
		ShortDescription: "Location lessons.",
		Content:          "<p>Shooting on location taught us a few things about weather.</p>",
		ThumbnailImage:   ImageRefRequest{URL: "https://cdn.example.com/blog/bts-thumb.jpg", Alt: "Crew on set"},
		BannerImage:      ImageRefRequest{URL: "https://cdn.example.com/blog/bts-banner.jpg"},
		AuthorID:         "author_abc",
		CategoryIDs:      []string{"category_news"},
		TagIDs:           []string{"tag_production"},
	}
}

func TestBlogService_Create_Draft(t *testing.T) {
	svc := newBlogService(t)

	post, err := svc.Create(context.Background(), validBlogRequest())
	require.NoError(t, err)

	assert.Equal(t, "behind-the-scenes", post.Slug)
	assert.False(t, post.Published)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, 1, post.ReadTime)
}

func TestBlogService_Create_PublishedStampsTime(t *testing.T) {
	svc := newBlogService(t)

	req := validBlogRequest()
	req.Published = true

	post, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.False(t, post.PublishedAt.IsZero())
}

func TestBlogService_Create_MissingAuthor(t *testing.T) {
	svc := newBlogService(t)

	req := validBlogRequest()
	req.AuthorID = ""

	_, err := svc.Create(context.Background(), req)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestBlogService_Create_NoCategories(t *testing.T) {
	svc := newBlogService(t)

	req := validBlogRequest()
	req.CategoryIDs = nil

	_, err := svc.Create(context.Background(), req)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestBlogService_Create_MissingImageURL(t *testing.T) {
	svc := newBlogService(t)

	req := validBlogRequest()
	req.BannerImage.URL = ""

	_, err := svc.Create(context.Background(), req)
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeValidation, derr.Code)
}

func TestBlogService_Update_PublishKeepsFirstPublishTime(t *testing.T) {
	svc := newBlogService(t)

	req := validBlogRequest()
	req.Published = true
	post, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	firstPublish := *post.PublishedAt

	// Back to draft and publish again.
	req.Published = false
	post, err = svc.Update(context.Background(), post.ID, req)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)

	req.Published = true
	post, err = svc.Update(context.Background(), post.ID, req)
	require.NoError(t, err)
	assert.Equal(t, firstPublish, *post.PublishedAt)
}

func TestBlogService_List_Filters(t *testing.T) {
	svc := newBlogService(t)
	ctx := context.Background()

	published := validBlogRequest()
	published.Title = "Published Post"
	published.Published = true
	_, err := svc.Create(ctx, published)
	require.NoError(t, err)

	draft := validBlogRequest()
	draft.Title = "Draft Post"
	draft.CategoryIDs = []string{"category_other"}
	_, err = svc.Create(ctx, draft)
	require.NoError(t, err)

	// Published only.
	isPublished := true
	posts, meta, err := svc.List(ctx, BlogListParams{Published: &isPublished})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Published Post", posts[0].Title)
	assert.Equal(t, 1, meta.Total)

	// Category filter.
	posts, _, err = svc.List(ctx, BlogListParams{CategoryIDs: []string{"category_other"}})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Draft Post", posts[0].Title)

	// Exclude slug, used for the related posts strip.
	posts, _, err = svc.List(ctx, BlogListParams{ExcludeSlug: "published-post"})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Draft Post", posts[0].Title)
}

func TestBlogService_List_NewestFirst(t *testing.T) {
	svc := newBlogService(t)
	ctx := context.Background()

	for _, title := range []string{"First", "Second", "Third"} {
		req := validBlogRequest()
		req.Title = title
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	posts, _, err := svc.List(ctx, BlogListParams{PageParams: store.PageParams{Limit: 10}})
	require.NoError(t, err)
	require.Len(t, posts, 3)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
	}
}

func TestBlogService_ReadTimeEstimate(t *testing.T) {
	// 450 words of rendered text should round up to three minutes.
	content := "<p>"
	for range 450 {
		content += "word "
	}
	content += "</p>"

	assert.Equal(t, 3, estimateReadTime(content))
	assert.Equal(t, 0, estimateReadTime(""))
}

func TestBlogService_DuplicateSlug(t *testing.T) {
	svc := newBlogService(t)

	_, err := svc.Create(context.Background(), validBlogRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validBlogRequest())
	var derr *domainerrors.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, domainerrors.CodeAlreadyExists, derr.Code)
	assert.Equal(t, "Blog post with this slug already exists", derr.Message)
}

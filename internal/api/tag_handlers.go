package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerTagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags",
		Summary:     "List tags",
		Description: "Returns all tags sorted by name",
		Tags:        []string{"Tags"},
	}, s.handleListTags)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createTag",
		Method:        http.MethodPost,
		Path:          "/api/v1/tags",
		Summary:       "Create tag",
		Description:   "Creates a new tag",
		Tags:          []string{"Tags"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTag",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Get tag",
		Description: "Returns a tag by ID",
		Tags:        []string{"Tags"},
	}, s.handleGetTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTagBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/tags/slug/{slug}",
		Summary:     "Get tag by slug",
		Description: "Returns a tag by its URL slug",
		Tags:        []string{"Tags"},
	}, s.handleGetTagBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateTag",
		Method:      http.MethodPut,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Update tag",
		Description: "Replaces a tag",
		Tags:        []string{"Tags"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateTag)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTag",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tags/{id}",
		Summary:     "Delete tag",
		Description: "Deletes a tag; posts keep the dangling reference",
		Tags:        []string{"Tags"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteTag)
}

// === DTOs ===

// TagRequestBody is the request body for creating or replacing a tag.
type TagRequestBody struct {
	Name string `json:"name" doc:"Tag name"`
	Slug string `json:"slug,omitempty" doc:"Explicit slug; derived from the name when empty"`
}

// TagResponse contains tag data in API responses.
type TagResponse struct {
	ID        string    `json:"id" doc:"Tag ID"`
	Name      string    `json:"name" doc:"Tag name"`
	Slug      string    `json:"slug" doc:"URL-safe slug"`
	CreatedAt time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt time.Time `json:"updated_at" doc:"Last update time"`
}

// ListTagsResponse contains all tags.
type ListTagsResponse struct {
	Tags []TagResponse `json:"tags" doc:"All tags"`
}

// ListTagsOutput wraps the tag listing for Huma.
type ListTagsOutput struct {
	Body ListTagsResponse
}

// CreateTagInput wraps the create tag request for Huma.
type CreateTagInput struct {
	Authorization string `header:"Authorization"`
	Body          TagRequestBody
}

// TagOutput wraps the tag response for Huma.
type TagOutput struct {
	Body TagResponse
}

// GetTagInput contains parameters for getting a tag.
type GetTagInput struct {
	ID string `path:"id" doc:"Tag ID"`
}

// GetTagBySlugInput contains parameters for slug lookup.
type GetTagBySlugInput struct {
	Slug string `path:"slug" doc:"Tag slug"`
}

// UpdateTagInput wraps the update tag request for Huma.
type UpdateTagInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Tag ID"`
	Body          TagRequestBody
}

// DeleteTagInput contains parameters for deleting a tag.
type DeleteTagInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Tag ID"`
}

// === Handlers ===

func (s *Server) handleListTags(ctx context.Context, _ *struct{}) (*ListTagsOutput, error) {
	tags, err := s.services.Tag.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TagResponse, len(tags))
	for i, t := range tags {
		resp[i] = mapTagResponse(t)
	}

	return &ListTagsOutput{Body: ListTagsResponse{Tags: resp}}, nil
}

func (s *Server) handleCreateTag(ctx context.Context, input *CreateTagInput) (*TagOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	tag, err := s.services.Tag.Create(ctx, service.TagRequest{
		Name: input.Body.Name,
		Slug: input.Body.Slug,
	})
	if err != nil {
		return nil, err
	}

	return &TagOutput{Body: mapTagResponse(tag)}, nil
}

func (s *Server) handleGetTag(ctx context.Context, input *GetTagInput) (*TagOutput, error) {
	tag, err := s.services.Tag.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &TagOutput{Body: mapTagResponse(tag)}, nil
}

func (s *Server) handleGetTagBySlug(ctx context.Context, input *GetTagBySlugInput) (*TagOutput, error) {
	tag, err := s.services.Tag.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &TagOutput{Body: mapTagResponse(tag)}, nil
}

func (s *Server) handleUpdateTag(ctx context.Context, input *UpdateTagInput) (*TagOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	tag, err := s.services.Tag.Update(ctx, input.ID, service.TagRequest{
		Name: input.Body.Name,
		Slug: input.Body.Slug,
	})
	if err != nil {
		return nil, err
	}

	return &TagOutput{Body: mapTagResponse(tag)}, nil
}

func (s *Server) handleDeleteTag(ctx context.Context, input *DeleteTagInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Tag.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Tag deleted"}}, nil
}

func mapTagResponse(t *domain.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerCategoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns all categories sorted by name",
		Tags:        []string{"Categories"},
	}, s.handleListCategories)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createCategory",
		Method:        http.MethodPost,
		Path:          "/api/v1/categories",
		Summary:       "Create category",
		Description:   "Creates a new category",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategory",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Get category",
		Description: "Returns a category by ID",
		Tags:        []string{"Categories"},
	}, s.handleGetCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "getCategoryBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories/slug/{slug}",
		Summary:     "Get category by slug",
		Description: "Returns a category by its URL slug",
		Tags:        []string{"Categories"},
	}, s.handleGetCategoryBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateCategory",
		Method:      http.MethodPut,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Update category",
		Description: "Replaces a category",
		Tags:        []string{"Categories"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateCategory)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteCategory",
		Method:      http.MethodDelete,
		Path:        "/api/v1/categories/{id}",
		Summary:     "Delete category",
		Description: "Deletes a category; posts keep the dangling reference",
		Tags:        []string{"Categories"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteCategory)
}

// === DTOs ===

// CategoryRequestBody is the request body for creating or replacing a
// category.
type CategoryRequestBody struct {
	Name        string `json:"name" doc:"Category name"`
	Slug        string `json:"slug,omitempty" doc:"Explicit slug; derived from the name when empty"`
	Description string `json:"description,omitempty" doc:"Category description"`
}

// CategoryResponse contains category data in API responses.
type CategoryResponse struct {
	ID          string    `json:"id" doc:"Category ID"`
	Name        string    `json:"name" doc:"Category name"`
	Slug        string    `json:"slug" doc:"URL-safe slug"`
	Description string    `json:"description,omitempty" doc:"Category description"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
	UpdatedAt   time.Time `json:"updated_at" doc:"Last update time"`
}

// ListCategoriesResponse contains all categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories" doc:"All categories"`
}

// ListCategoriesOutput wraps the category listing for Huma.
type ListCategoriesOutput struct {
	Body ListCategoriesResponse
}

// CreateCategoryInput wraps the create category request for Huma.
type CreateCategoryInput struct {
	Authorization string `header:"Authorization"`
	Body          CategoryRequestBody
}

// CategoryOutput wraps the category response for Huma.
type CategoryOutput struct {
	Body CategoryResponse
}

// GetCategoryInput contains parameters for getting a category.
type GetCategoryInput struct {
	ID string `path:"id" doc:"Category ID"`
}

// GetCategoryBySlugInput contains parameters for slug lookup.
type GetCategoryBySlugInput struct {
	Slug string `path:"slug" doc:"Category slug"`
}

// UpdateCategoryInput wraps the update category request for Huma.
type UpdateCategoryInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Category ID"`
	Body          CategoryRequestBody
}

// DeleteCategoryInput contains parameters for deleting a category.
type DeleteCategoryInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Category ID"`
}

// === Handlers ===

func (s *Server) handleListCategories(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	categories, err := s.services.Category.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = mapCategoryResponse(c)
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponse{Categories: resp}}, nil
}

func (s *Server) handleCreateCategory(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	category, err := s.services.Category.Create(ctx, service.CategoryRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: mapCategoryResponse(category)}, nil
}

func (s *Server) handleGetCategory(ctx context.Context, input *GetCategoryInput) (*CategoryOutput, error) {
	category, err := s.services.Category.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: mapCategoryResponse(category)}, nil
}

func (s *Server) handleGetCategoryBySlug(ctx context.Context, input *GetCategoryBySlugInput) (*CategoryOutput, error) {
	category, err := s.services.Category.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: mapCategoryResponse(category)}, nil
}

func (s *Server) handleUpdateCategory(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	category, err := s.services.Category.Update(ctx, input.ID, service.CategoryRequest{
		Name:        input.Body.Name,
		Slug:        input.Body.Slug,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, err
	}

	return &CategoryOutput{Body: mapCategoryResponse(category)}, nil
}

func (s *Server) handleDeleteCategory(ctx context.Context, input *DeleteCategoryInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Category.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Category deleted"}}, nil
}

func mapCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

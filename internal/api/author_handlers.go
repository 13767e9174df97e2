package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/domain"
	"github.com/framelightapp/framelight-server/internal/service"
)

func (s *Server) registerAuthorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAuthors",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors",
		Summary:     "List authors",
		Description: "Returns all authors sorted by name",
		Tags:        []string{"Authors"},
	}, s.handleListAuthors)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createAuthor",
		Method:        http.MethodPost,
		Path:          "/api/v1/authors",
		Summary:       "Create author",
		Description:   "Creates a new author",
		Tags:          []string{"Authors"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
	}, s.handleCreateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthor",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Get author",
		Description: "Returns an author by ID",
		Tags:        []string{"Authors"},
	}, s.handleGetAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthorBySlug",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/slug/{slug}",
		Summary:     "Get author by slug",
		Description: "Returns an author by its URL slug",
		Tags:        []string{"Authors"},
	}, s.handleGetAuthorBySlug)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateAuthor",
		Method:      http.MethodPut,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Update author",
		Description: "Replaces an author",
		Tags:        []string{"Authors"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUpdateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteAuthor",
		Method:      http.MethodDelete,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Delete author",
		Description: "Deletes an author; posts keep the dangling reference",
		Tags:        []string{"Authors"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteAuthor)
}

// === DTOs ===

// SocialLinksBody mirrors an author's social links.
type SocialLinksBody struct {
	Twitter   string `json:"twitter,omitempty" doc:"Twitter profile URL"`
	Instagram string `json:"instagram,omitempty" doc:"Instagram profile URL"`
	LinkedIn  string `json:"linkedin,omitempty" doc:"LinkedIn profile URL"`
	Website   string `json:"website,omitempty" doc:"Personal website URL"`
}

// AuthorRequestBody is the request body for creating or replacing an
// author.
type AuthorRequestBody struct {
	Name        string          `json:"name" doc:"Author name"`
	Slug        string          `json:"slug,omitempty" doc:"URL slug; derived from the name when empty"`
	Email       string          `json:"email" doc:"Author email (unique)"`
	Bio         string          `json:"bio,omitempty" doc:"Short biography"`
	Avatar      ImageRefBody    `json:"avatar" doc:"Avatar image"`
	SocialLinks SocialLinksBody `json:"social_links" doc:"Social links"`
}

// AuthorResponse contains author data in API responses.
type AuthorResponse struct {
	ID          string          `json:"id" doc:"Author ID"`
	Name        string          `json:"name" doc:"Author name"`
	Slug        string          `json:"slug" doc:"URL slug"`
	Email       string          `json:"email" doc:"Author email"`
	Bio         string          `json:"bio,omitempty" doc:"Short biography"`
	Avatar      ImageRefBody    `json:"avatar" doc:"Avatar image"`
	SocialLinks SocialLinksBody `json:"social_links" doc:"Social links"`
	CreatedAt   time.Time       `json:"created_at" doc:"Creation time"`
	UpdatedAt   time.Time       `json:"updated_at" doc:"Last update time"`
}

// ListAuthorsResponse contains all authors.
type ListAuthorsResponse struct {
	Authors []AuthorResponse `json:"authors" doc:"All authors"`
}

// ListAuthorsOutput wraps the author listing for Huma.
type ListAuthorsOutput struct {
	Body ListAuthorsResponse
}

// CreateAuthorInput wraps the create author request for Huma.
type CreateAuthorInput struct {
	Authorization string `header:"Authorization"`
	Body          AuthorRequestBody
}

// AuthorOutput wraps the author response for Huma.
type AuthorOutput struct {
	Body AuthorResponse
}

// GetAuthorInput contains parameters for getting an author.
type GetAuthorInput struct {
	ID string `path:"id" doc:"Author ID"`
}

// GetAuthorBySlugInput contains parameters for slug lookup.
type GetAuthorBySlugInput struct {
	Slug string `path:"slug" doc:"Author slug"`
}

// UpdateAuthorInput wraps the update author request for Huma.
type UpdateAuthorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Author ID"`
	Body          AuthorRequestBody
}

// DeleteAuthorInput contains parameters for deleting an author.
type DeleteAuthorInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Author ID"`
}

// === Handlers ===

func (s *Server) handleListAuthors(ctx context.Context, _ *struct{}) (*ListAuthorsOutput, error) {
	authors, err := s.services.Author.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = mapAuthorResponse(a)
	}

	return &ListAuthorsOutput{Body: ListAuthorsResponse{Authors: resp}}, nil
}

func (s *Server) handleCreateAuthor(ctx context.Context, input *CreateAuthorInput) (*AuthorOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	author, err := s.services.Author.Create(ctx, authorRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(author)}, nil
}

func (s *Server) handleGetAuthor(ctx context.Context, input *GetAuthorInput) (*AuthorOutput, error) {
	author, err := s.services.Author.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(author)}, nil
}

func (s *Server) handleGetAuthorBySlug(ctx context.Context, input *GetAuthorBySlugInput) (*AuthorOutput, error) {
	author, err := s.services.Author.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(author)}, nil
}

func (s *Server) handleUpdateAuthor(ctx context.Context, input *UpdateAuthorInput) (*AuthorOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	author, err := s.services.Author.Update(ctx, input.ID, authorRequest(input.Body))
	if err != nil {
		return nil, err
	}

	return &AuthorOutput{Body: mapAuthorResponse(author)}, nil
}

func (s *Server) handleDeleteAuthor(ctx context.Context, input *DeleteAuthorInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Author.Delete(ctx, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Author deleted"}}, nil
}

func authorRequest(body AuthorRequestBody) service.AuthorRequest {
	return service.AuthorRequest{
		Name:  body.Name,
		Slug:  body.Slug,
		Email: body.Email,
		Bio:   body.Bio,
		Avatar: domain.ImageRef{
			URL:      body.Avatar.URL,
			Alt:      body.Avatar.Alt,
			PublicID: body.Avatar.PublicID,
		},
		SocialLinks: domain.SocialLinks{
			Twitter:   body.SocialLinks.Twitter,
			Instagram: body.SocialLinks.Instagram,
			LinkedIn:  body.SocialLinks.LinkedIn,
			Website:   body.SocialLinks.Website,
		},
	}
}

func mapAuthorResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:    a.ID,
		Name:  a.Name,
		Slug:  a.Slug,
		Email: a.Email,
		Bio:   a.Bio,
		Avatar: ImageRefBody{
			URL:      a.Avatar.URL,
			Alt:      a.Avatar.Alt,
			PublicID: a.Avatar.PublicID,
		},
		SocialLinks: SocialLinksBody{
			Twitter:   a.SocialLinks.Twitter,
			Instagram: a.SocialLinks.Instagram,
			LinkedIn:  a.SocialLinks.LinkedIn,
			Website:   a.SocialLinks.Website,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

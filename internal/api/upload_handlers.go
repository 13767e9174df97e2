package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/framelightapp/framelight-server/internal/media/images"
)

func (s *Server) registerUploadRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "uploadImage",
		Method:      http.MethodPost,
		Path:        "/api/v1/uploads/{kind}",
		Summary:     "Upload image",
		Description: "Transforms the image for its kind and stores it on the CDN",
		Tags:        []string{"Uploads"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleUploadImage)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteImage",
		Method:      http.MethodDelete,
		Path:        "/api/v1/uploads",
		Summary:     "Delete image",
		Description: "Removes an asset from the CDN by public ID",
		Tags:        []string{"Uploads"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteImage)
}

// === DTOs ===

// UploadImageInput contains the raw image upload.
type UploadImageInput struct {
	Authorization string `header:"Authorization"`
	ContentType   string `header:"Content-Type" doc:"Image content type"`
	Kind          string `path:"kind" enum:"film,series,thumbnail,banner,blog,editor,general" doc:"Upload kind"`
	RawBody       []byte
}

// UploadImageResponse contains the stored asset.
type UploadImageResponse struct {
	URL      string `json:"url" doc:"CDN URL of the stored image"`
	PublicID string `json:"public_id" doc:"CDN public ID for later deletion"`
	Width    int    `json:"width" doc:"Stored width in pixels"`
	Height   int    `json:"height" doc:"Stored height in pixels"`
	BlurHash string `json:"blur_hash,omitempty" doc:"Placeholder blur hash"`
}

// UploadImageOutput wraps the upload response for Huma.
type UploadImageOutput struct {
	Body UploadImageResponse
}

// DeleteImageInput wraps the delete request for Huma.
type DeleteImageInput struct {
	Authorization string `header:"Authorization"`
	Body          struct {
		PublicID string `json:"public_id" doc:"CDN public ID to delete"`
	}
}

// === Handlers ===

func (s *Server) handleUploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	uploaded, err := s.services.Upload.Upload(ctx, input.RawBody, images.Kind(input.Kind))
	if err != nil {
		return nil, err
	}

	return &UploadImageOutput{
		Body: UploadImageResponse{
			URL:      uploaded.URL,
			PublicID: uploaded.PublicID,
			Width:    uploaded.Width,
			Height:   uploaded.Height,
			BlurHash: uploaded.BlurHash,
		},
	}, nil
}

func (s *Server) handleDeleteImage(ctx context.Context, input *DeleteImageInput) (*MessageOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	if err := s.services.Upload.Delete(ctx, input.Body.PublicID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Image deleted"}}, nil
}

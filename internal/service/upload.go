package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/framelightapp/framelight-server/internal/cdn"
	domainerrors "github.com/framelightapp/framelight-server/internal/errors"
	"github.com/framelightapp/framelight-server/internal/media/images"
)

// maxUploadBytes caps a single image upload at 10 MiB.
const maxUploadBytes = 10 << 20

// folderForKind maps an upload kind to its CDN folder.
var folderForKind = map[images.Kind]string{
	images.KindFilm:      "films",
	images.KindSeries:    "series",
	images.KindThumbnail: "thumbnails",
	images.KindBanner:    "banners",
	images.KindBlog:      "blog",
	images.KindEditor:    "editor",
	images.KindGeneral:   "general",
}

// UploadService transforms admin image uploads and pushes them to the
// CDN.
type UploadService struct {
	cdn    *cdn.Client
	logger *slog.Logger
}

// NewUploadService creates a new upload service.
func NewUploadService(cdnClient *cdn.Client, logger *slog.Logger) *UploadService {
	return &UploadService{
		cdn:    cdnClient,
		logger: logger,
	}
}

// Uploaded is what the admin editor gets back after an upload.
type Uploaded struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	BlurHash string `json:"blur_hash,omitempty"`
}

// Upload transforms the image for its kind, computes a blur hash
// placeholder and stores the result on the CDN.
func (s *UploadService) Upload(ctx context.Context, data []byte, kind images.Kind) (*Uploaded, error) {
	if !kind.IsValid() {
		return nil, domainerrors.Validationf("unknown upload kind %q", kind)
	}
	if len(data) == 0 {
		return nil, domainerrors.Validation("empty upload")
	}
	if len(data) > maxUploadBytes {
		return nil, domainerrors.Validation("image exceeds the 10 MB upload limit")
	}

	processed, err := images.Process(data, kind)
	if err != nil {
		return nil, domainerrors.Validation("file is not a decodable image").WithCause(err)
	}

	// Placeholder generation is cosmetic. A failed hash never blocks
	// the upload.
	hash, err := images.ComputeBlurHash(processed.Data)
	if err != nil {
		s.logger.Warn("blur hash failed", "kind", kind, "error", err)
		hash = ""
	}

	result, err := s.cdn.Upload(ctx, processed.Data, folderForKind[kind])
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	s.logger.Info("image uploaded",
		"kind", kind,
		"public_id", result.PublicID,
		"width", processed.Width,
		"height", processed.Height,
		"source_format", processed.Format,
	)

	return &Uploaded{
		URL:      result.URL,
		PublicID: result.PublicID,
		Width:    processed.Width,
		Height:   processed.Height,
		BlurHash: hash,
	}, nil
}

// Delete removes an asset from the CDN. Deleting an asset the CDN no
// longer has is fine.
func (s *UploadService) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return domainerrors.Validation("public_id is required")
	}

	if err := s.cdn.Delete(ctx, publicID); err != nil {
		return fmt.Errorf("delete image: %w", err)
	}

	s.logger.Info("image deleted", "public_id", publicID)
	return nil
}

package api

import (
	"github.com/framelightapp/framelight-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Auth     *service.AuthService
	Film     *service.FilmService
	Series   *service.SeriesService
	Blog     *service.BlogService
	Category *service.CategoryService
	Tag      *service.TagService
	Author   *service.AuthorService
	Banner   *service.BannerService
	Upload   *service.UploadService
	Contact  *service.ContactService
	Search   *service.SearchService
}

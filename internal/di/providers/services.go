package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/framelightapp/framelight-server/internal/auth"
	"github.com/framelightapp/framelight-server/internal/cdn"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/logger"
	"github.com/framelightapp/framelight-server/internal/mail"
	"github.com/framelightapp/framelight-server/internal/ratelimit"
	"github.com/framelightapp/framelight-server/internal/service"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// ProvideAuthService provides the authentication service.
func ProvideAuthService(i do.Injector) (*service.AuthService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	tokenService := do.MustInvoke[*auth.TokenService](i)
	limiter := do.MustInvoke[*ratelimit.KeyedRateLimiter](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthService(storeHandle.Store, tokenService, limiter, validator, log.Logger), nil
}

// ProvideFilmService provides the film catalog service.
func ProvideFilmService(i do.Injector) (*service.FilmService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchService := do.MustInvoke[*service.SearchService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewFilmService(storeHandle.Store, searchService, validator, log.Logger), nil
}

// ProvideSeriesService provides the series catalog service.
func ProvideSeriesService(i do.Injector) (*service.SeriesService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchService := do.MustInvoke[*service.SearchService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewSeriesService(storeHandle.Store, searchService, validator, log.Logger), nil
}

// ProvideBlogService provides the blog post service.
func ProvideBlogService(i do.Injector) (*service.BlogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchService := do.MustInvoke[*service.SearchService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBlogService(storeHandle.Store, searchService, validator, log.Logger), nil
}

// ProvideCategoryService provides the blog category service.
func ProvideCategoryService(i do.Injector) (*service.CategoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCategoryService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideTagService provides the blog tag service.
func ProvideTagService(i do.Injector) (*service.TagService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewTagService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideAuthorService provides the author service.
func ProvideAuthorService(i do.Injector) (*service.AuthorService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAuthorService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideBannerService provides the homepage banner service.
func ProvideBannerService(i do.Injector) (*service.BannerService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBannerService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideUploadService provides the image upload service.
func ProvideUploadService(i do.Injector) (*service.UploadService, error) {
	cdnClient := do.MustInvoke[*cdn.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUploadService(cdnClient, log.Logger), nil
}

// ProvideContactService provides the contact form service.
func ProvideContactService(i do.Injector) (*service.ContactService, error) {
	mailer := do.MustInvoke[*mail.Mailer](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewContactService(mailer, validator, log.Logger), nil
}

// SeedAdmins upserts the configured admin accounts into the store.
// Called on startup after the auth service is wired.
func SeedAdmins(i do.Injector) error {
	cfg := do.MustInvoke[*config.Config](i)
	authService := do.MustInvoke[*service.AuthService](i)

	return authService.SeedAdmins(context.Background(), cfg.Auth.Admins)
}

// Package di provides dependency injection configuration for the Framelight server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/framelightapp/framelight-server/internal/auth"
	"github.com/framelightapp/framelight-server/internal/cdn"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/di/providers"
	"github.com/framelightapp/framelight-server/internal/logger"
	"github.com/framelightapp/framelight-server/internal/mail"
	"github.com/framelightapp/framelight-server/internal/ratelimit"
	"github.com/framelightapp/framelight-server/internal/service"
	"github.com/framelightapp/framelight-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideAuthKey)

	// Database layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideValidator)

	// Search layer
	do.Provide(injector, providers.ProvideSearchIndex)
	do.Provide(injector, providers.ProvideSearchService)

	// Auth layer
	do.Provide(injector, providers.ProvideTokenService)
	do.Provide(injector, providers.ProvideLoginLimiter)

	// Outbound clients
	do.Provide(injector, providers.ProvideCDNClient)
	do.Provide(injector, providers.ProvideMailer)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideFilmService)
	do.Provide(injector, providers.ProvideSeriesService)
	do.Provide(injector, providers.ProvideBlogService)
	do.Provide(injector, providers.ProvideCategoryService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideAuthorService)
	do.Provide(injector, providers.ProvideBannerService)
	do.Provide(injector, providers.ProvideUploadService)
	do.Provide(injector, providers.ProvideContactService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Invoke core services to trigger initialization
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[providers.AuthKey](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.SearchIndexHandle](injector)
	_ = do.MustInvoke[*service.SearchService](injector)
	_ = do.MustInvoke[*auth.TokenService](injector)
	_ = do.MustInvoke[*ratelimit.KeyedRateLimiter](injector)
	_ = do.MustInvoke[*cdn.Client](injector)
	_ = do.MustInvoke[*mail.Mailer](injector)

	// Business services
	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.FilmService](injector)
	_ = do.MustInvoke[*service.SeriesService](injector)
	_ = do.MustInvoke[*service.BlogService](injector)
	_ = do.MustInvoke[*service.CategoryService](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.AuthorService](injector)
	_ = do.MustInvoke[*service.BannerService](injector)
	_ = do.MustInvoke[*service.UploadService](injector)
	_ = do.MustInvoke[*service.ContactService](injector)

	// Seed configured admin accounts before the server starts accepting logins
	if err := providers.SeedAdmins(injector); err != nil {
		return err
	}

	// Rebuild the search index from the store
	if err := providers.ReindexSearch(injector); err != nil {
		return err
	}

	// Server
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}

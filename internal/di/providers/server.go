package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/framelightapp/framelight-server/internal/api"
	"github.com/framelightapp/framelight-server/internal/config"
	"github.com/framelightapp/framelight-server/internal/logger"
	"github.com/framelightapp/framelight-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Auth:     do.MustInvoke[*service.AuthService](i),
		Film:     do.MustInvoke[*service.FilmService](i),
		Series:   do.MustInvoke[*service.SeriesService](i),
		Blog:     do.MustInvoke[*service.BlogService](i),
		Category: do.MustInvoke[*service.CategoryService](i),
		Tag:      do.MustInvoke[*service.TagService](i),
		Author:   do.MustInvoke[*service.AuthorService](i),
		Banner:   do.MustInvoke[*service.BannerService](i),
		Upload:   do.MustInvoke[*service.UploadService](i),
		Contact:  do.MustInvoke[*service.ContactService](i),
		Search:   do.MustInvoke[*service.SearchService](i),
	}

	handler := api.NewServer(api.Options{
		Store:       storeHandle.Store,
		Services:    services,
		Logger:      log.Logger,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}

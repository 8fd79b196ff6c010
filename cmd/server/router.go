package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/popeskul/whatsapp-assistant/internal/api"
	"github.com/popeskul/whatsapp-assistant/internal/config"
	"github.com/popeskul/whatsapp-assistant/internal/handler"
	"github.com/popeskul/whatsapp-assistant/internal/middleware"
)

// webhookPath is exempt from the request timeout; Meta retries any non-200.
const webhookPath = "/webhook/whatsapp"

func setupRouter(cfg *config.ServerConfig, h api.ServerInterface, tokens middleware.TokenParser, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Serve OpenAPI spec
	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFile(w, req, cfg.OpenAPIPath)
	})

	if cfg.FrontendDir != "" {
		if info, err := os.Stat(cfg.FrontendDir); err == nil && info.IsDir() {
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, "/frontend/", http.StatusTemporaryRedirect)
			})
			r.Get("/frontend", func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, "/frontend/", http.StatusMovedPermanently)
			})
			r.Get("/frontend/*", func(w http.ResponseWriter, req *http.Request) {
				http.StripPrefix("/frontend/", http.FileServer(http.Dir(cfg.FrontendDir))).ServeHTTP(w, req)
			})
			logger.Info("Frontend mounted", zap.String("dir", cfg.FrontendDir))
		} else {
			logger.Warn("Frontend directory not found", zap.String("dir", cfg.FrontendDir))
		}
	}

	api.HandlerWithOptions(h, api.ChiServerOptions{
		BaseRouter: r,
		Middlewares: []api.MiddlewareFunc{
			middleware.Auth(tokens, logger),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, req *http.Request, err error) {
			middleware.WriteError(w, req, http.StatusBadRequest, handler.ErrorCodeInvalidRequest, err.Error())
		},
	})

	return r
}

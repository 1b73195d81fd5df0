package core

import (
	"fmt"
	"net/http"
	"time"

	"portal/internal/flow"
	m "portal/internal/middlewares"
	"portal/internal/models"
	"portal/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

func StartHTTPServer(config models.Configuration, controller *flow.Controller) {
	m.InitValidator()

	r := chi.NewRouter()

	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(m.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(apiRouter chi.Router) {
		portalService := services.NewPortalService(controller, config.App.JWTSecret)
		apiRouter.Mount("/v1/portal", portalService.Routes())

		auditService := services.NewAuditService(controller.Audit)
		apiRouter.With(m.OperatorAuth(config.App.OperatorToken)).
			Mount("/v1/audit", auditService.Routes())
	})

	zap.L().Info("HTTP server starting", zap.Int("port", config.App.Port))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.App.Port),
		Handler:      otelhttp.NewHandler(r, "portal"),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	err := server.ListenAndServe()
	if err != nil {
		zap.L().Error("Failed to start the app", zap.Error(err))
	}
}

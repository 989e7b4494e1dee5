package app

import (
	"context"
	"net/http"
	"time"

	"github.com/apex/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Nitinnn1403/kisan-drishti/internal/api/handlers"
	appMiddleware "github.com/Nitinnn1403/kisan-drishti/internal/api/middlewares"
	"github.com/Nitinnn1403/kisan-drishti/internal/config"
	"github.com/Nitinnn1403/kisan-drishti/internal/i18n"
	"github.com/Nitinnn1403/kisan-drishti/internal/services"
	"github.com/Nitinnn1403/kisan-drishti/internal/ui"
)

// Handlers bundles the feature services the HTTP layer exposes.
type Handlers struct {
	Auth      *services.AuthService
	Dashboard *services.DashboardService
	Analysis  *services.AnalysisService
	Market    *services.MarketService
	Reports   *services.ReportsService
	Chat      *services.ChatService
}

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes.
func NewServer(cfg *config.Config, svc *Handlers, lang *i18n.Store, session *services.Session, regions *ui.Regions, toasts *ui.Toasts, sections *ui.Sections) *Server {
	authHandler := handlers.NewAuthHandler(svc.Auth, session, toasts, cfg.SessionSecret)
	dashboardHandler := handlers.NewDashboardHandler(svc.Dashboard, regions, toasts, lang)
	analysisHandler := handlers.NewAnalysisHandler(svc.Analysis, regions, toasts, lang)
	marketHandler := handlers.NewMarketHandler(svc.Market, regions, toasts)
	reportsHandler := handlers.NewReportsHandler(svc.Reports, regions, toasts, lang)
	chatHandler := handlers.NewChatHandler(svc.Chat)
	languageHandler := handlers.NewLanguageHandler(lang, sections)
	uiHandler := handlers.NewUIHandler(regions, toasts, sections)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:" + cfg.Port},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	fileServer := http.FileServer(http.Dir(cfg.WebDir))
	r.Handle("/*", fileServer)

	r.Route("/api", func(api chi.Router) {
		// public endpoints
		api.Post("/login", authHandler.Login)
		api.Post("/register", authHandler.Register)
		api.Get("/session", authHandler.Check)

		// protected endpoints
		api.Group(func(protected chi.Router) {
			protected.Use(appMiddleware.Session(cfg.SessionSecret))
			protected.Post("/logout", authHandler.Logout)
			protected.Post("/settings/password", authHandler.ChangePassword)
			protected.Post("/settings/delete-account", authHandler.DeleteAccount)

			protected.Post("/analyze-crop", analysisHandler.AnalyzeCrop)
			protected.Post("/analyze-field", analysisHandler.AnalyzeField)
			protected.Post("/preview-image", analysisHandler.Preview)
			protected.Post("/save-report", analysisHandler.SaveReport)

			protected.Get("/locations/states", marketHandler.States)
			protected.Get("/locations/districts", marketHandler.Districts)
			protected.Post("/prices", marketHandler.Prices)

			protected.Delete("/reports/{id}", reportsHandler.Delete)
			protected.Get("/plan-options", reportsHandler.PlanOptions)
			protected.Post("/fertilizer-plan", reportsHandler.Plan)

			protected.Post("/chat/open", chatHandler.Open)
			protected.Post("/chat/send", chatHandler.Send)
		})
	})

	r.Route("/ui", func(uiRoutes chi.Router) {
		uiRoutes.Get("/lang", languageHandler.Get)
		uiRoutes.Post("/lang", languageHandler.Set)
		uiRoutes.Get("/toasts", uiHandler.Toasts)
		uiRoutes.Delete("/toasts/{id}", uiHandler.DismissToast)
		uiRoutes.Get("/regions/{name}", uiHandler.Region)
		uiRoutes.Post("/sections", uiHandler.ShowSection)

		uiRoutes.Group(func(protected chi.Router) {
			protected.Use(appMiddleware.Session(cfg.SessionSecret))
			protected.Get("/dashboard", dashboardHandler.Load)
			protected.Get("/reports", reportsHandler.List)
			protected.Get("/reports/{id}", reportsHandler.View)
		})
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	log.WithField("addr", s.httpServer.Addr).Info("gateway listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

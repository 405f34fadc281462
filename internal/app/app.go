package app

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/placementready/readiness-analyzer/analysis-service/internal/config"
	"github.com/placementready/readiness-analyzer/analysis-service/internal/delivery/httpd"
	"github.com/placementready/readiness-analyzer/analysis-service/internal/repository"
	"github.com/placementready/readiness-analyzer/analysis-service/internal/service"
)

type App struct {
	server *http.Server
	logger zerolog.Logger
	config *config.Config
	repo   repository.AnalysisRepository
}

// New resolves the two optional collaborators once at startup. Either may be
// absent: without an API key /analyze answers 503, without store credentials
// persistence is skipped and /analyze still succeeds.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	var model service.TextModel
	if cfg.Gemini.APIKey != "" {
		gemini, err := service.NewGeminiModel(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Warn().Err(err).Msg("Gemini initialization failed, analysis disabled")
		} else {
			model = gemini
			log.Info().Str("model", cfg.Gemini.Model).Msg("Gemini initialized")
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, analysis disabled")
	}

	var repo repository.AnalysisRepository
	if cfg.Firebase.CredentialsPath != "" {
		r, err := repository.NewFirestoreRepository(
			ctx,
			cfg.Firebase.CredentialsPath,
			cfg.Firebase.ProjectID,
			cfg.Firebase.Collection,
			log,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Firestore initialization failed, data storage disabled")
		} else {
			repo = r
			log.Info().Str("collection", cfg.Firebase.Collection).Msg("Firestore initialized")
		}
	} else {
		log.Warn().Msg("Firebase credentials not found, data storage disabled")
	}

	generator := service.NewReportGenerator(model, log)
	analysisService := service.NewAnalysisService(generator, repo, log)
	handler := httpd.NewHandler(analysisService, log)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	// No write timeout: the model round-trip is an unbounded synchronous
	// wait by design.
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server: server,
		logger: log,
		config: cfg,
		repo:   repo,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Msgf("Starting analysis service on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down analysis service...")

	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close analysis store")
		}
	}

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		return err
	}

	a.logger.Info().Msg("Analysis service stopped")
	return nil
}

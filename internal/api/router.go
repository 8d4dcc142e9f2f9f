package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/saunova/saunova-server/internal/api/handlers"
	"github.com/saunova/saunova-server/internal/api/middleware"
	"github.com/saunova/saunova-server/internal/api/response"
	"github.com/saunova/saunova-server/internal/auth"
	"github.com/saunova/saunova-server/internal/bridge"
	"github.com/saunova/saunova-server/internal/repository"
	"github.com/saunova/saunova-server/internal/service"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, repos *repository.Repositories, bridgeClient *bridge.Client, health *bridge.HealthMonitor, verifier auth.TokenVerifier, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Account, logger)
	imageHandler := handlers.NewImageHandler(services.Account, logger)
	saunaHandler := handlers.NewSaunaHandler(repos.User, bridgeClient, logger)
	chatHandler := handlers.NewChatHandler(bridgeClient, logger)
	chatSocketHandler := handlers.NewChatSocketHandler(bridgeClient, logger)
	ingestHandler := handlers.NewIngestHandler(services.Session, logger)

	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		response.Success(w, map[string]interface{}{
			"status":       "ok",
			"bridge_ready": health.Ready(),
		})
	})

	// Internal measurement-pipeline ingest; firewalled in deployment, not
	// bearer-authenticated.
	r.Post("/python", ingestHandler.LogSession)

	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.Auth(verifier, logger))
		r.Get("/login", authHandler.Login)
		r.Post("/signup", authHandler.Signup)
		r.Post("/finish-setup", authHandler.FinishSetup)
	})

	r.Route("/image", func(r chi.Router) {
		r.Use(middleware.Auth(verifier, logger))
		r.Post("/profile", imageHandler.SetProfileImage)
		r.Delete("/profile", imageHandler.DeleteProfileImage)
	})

	r.Route("/sauna", func(r chi.Router) {
		r.Use(middleware.Auth(verifier, logger))
		r.Get("/recommendations", saunaHandler.Recommendations)
		r.Post("/recommendations", saunaHandler.Recommendations)
		r.Post("/start_session", saunaHandler.StartSession)
		r.Post("/end_session", saunaHandler.EndSession)
	})

	r.Route("/chat", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(verifier, logger))
			r.Post("/ask", chatHandler.Ask)
		})

		// Websocket relay skips the bearer middleware; browsers cannot set
		// headers on an upgrade request.
		r.Get("/ws", chatSocketHandler.Handle)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, "Not Found", http.StatusNotFound)
	})

	return r
}

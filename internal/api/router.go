package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "healthquest/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the
// application's routes.
func NewRouter(chatHandler *ChatHandler, profileHandler *ProfileHandler) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Swagger UI for the API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout so client
		// connections cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// Sessions
			r.Get("/sessions", chatHandler.GetSessions)
			r.Get("/sessions/{sessionID}", chatHandler.GetSession)
			r.Post("/sessions/active", chatHandler.SetActiveSession)
			r.Delete("/sessions/{sessionID}", chatHandler.HandleDeleteSession)

			// Profile & welcome surface
			r.Get("/profile", profileHandler.GetProfile)
			r.Put("/profile", profileHandler.UpdateProfile)
			r.Get("/welcome", profileHandler.GetWelcome)
		})

		// The send endpoint waits on the grounded Gemini call and must
		// not share the short timeout above.
		r.Group(func(r chi.Router) {
			r.Post("/messages", chatHandler.HandleSendMessage)
		})
	})

	return r
}

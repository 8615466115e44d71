package routes

import (
	"log/slog"
	"net/http"
	"time"

	_ "github.com/Dosada05/swiss-tournament/docs"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Player    *handlers.PlayerHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	WebSocket *handlers.WebSocketHandler
	Health    *handlers.HealthHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func SetupRoutes(router chi.Router, opts Options, h Handlers) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(opts.Logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(opts.JWTSecret), opts.Logger)
	organizerOnly := middleware.Authorize(middleware.RoleOrganizer)

	router.Get("/healthz", h.Health.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// The websocket connection outlives any request timeout.
	router.Get("/ws", h.WebSocket.ServeWs)

	router.Group(func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.Post("/auth/login", h.Auth.Login)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.ListPlayers)
			r.Get("/count", h.Player.CountPlayers)
			r.Get("/{playerID}/matches/count", h.Player.MatchesPlayed)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(organizerOnly)

				r.Post("/", h.Player.RegisterPlayer)
				r.Delete("/", h.Player.DeletePlayers)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Get("/", h.Match.ListMatches)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Use(organizerOnly)

				r.Post("/", h.Match.ReportMatch)
				r.Delete("/", h.Match.DeleteMatches)
			})
		})

		r.Get("/standings", h.Standings.GetStandings)
		r.Get("/pairings", h.Standings.GetPairings)

		r.With(authenticate, organizerOnly).Post("/rounds/archive", h.Standings.ArchiveRound)
	})
}

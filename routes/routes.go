package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Dosada05/league-standings/handlers"
	"github.com/Dosada05/league-standings/middleware"
	"github.com/Dosada05/league-standings/models"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	leaderboardHandler *handlers.LeaderboardHandler,
	tournamentHandler *handlers.TournamentHandler,
	matchHandler *handlers.MatchHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	router.Route("/players", func(r chi.Router) {
		// Публичные маршруты для просмотра игроков
		r.Get("/", playerHandler.List)
		r.Get("/{playerID}", playerHandler.GetByID)
		r.Get("/{playerID}/history", leaderboardHandler.GetPlayerHistory)

		// Защищенные маршруты только для администраторов лиги
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Post("/", playerHandler.Create)
			r.Post("/{playerID}/emblem", playerHandler.UploadEmblem)
			r.Delete("/{playerID}", playerHandler.Delete)
		})
	})

	router.Get("/leaderboard", leaderboardHandler.GetLeaderboard)

	router.Route("/events", func(r chi.Router) {
		r.Get("/", tournamentHandler.ListEvents)
		r.Get("/placements", tournamentHandler.GetEventPlacements)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Delete("/", tournamentHandler.DeleteEvent)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Post("/solo", matchHandler.CreateSolo)
		r.Post("/team", matchHandler.CreateTeam)
	})

	router.Get("/ws/leaderboard", webSocketHandler.ServeWs)
}

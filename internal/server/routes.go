package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/homenest/HomeNest_Backend/internal/auth"
	"github.com/homenest/HomeNest_Backend/internal/constants"
	"github.com/homenest/HomeNest_Backend/internal/middleware"
	"github.com/homenest/HomeNest_Backend/internal/utils"
)

// setupRoutes configures the router. The public surface is deliberately
// flat, matching the paths the frontend calls; everything mutating a user's
// data sits behind the session gate.
func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(s.Config.CORS))
	if s.Config.Logging.RequestLog {
		r.Use(middleware.RequestLogger())
	}

	requireSession := auth.RequireSession(s.sessions)

	// System.
	r.Get("/health", s.Handlers.SystemHandler.Health)
	r.Get("/version", s.Handlers.SystemHandler.Version)

	// Auth.
	r.Post("/signup", s.Handlers.AuthHandler.SignUp)
	r.Post("/login", s.Handlers.AuthHandler.Login)
	r.Delete("/logout", s.Handlers.AuthHandler.Logout)
	r.With(requireSession).Get("/me", s.Handlers.AuthHandler.Me)

	// Users.
	r.Route("/users/{id}", func(r chi.Router) {
		r.Use(requireSession)
		r.Get("/", s.Handlers.UserHandler.Get)
		r.Patch("/", s.Handlers.UserHandler.Update)
		r.Delete("/", s.Handlers.UserHandler.Delete)
		r.Get("/favorites", s.Handlers.FavoriteHandler.ListByUser)
	})

	// Homes.
	r.Route("/homes", func(r chi.Router) {
		r.Get("/", s.Handlers.HomeHandler.List)
		r.Get("/{id}", s.Handlers.HomeHandler.Get)
		r.With(requireSession).Post("/", s.Handlers.HomeHandler.Create)
		r.With(requireSession).Patch("/{id}", s.Handlers.HomeHandler.Update)
		r.With(requireSession).Delete("/{id}", s.Handlers.HomeHandler.Delete)
		r.With(requireSession).Post("/{home_id}/reviews", s.Handlers.ReviewHandler.Create)
	})

	// Reviews.
	r.Route("/reviews/{id}", func(r chi.Router) {
		r.Use(requireSession)
		r.Patch("/", s.Handlers.ReviewHandler.Update)
		r.Delete("/", s.Handlers.ReviewHandler.Delete)
	})

	// Favorites. The frontend calls these two with the user id as the path
	// root, so they are registered verbatim.
	r.With(requireSession).Post("/{user_id}/add_favorite", s.Handlers.FavoriteHandler.AddFavorite)
	r.With(requireSession).Delete("/{user_id}/remove_favorite/{favorite_id}", s.Handlers.FavoriteHandler.RemoveFavorite)
	r.With(requireSession).Post("/favorites/{collection_id}/homes", s.Handlers.FavoriteHandler.AddHome)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.NotFound(w, "The requested resource was not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.Error(w, http.StatusMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
	})

	s.router = r
}

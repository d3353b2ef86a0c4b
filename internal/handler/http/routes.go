package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization; path strings are fixed by the deployed
	// game client and must not change
	router.Group(func(r chi.Router) {
		r.Post("/create-player", h.createPlayer)
		r.Post("/login", h.login)

		// three aliases with identical behavior, all used in the wild
		r.Get("/get-players", h.listPlayers)
		r.Get("/get-posts", h.listPlayers)
		r.Get("/players", h.listPlayers)

		r.Get("/api/player/{username}", h.getPlayerByUsername)

		r.Post("/update-coins", h.updateCoins)
		r.Post("/update-progress", h.updateProgress)
		r.Post("/update-milestones", h.updateMilestones)

		r.Post("/api/reward", h.reward)
	})

	// routes gated on a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/current-user", h.currentUser)
		r.Post("/api/update-profile", h.updateProfile)
		r.Post("/api/upload-avatar", h.uploadAvatar)
		r.Post("/api/change-password", h.changePassword)
		r.Post("/api/delete-account", h.deleteAccount)
		r.Post("/api/logout", h.logout)
		r.Post("/api/logout-others", h.logoutOthers)
	})

	// everything else is the static client application
	router.NotFound(h.static)

	return router
}

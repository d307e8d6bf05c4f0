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

	// routes without an active session
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	// routes gated by an active session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/logout", h.logout)
		r.Get("/check_session", h.checkSession)
		r.Get("/recipes", h.listRecipes)
		r.Post("/recipes", h.createRecipe)
	})

	return router
}

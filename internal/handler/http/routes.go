package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRecovery)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Put("/", h.updateUser)
		r.Get("/{id}", h.getUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.Get("/version", h.getServerVersion)

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(h.routeNotFound)

	return router
}

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes behind the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/auth/profile", h.profile)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Get("/{id}", h.getUser)
			r.Put("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})

		r.Route("/equipment", func(r chi.Router) {
			r.Get("/", h.listEquipment)
			r.Post("/", h.createEquipment)
			r.Get("/{id}", h.getEquipment)
			r.Put("/{id}", h.updateEquipment)
			r.Patch("/{id}/status", h.changeEquipmentStatus)
			r.Delete("/{id}", h.deleteEquipment)
		})
	})

	return router
}

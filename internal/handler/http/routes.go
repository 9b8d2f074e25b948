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

	router.Route("/api", func(r chi.Router) {
		r.Route("/recipes", func(r chi.Router) {
			r.With(noClientCache).Get("/", h.listRecipes)
			r.Post("/", h.createRecipe)

			r.Route("/{id}", func(r chi.Router) {
				r.With(noClientCache).Get("/", h.getRecipe)
				r.Put("/", h.updateRecipe)
				r.Delete("/", h.deleteRecipe)

				r.Put("/rating", h.updateRating)
				r.Put("/text", h.updateText)
				r.Put("/ingredients", h.updateIngredients)
				r.Put("/links", h.updateLinks)

				r.Route("/photos", func(r chi.Router) {
					r.With(noClientCache).Get("/", h.listPhotos)
					r.Post("/", h.uploadPhoto)
					r.Get("/{filename}", h.getPhoto)
					r.Delete("/{filename}", h.deletePhoto)
				})
			})
		})

		r.Post("/extract-ingredients", h.extractIngredients)
	})

	return router
}

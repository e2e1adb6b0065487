package creditcard

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns credit card router. Everything requires auth.
func (h *Handler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(authMiddleware)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}

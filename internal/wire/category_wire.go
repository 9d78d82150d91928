package wire

import (
	"experience-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	// POST /categories - Create category (name must be unique)
	r.Post("/categories", categoryHandler.CreateCategory)

	// GET /categories - List all categories
	r.Get("/categories", categoryHandler.GetCategories)

	// GET /categories/{id} - Get one category
	r.Get("/categories/{id}", categoryHandler.GetCategoryByID)

	// PATCH /categories/{id} - Rename category
	r.Patch("/categories/{id}", categoryHandler.UpdateCategory)

	// DELETE /categories/{id} - Remove category
	r.Delete("/categories/{id}", categoryHandler.DeleteCategory)
}

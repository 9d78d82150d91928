package wire

import (
	"experience-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireExperience(r chi.Router, experienceHandler *adaptor.ExperienceHandler) {
	// POST /experiences - Create experience
	r.Post("/experiences", experienceHandler.CreateExperience)

	// GET /experiences - List all experiences
	r.Get("/experiences", experienceHandler.GetExperiences)

	// GET /experiences/{id} - Get one experience
	r.Get("/experiences/{id}", experienceHandler.GetExperienceByID)

	// PATCH /experiences/{id} - Replace every field
	r.Patch("/experiences/{id}", experienceHandler.UpdateExperience)

	// DELETE /experiences/{id} - Remove experience
	r.Delete("/experiences/{id}", experienceHandler.DeleteExperience)
}

package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"experience-booking/internal/dto/request"
	"experience-booking/internal/usecase"
	"experience-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	service usecase.ExperienceService
	log     *zap.Logger
}

func NewExperienceHandler(service usecase.ExperienceService, log *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		service: service,
		log:     log.With(zap.String("handler", "experience")),
	}
}

// CreateExperience handles POST /experiences
func (h *ExperienceHandler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	var req request.ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	experience, err := h.service.CreateExperience(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create experience")
		return
	}

	utils.ResponseCreated(w, "success", experience)
}

// GetExperiences handles GET /experiences
func (h *ExperienceHandler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := h.service.GetExperiences(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get experiences")
		return
	}

	utils.ResponseSuccess(w, "success", experiences)
}

// GetExperienceByID handles GET /experiences/{id}
func (h *ExperienceHandler) GetExperienceByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	experience, err := h.service.GetExperienceByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get experience by ID")
		return
	}

	utils.ResponseSuccess(w, "success", experience)
}

// UpdateExperience handles PATCH /experiences/{id}. The full field set
// is required; missing fields fail validation rather than being kept.
func (h *ExperienceHandler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	var req request.ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	experience, err := h.service.UpdateExperience(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update experience")
		return
	}

	utils.ResponseSuccess(w, "success", experience)
}

// DeleteExperience handles DELETE /experiences/{id}
func (h *ExperienceHandler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	if err := h.service.DeleteExperience(r.Context(), id); err != nil {
		h.handleServiceError(w, err, "delete experience")
		return
	}

	utils.ResponseSuccess(w, "Experience deleted successfully", nil)
}

// handleServiceError handles errors untuk experience operations
func (h *ExperienceHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetExperienceReviews handles GET /reviews/experience/{id}
func (h *ReviewHandler) GetExperienceReviews(w http.ResponseWriter, r *http.Request) {
	experienceID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	reviews, err := h.service.GetExperienceReviews(r.Context(), experienceID)
	if err != nil {
		h.handleServiceError(w, err, "get experience reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetExperienceReviewStats handles GET /reviews/experience/{id}/stats
func (h *ReviewHandler) GetExperienceReviewStats(w http.ResponseWriter, r *http.Request) {
	experienceID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid experience ID", nil)
		return
	}

	stats, err := h.service.GetExperienceReviewStats(r.Context(), experienceID)
	if err != nil {
		h.handleServiceError(w, err, "get experience review stats")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// handleServiceError handles errors untuk review operations
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

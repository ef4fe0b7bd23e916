package get_professional_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidAvailable      = "некорректное значение параметра available"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/slots?available=true
// Список слотов публичный: пациент выбирает время до бронирования.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidProfessionalID)
		return
	}

	availableOnly := false
	if raw := r.URL.Query().Get("available"); raw != "" {
		availableOnly, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /professionals/{id}/slots - Invalid available param: %v", err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidAvailable)
			return
		}
	}

	result, err := h.service.List(r.Context(), professionalID, availableOnly)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/slots - Invalid input: professional_id=%d: %v",
				professionalID, err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/slots - Failed to list slots: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/slots - Fetched %d slots: professional_id=%d, available_only=%v",
		result.Total, professionalID, availableOnly)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

package get_professional_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	"github.com/consultafacil/CF-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgForbidden             = "доступ запрещен"
	msgMissingIdentity       = "запрос без аутентифицированной личности"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{professionalId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	vars := mux.Vars(r)
	professionalIDStr := vars["professionalId"]

	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /professionals/{id}/appointments - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidProfessionalID)
		return
	}

	result, err := h.service.GetByProfessional(r.Context(), user, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /professionals/{id}/appointments - Access denied: professional_id=%d, user_id=%d",
				professionalID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/appointments - Invalid input: professional_id=%d: %v",
				professionalID, err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidProfessionalID)

		default:
			h.logger.Error("GET /professionals/{id}/appointments - Failed to get appointments: professional_id=%d, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id}/appointments - Fetched %d appointments: professional_id=%d",
		result.Total, professionalID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

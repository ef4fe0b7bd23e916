package get_appointment

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
	msgInvalidAppointmentID = "некорректный ID консультации"
	msgNotFound             = "консультация не найдена"
	msgForbidden            = "доступ запрещен"
	msgMissingIdentity      = "запрос без аутентифицированной личности"
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

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), user, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, handlers.CodeAppointmentNotFound, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to get appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Appointment fetched successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

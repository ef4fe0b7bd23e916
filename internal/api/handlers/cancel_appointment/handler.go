package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	cancelAppointment "github.com/consultafacil/CF-SchedulingService/internal/usecase/cancel_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID консультации"
	msgNotFound             = "консультация не найдена"
	msgForbidden            = "доступ запрещен"
	msgTooLateToCancel      = "отмена возможна не позже чем за 24 часа до консультации"
	msgMissingIdentity      = "запрос без аутентифицированной личности"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{appointmentId}
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
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidAppointmentID)
		return
	}

	err = h.useCase.Execute(r.Context(), user, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, handlers.CodeAppointmentNotFound, msgNotFound)

		case errors.Is(err, cancelAppointment.ErrAccessDenied):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelAppointment.ErrTooLateToCancel):
			h.logger.Warn("DELETE /appointments/{id} - Too late to cancel: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, handlers.CodeLateCancellation, msgTooLateToCancel)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled successfully: appointment_id=%d, user_id=%d",
		appointmentID, user.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

package get_patient_appointments

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
	msgInvalidPatientID = "некорректный ID пациента"
	msgForbidden        = "доступ запрещен"
	msgMissingIdentity  = "запрос без аутентифицированной личности"
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

// Handle GET /api/v1/patients/{patientId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	vars := mux.Vars(r)
	patientIDStr := vars["patientId"]

	patientID, err := strconv.ParseInt(patientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id}/appointments - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetByPatient(r.Context(), user, patientID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /patients/{id}/appointments - Access denied: patient_id=%d, user_id=%d",
				patientID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /patients/{id}/appointments - Invalid input: patient_id=%d: %v", patientID, err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidPatientID)

		default:
			h.logger.Error("GET /patients/{id}/appointments - Failed to get appointments: patient_id=%d, error=%v",
				patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /patients/{id}/appointments - Fetched %d appointments: patient_id=%d",
		result.Total, patientID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

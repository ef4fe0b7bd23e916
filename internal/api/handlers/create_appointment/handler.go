package create_appointment

import (
	"errors"
	"net/http"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	createAppointment "github.com/consultafacil/CF-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidScheduledAt = "некорректный формат времени консультации, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные запроса"
	msgPastTime           = "время консультации уже прошло"
	msgSchedulingConflict = "у профессионала уже есть консультация на это время"
	msgSlotUnavailable    = "выбранное время недоступно для бронирования"
	msgConcurrentBooking  = "профессионал бронируется прямо сейчас, повторите запрос"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidInput)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом момента)
	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse scheduledAt: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidScheduledAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: patient=%d, professional=%d: %v",
				user.ID, req.ProfessionalID, err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrPastTime):
			h.logger.Warn("POST /appointments - Past time: patient=%d, professional=%d",
				user.ID, req.ProfessionalID)
			handlers.RespondBadRequest(w, handlers.CodePastTime, msgPastTime)

		case errors.Is(err, createAppointment.ErrSchedulingConflict):
			h.logger.Warn("POST /appointments - Scheduling conflict: professional=%d, time=%s",
				req.ProfessionalID, req.ScheduledAt)
			handlers.RespondConflict(w, handlers.CodeSchedulingConflict, msgSchedulingConflict)

		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: professional=%d, time=%s",
				req.ProfessionalID, req.ScheduledAt)
			handlers.RespondBadRequest(w, handlers.CodeSlotUnavailable, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrConcurrentBooking):
			h.logger.Warn("POST /appointments - Concurrent booking: professional=%d", req.ProfessionalID)
			handlers.RespondConflict(w, handlers.CodeSchedulingConflict, msgConcurrentBooking)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: patient=%d, professional=%d, error=%v",
				user.ID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, patient=%d, professional=%d",
		result.ID, user.ID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

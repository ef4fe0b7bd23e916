package create_slot

import (
	"errors"
	"net/http"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные запроса"
	msgInvalidInterval    = "начало слота должно быть раньше конца"
	msgPastSlot           = "слот должен начинаться в будущем"
	msgForbidden          = "доступ запрещен"
	msgMissingIdentity    = "запрос без аутентифицированной личности"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /slots - Failed to parse interval: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidTime)
		return
	}

	result, err := h.service.Create(r.Context(), user, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: professional_id=%d: %v", req.ProfessionalID, err)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidInput)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("POST /slots - Access denied: professional_id=%d, user_id=%d",
				req.ProfessionalID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, slots.ErrInvalidInterval):
			h.logger.Warn("POST /slots - Invalid interval: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidInterval)

		case errors.Is(err, slots.ErrPastSlot):
			h.logger.Warn("POST /slots - Slot starts in the past: professional_id=%d", req.ProfessionalID)
			handlers.RespondBadRequest(w, handlers.CodePastTime, msgPastSlot)

		default:
			h.logger.Error("POST /slots - Failed to create slot: professional_id=%d, error=%v",
				req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, professional_id=%d",
		result.ID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/consultafacil/CF-SchedulingService/internal/api/handlers"
	"github.com/consultafacil/CF-SchedulingService/internal/api/middleware"
	"github.com/consultafacil/CF-SchedulingService/internal/service/slots"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "слот не найден"
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

// Handle PUT /api/v1/slots/{slotId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	vars := mux.Vars(r)
	slotIDStr := vars["slotId"]

	slotID, err := strconv.ParseInt(slotIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /slots/{id}/availability - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidSlotID)
		return
	}

	var req UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidRequestBody)
		return
	}

	err = h.service.SetAvailability(r.Context(), user, slotID, req.Available)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/{id}/availability - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, handlers.CodeResourceNotFound, msgNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("PUT /slots/{id}/availability - Access denied: slot_id=%d, user_id=%d",
				slotID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /slots/{id}/availability - Failed to update slot: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/{id}/availability - Slot updated successfully: slot_id=%d, available=%v",
		slotID, req.Available)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

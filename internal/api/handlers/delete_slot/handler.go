package delete_slot

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
	msgInvalidSlotID   = "некорректный ID слота"
	msgNotFound        = "слот не найден"
	msgForbidden       = "доступ запрещен"
	msgMissingIdentity = "запрос без аутентифицированной личности"
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

// Handle DELETE /api/v1/slots/{slotId}
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
		h.logger.Warn("DELETE /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeValidation, msgInvalidSlotID)
		return
	}

	err = h.service.Delete(r.Context(), user, slotID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("DELETE /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, handlers.CodeResourceNotFound, msgNotFound)

		case errors.Is(err, slots.ErrAccessDenied):
			h.logger.Warn("DELETE /slots/{id} - Access denied: slot_id=%d, user_id=%d", slotID, user.ID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /slots/{id} - Failed to delete slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /slots/{id} - Slot deleted successfully: slot_id=%d, user_id=%d", slotID, user.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

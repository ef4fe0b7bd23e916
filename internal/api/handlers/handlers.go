package handlers

import (
	"encoding/json"
	"net/http"
)

// Машинные коды ошибок API. Контрактные значения: клиенты ветвятся по ним,
// человекочитаемое сообщение рядом может меняться свободно.
const (
	CodeSchedulingConflict  = "CONFLITO_HORARIO"
	CodeSlotUnavailable     = "HORARIO_INDISPONIVEL"
	CodePastTime            = "HORARIO_PASSADO"
	CodeLateCancellation    = "CANCELAMENTO_SEM_ANTECEDENCIA"
	CodeAppointmentNotFound = "CONSULTA_NAO_ENCONTRADA"
	CodeResourceNotFound    = "RECURSO_NAO_ENCONTRADO"
	CodeAccessDenied        = "ACESSO_NEGADO"
	CodeValidation          = "ERRO_VALIDACAO"
	CodeInternal            = "ERRO_INTERNO"
)

const msgInternalError = "внутренняя ошибка сервера"

// ErrorResponse тело ошибки API
type ErrorResponse struct {
	Codigo  string `json:"codigo"`
	Message string `json:"message"`
}

// DecodeJSON декодирует тело запроса в value
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// RespondError отправляет ошибку с произвольным статусом
func RespondError(w http.ResponseWriter, status int, codigo, message string) {
	RespondJSON(w, status, &ErrorResponse{Codigo: codigo, Message: message})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, codigo, message string) {
	RespondError(w, http.StatusBadRequest, codigo, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeAccessDenied, message)
}

// RespondForbidden отправляет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeAccessDenied, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, codigo, message string) {
	RespondError(w, http.StatusNotFound, codigo, message)
}

// RespondConflict отправляет 409 Conflict
func RespondConflict(w http.ResponseWriter, codigo, message string) {
	RespondError(w, http.StatusConflict, codigo, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternalError)
}

package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots: slot not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на слот
	ErrAccessDenied = errors.New("slots: access denied")

	// ErrInvalidInterval возвращается, когда интервал слота некорректен (start >= end)
	ErrInvalidInterval = errors.New("slots: invalid slot interval")

	// ErrPastSlot возвращается при попытке опубликовать слот в прошлом
	ErrPastSlot = errors.New("slots: slot starts in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots: internal error")
)

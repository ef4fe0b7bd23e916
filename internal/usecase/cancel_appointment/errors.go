package cancel_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда консультация не найдена
	// (в том числе при повторной отмене уже удалённой консультации)
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда пользователь не участник
	// консультации и не администратор
	ErrAccessDenied = errors.New("cancel_appointment: access denied")

	// ErrTooLateToCancel возвращается при отмене менее чем за 24 часа
	// до консультации
	ErrTooLateToCancel = errors.New("cancel_appointment: cancellation allowed only 24h in advance")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_appointment: internal error")
)

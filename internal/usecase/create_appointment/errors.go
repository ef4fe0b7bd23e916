package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrPastTime возвращается при попытке забронировать момент в прошлом
	ErrPastTime = errors.New("create_appointment: scheduled time is in the past")

	// ErrSchedulingConflict возвращается, когда у профессионала уже есть
	// консультация ровно на этот момент
	ErrSchedulingConflict = errors.New("create_appointment: appointment already scheduled at this time")

	// ErrSlotUnavailable возвращается, когда ни один доступный слот
	// профессионала не покрывает выбранный момент
	ErrSlotUnavailable = errors.New("create_appointment: no available slot covers this time")

	// ErrConcurrentBooking возвращается, когда замок профессионала занят
	// другим бронированием - клиенту следует повторить запрос
	ErrConcurrentBooking = errors.New("create_appointment: professional is being booked concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

package slotservice

import "errors"

var (
	// ErrSlotNotFound возвращается, когда удалённый сервис не знает такой слот
	ErrSlotNotFound = errors.New("slotservice client: slot not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("slotservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("slotservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда сервис слотов недоступен
	// (сетевая ошибка или не-2xx ответ). Политика деградации - на стороне
	// вызывающего: чтение трактуется как "нет слотов", запись - логируется
	// и отбрасывается, бронирование остаётся в силе.
	ErrServiceUnavailable = errors.New("slotservice client: service unavailable")
)

package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда консультация не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrAppointmentConflict возвращается при нарушении уникальности
	// (professional_id, scheduled_at) - у профессионала уже есть консультация
	// на этот момент
	ErrAppointmentConflict = errors.New("appointment.repository: appointment already exists for professional at this time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

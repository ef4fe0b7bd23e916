package domain

import "time"

// Business validation constants
const (
	// CancellationNotice минимальное время до консультации, при котором
	// отмена ещё разрешена
	CancellationNotice = 24 * time.Hour

	// MaxObservationsLength максимальная длина поля наблюдений
	MaxObservationsLength = 500
)

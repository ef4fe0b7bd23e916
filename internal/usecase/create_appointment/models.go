package create_appointment

import "time"

// Request модель запроса на создание консультации
type Request struct {
	PatientID      int64     // ID пациента (из аутентифицированной личности)
	ProfessionalID int64     // ID профессионала
	ScheduledAt    time.Time // Момент консультации, должен попадать в слот профессионала
	Observations   *string   // Наблюдения/заметки (опционально, до 500 символов)
}

// Response модель ответа с созданной консультацией
type Response struct {
	ID             int64
	PatientID      int64
	ProfessionalID int64
	ScheduledAt    time.Time
	Status         string
	Observations   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

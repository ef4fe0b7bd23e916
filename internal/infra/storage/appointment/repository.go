package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/consultafacil/CF-SchedulingService/internal/domain"
	"github.com/consultafacil/CF-SchedulingService/pkg/dbmetrics"
	"github.com/consultafacil/CF-SchedulingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"patient_id",
	"professional_id",
	"scheduled_at",
	"status",
	"observations",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с консультациями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория консультаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую консультацию
// Если в контексте передана активная транзакция, использует её.
//
// Уникальный индекс (professional_id, scheduled_at) в БД - последний рубеж
// защиты от двойного бронирования: при конкурентной вставке второй писатель
// получает ErrAppointmentConflict, а не падение.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"patient_id",
			"professional_id",
			"scheduled_at",
			"status",
			"observations",
		).
		Values(
			a.PatientID,
			a.ProfessionalID,
			a.ScheduledAt,
			a.Status,
			a.Observations,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrAppointmentConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает консультацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// GetByPatient получает список консультаций пациента
func (r *Repository) GetByPatient(ctx context.Context, patientID int64) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{"patient_id": patientID}, "GetByPatient")
}

// GetByPatientAndProfessional получает консультации пациента у конкретного
// профессионала (используется при доступе профессионала к истории пациента)
func (r *Repository) GetByPatientAndProfessional(ctx context.Context, patientID, professionalID int64) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{
		"patient_id":      patientID,
		"professional_id": professionalID,
	}, "GetByPatientAndProfessional")
}

// GetByProfessional получает список консультаций профессионала
func (r *Repository) GetByProfessional(ctx context.Context, professionalID int64) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{"professional_id": professionalID}, "GetByProfessional")
}

// ExistsByProfessionalAndTime проверяет, есть ли у профессионала консультация
// ровно на этот момент времени
func (r *Repository) ExistsByProfessionalAndTime(ctx context.Context, professionalID int64, at time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"scheduled_at":    at,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByProfessionalAndTime - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByProfessionalAndTime - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// Delete удаляет консультацию (отмена = физическое удаление записи)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq, op string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		OrderBy("scheduled_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.ProfessionalID,
		&a.ScheduledAt,
		&a.Status,
		&a.Observations,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

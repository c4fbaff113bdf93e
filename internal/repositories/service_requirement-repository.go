package repositories

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

type ServiceRequirementRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, sr entities.ServiceRequirement) error
	// FindByClient - заявки клиента, порядок строк определяет движок.
	FindByClient(ctx context.Context, tx *sql.Tx, clientNumber int64) ([]entities.ClientRequirementRow, error)
	// FindByEmployee - заявки, назначенные сотруднику, вместе с именем клиента.
	FindByEmployee(ctx context.Context, tx *sql.Tx, staffNumber int64) ([]entities.EmployeeAssignmentRow, error)
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type serviceRequirementRepository struct {
	baseRepository
}

func NewServiceRequirementRepository(store *database.Store) ServiceRequirementRepositoryInterface {
	return &serviceRequirementRepository{baseRepository: newBase(store)}
}

func (r *serviceRequirementRepository) Create(ctx context.Context, tx *sql.Tx, sr entities.ServiceRequirement) error {
	builder := r.psql.Insert(entities.TableServiceRequirement).
		Columns("requirementId", "clientNumber", "startDate", "startTime", "duration", "comments").
		Values(sr.RequirementID, sr.ClientNumber, sr.StartDate, sr.StartTime, sr.Duration, sr.Comments)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка вставки заявки %d", sr.RequirementID))
}

func (r *serviceRequirementRepository) FindByClient(ctx context.Context, tx *sql.Tx, clientNumber int64) ([]entities.ClientRequirementRow, error) {
	query, args, err := r.psql.
		Select("requirementId", "startDate", "startTime", "duration", "comments").
		From(entities.TableServiceRequirement).
		Where(sq.Eq{"clientNumber": clientNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByClient: %w", err)
	}

	rows, err := r.getQuerier(tx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения FindByClient: %w", apperrors.FromStore(err))
	}
	defer rows.Close()

	result := make([]entities.ClientRequirementRow, 0)
	for rows.Next() {
		var row entities.ClientRequirementRow
		if err := rows.Scan(&row.RequirementID, &row.StartDate, &row.StartTime, &row.Duration, &row.Comments); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromStore(err)
	}
	return result, nil
}

func (r *serviceRequirementRepository) FindByEmployee(ctx context.Context, tx *sql.Tx, staffNumber int64) ([]entities.EmployeeAssignmentRow, error) {
	query, args, err := r.psql.
		Select("sr.requirementId", "sr.startDate", "sr.startTime", "sr.duration", "c.firstName", "c.lastName").
		From(entities.TableServiceRequirement + " sr").
		Join(entities.TableAssignment + " a ON sr.requirementId = a.requirementId").
		Join(entities.TableClient + " c ON sr.clientNumber = c.clientNumber").
		Where(sq.Eq{"a.staffNumber": staffNumber}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByEmployee: %w", err)
	}

	rows, err := r.getQuerier(tx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения FindByEmployee: %w", apperrors.FromStore(err))
	}
	defer rows.Close()

	result := make([]entities.EmployeeAssignmentRow, 0)
	for rows.Next() {
		var row entities.EmployeeAssignmentRow
		if err := rows.Scan(&row.RequirementID, &row.StartDate, &row.StartTime, &row.Duration, &row.FirstName, &row.LastName); err != nil {
			return nil, fmt.Errorf("ошибка сканирования строки: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.FromStore(err)
	}
	return result, nil
}

func (r *serviceRequirementRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableServiceRequirement)
}

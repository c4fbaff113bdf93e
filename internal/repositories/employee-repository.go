package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
)

const employeeFields = "staffNumber, firstName, lastName, street, city, postCode, salary, telephoneNumber"

type EmployeeRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, e entities.Employee) error
	FindByNumber(ctx context.Context, tx *sql.Tx, staffNumber int64) (*entities.Employee, error)
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type employeeRepository struct {
	baseRepository
}

func NewEmployeeRepository(store *database.Store) EmployeeRepositoryInterface {
	return &employeeRepository{baseRepository: newBase(store)}
}

func (r *employeeRepository) Create(ctx context.Context, tx *sql.Tx, e entities.Employee) error {
	builder := r.psql.Insert(entities.TableEmployee).
		Columns("staffNumber", "firstName", "lastName", "street", "city", "postCode", "salary", "telephoneNumber").
		Values(e.StaffNumber, e.FirstName, e.LastName, e.Street, e.City, e.PostCode, e.Salary, e.TelephoneNumber)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка вставки сотрудника %d", e.StaffNumber))
}

func (r *employeeRepository) FindByNumber(ctx context.Context, tx *sql.Tx, staffNumber int64) (*entities.Employee, error) {
	query, args, err := r.psql.Select(employeeFields).From(entities.TableEmployee).
		Where(sq.Eq{"staffNumber": staffNumber}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("ошибка сборки SQL для FindByNumber: %w", err)
	}

	var e entities.Employee
	err = r.getQuerier(tx).QueryRowContext(ctx, query, args...).Scan(
		&e.StaffNumber, &e.FirstName, &e.LastName, &e.Street, &e.City, &e.PostCode, &e.Salary, &e.TelephoneNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка чтения сотрудника %d: %w", staffNumber, apperrors.FromStore(err))
	}
	return &e, nil
}

func (r *employeeRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableEmployee)
}

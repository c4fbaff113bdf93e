package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
)

type AssignmentRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, a entities.Assignment) error
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type assignmentRepository struct {
	baseRepository
}

func NewAssignmentRepository(store *database.Store) AssignmentRepositoryInterface {
	return &assignmentRepository{baseRepository: newBase(store)}
}

func (r *assignmentRepository) Create(ctx context.Context, tx *sql.Tx, a entities.Assignment) error {
	builder := r.psql.Insert(entities.TableAssignment).
		Columns("staffNumber", "requirementId").
		Values(a.StaffNumber, a.RequirementID)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка назначения сотрудника %d на заявку %d", a.StaffNumber, a.RequirementID))
}

func (r *assignmentRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableAssignment)
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
)

type RequirementEquipmentRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, re entities.RequirementEquipment) error
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type requirementEquipmentRepository struct {
	baseRepository
}

func NewRequirementEquipmentRepository(store *database.Store) RequirementEquipmentRepositoryInterface {
	return &requirementEquipmentRepository{baseRepository: newBase(store)}
}

func (r *requirementEquipmentRepository) Create(ctx context.Context, tx *sql.Tx, re entities.RequirementEquipment) error {
	builder := r.psql.Insert(entities.TableRequirementEquipment).
		Columns("requirementId", "equipmentId", "quantity").
		Values(re.RequirementID, re.EquipmentID, re.Quantity)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка привязки оборудования %d к заявке %d", re.EquipmentID, re.RequirementID))
}

func (r *requirementEquipmentRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableRequirementEquipment)
}

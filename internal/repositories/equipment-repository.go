package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"supermaids/internal/entities"
	"supermaids/pkg/database"
)

type EquipmentRepositoryInterface interface {
	Create(ctx context.Context, tx *sql.Tx, e entities.Equipment) error
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

type equipmentRepository struct {
	baseRepository
}

func NewEquipmentRepository(store *database.Store) EquipmentRepositoryInterface {
	return &equipmentRepository{baseRepository: newBase(store)}
}

func (r *equipmentRepository) Create(ctx context.Context, tx *sql.Tx, e entities.Equipment) error {
	builder := r.psql.Insert(entities.TableEquipment).
		Columns("equipmentId", "usage", "cost", "description").
		Values(e.EquipmentID, e.Usage, e.Cost, e.Description)
	return r.exec(ctx, tx, builder, fmt.Sprintf("ошибка вставки оборудования %d", e.EquipmentID))
}

func (r *equipmentRepository) DeleteAll(ctx context.Context, tx *sql.Tx) error {
	return r.deleteAll(ctx, tx, entities.TableEquipment)
}

package seeders

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"supermaids/internal/entities"
	"supermaids/internal/repositories"
	"supermaids/pkg/validation"
)

type tableCleaner interface {
	DeleteAll(ctx context.Context, tx *sql.Tx) error
}

// Seeder очищает шесть таблиц и наполняет их заново.
type Seeder struct {
	db        *sql.DB
	repos     *repositories.Repositories
	validator *validation.Validator
	logger    *zap.Logger
}

func NewSeeder(db *sql.DB, repos *repositories.Repositories, v *validation.Validator, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, repos: repos, validator: v, logger: logger}
}

// Seed удаляет все строки (дети раньше родителей) и вставляет data.
// Всё выполняется в одной транзакции: при любой ошибке база остаётся как была.
func (s *Seeder) Seed(ctx context.Context, data Dataset) error {
	s.logger.Info("▶️  Запуск наполнения базы демонстрационными данными...")

	if err := s.validate(data); err != nil {
		s.logger.Error("❌ Данные для наполнения не прошли валидацию", zap.Error(err))
		return err
	}

	err := repositories.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.clear(ctx, tx); err != nil {
			return err
		}
		return s.insert(ctx, tx, data)
	})
	if err != nil {
		s.logger.Error("❌ Ошибка наполнения базы, транзакция откачена", zap.Error(err))
		return err
	}

	s.logger.Info("✅ Наполнение базы завершено",
		zap.Int("clients", len(data.Clients)),
		zap.Int("employees", len(data.Employees)),
		zap.Int("requirements", len(data.Requirements)),
		zap.Int("equipment", len(data.Equipment)),
		zap.Int("assignments", len(data.Assignments)),
		zap.Int("requirement_equipment", len(data.RequirementEquipment)),
	)
	return nil
}

func (s *Seeder) clear(ctx context.Context, tx *sql.Tx) error {
	cleaners := map[string]tableCleaner{
		entities.TableRequirementEquipment: s.repos.RequirementEquipment,
		entities.TableAssignment:           s.repos.Assignments,
		entities.TableEquipment:            s.repos.Equipment,
		entities.TableServiceRequirement:   s.repos.Requirements,
		entities.TableEmployee:             s.repos.Employees,
		entities.TableClient:               s.repos.Clients,
	}
	for _, table := range entities.DeleteOrder {
		if err := cleaners[table].DeleteAll(ctx, tx); err != nil {
			return err
		}
		s.logger.Debug("  - Таблица очищена", zap.String("table", table))
	}
	return nil
}

func (s *Seeder) insert(ctx context.Context, tx *sql.Tx, data Dataset) error {
	s.logger.Debug("  - Наполнение таблицы 'Client'...")
	for _, c := range data.Clients {
		if err := s.repos.Clients.Create(ctx, tx, c); err != nil {
			return err
		}
	}
	s.logger.Debug("  - Наполнение таблицы 'Employee'...")
	for _, e := range data.Employees {
		if err := s.repos.Employees.Create(ctx, tx, e); err != nil {
			return err
		}
	}
	s.logger.Debug("  - Наполнение таблицы 'Service_Requirement'...")
	for _, sr := range data.Requirements {
		if err := s.repos.Requirements.Create(ctx, tx, sr); err != nil {
			return err
		}
	}
	s.logger.Debug("  - Наполнение таблицы 'Equipment'...")
	for _, e := range data.Equipment {
		if err := s.repos.Equipment.Create(ctx, tx, e); err != nil {
			return err
		}
	}
	s.logger.Debug("  - Наполнение таблицы 'Assignment'...")
	for _, a := range data.Assignments {
		if err := s.repos.Assignments.Create(ctx, tx, a); err != nil {
			return err
		}
	}
	s.logger.Debug("  - Наполнение таблицы 'Requirement_Equipment'...")
	for _, re := range data.RequirementEquipment {
		if err := s.repos.RequirementEquipment.Create(ctx, tx, re); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) validate(data Dataset) error {
	for _, c := range data.Clients {
		if err := s.validator.Struct(fmt.Sprintf("клиент %d", c.ClientNumber), c); err != nil {
			return err
		}
	}
	for _, e := range data.Employees {
		if err := s.validator.Struct(fmt.Sprintf("сотрудник %d", e.StaffNumber), e); err != nil {
			return err
		}
	}
	for _, sr := range data.Requirements {
		if err := s.validator.Struct(fmt.Sprintf("заявка %d", sr.RequirementID), sr); err != nil {
			return err
		}
	}
	for _, e := range data.Equipment {
		if err := s.validator.Struct(fmt.Sprintf("оборудование %d", e.EquipmentID), e); err != nil {
			return err
		}
	}
	for _, a := range data.Assignments {
		if err := s.validator.Struct(fmt.Sprintf("назначение %d/%d", a.StaffNumber, a.RequirementID), a); err != nil {
			return err
		}
	}
	for _, re := range data.RequirementEquipment {
		if err := s.validator.Struct(fmt.Sprintf("оборудование заявки %d/%d", re.RequirementID, re.EquipmentID), re); err != nil {
			return err
		}
	}
	return nil
}

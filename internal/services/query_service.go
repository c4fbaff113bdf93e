package services

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"supermaids/internal/entities"
	"supermaids/internal/repositories"
	"supermaids/pkg/validation"
)

type QueryServiceInterface interface {
	AddClient(ctx context.Context, tx *sql.Tx, c entities.Client) error
	AddServiceRequirement(ctx context.Context, tx *sql.Tx, sr entities.ServiceRequirement) error
	AssignEmployee(ctx context.Context, tx *sql.Tx, a entities.Assignment) error
	RequirementsForClient(ctx context.Context, clientNumber int64) ([]entities.ClientRequirementRow, error)
	RequirementsForEmployee(ctx context.Context, staffNumber int64) ([]entities.EmployeeAssignmentRow, error)
}

type QueryService struct {
	repos     *repositories.Repositories
	validator *validation.Validator
	logger    *zap.Logger
}

func NewQueryService(repos *repositories.Repositories, v *validation.Validator, logger *zap.Logger) *QueryService {
	return &QueryService{repos: repos, validator: v, logger: logger}
}

func (s *QueryService) AddClient(ctx context.Context, tx *sql.Tx, c entities.Client) error {
	if err := s.validator.Struct("клиент", c); err != nil {
		return err
	}
	if err := s.repos.Clients.Create(ctx, tx, c); err != nil {
		s.logger.Error("Не удалось добавить клиента", zap.Int64("clientNumber", c.ClientNumber), zap.Error(err))
		return err
	}
	s.logger.Info("Клиент добавлен", zap.Int64("clientNumber", c.ClientNumber), zap.String("name", c.FullName()))
	return nil
}

func (s *QueryService) AddServiceRequirement(ctx context.Context, tx *sql.Tx, sr entities.ServiceRequirement) error {
	if err := s.validator.Struct("заявка", sr); err != nil {
		return err
	}
	if err := s.repos.Requirements.Create(ctx, tx, sr); err != nil {
		s.logger.Error("Не удалось добавить заявку",
			zap.Int64("requirementId", sr.RequirementID),
			zap.Int64("clientNumber", sr.ClientNumber),
			zap.Error(err))
		return err
	}
	s.logger.Info("Заявка добавлена", zap.Int64("requirementId", sr.RequirementID), zap.Int64("clientNumber", sr.ClientNumber))
	return nil
}

func (s *QueryService) AssignEmployee(ctx context.Context, tx *sql.Tx, a entities.Assignment) error {
	if err := s.validator.Struct("назначение", a); err != nil {
		return err
	}
	if err := s.repos.Assignments.Create(ctx, tx, a); err != nil {
		s.logger.Error("Не удалось назначить сотрудника",
			zap.Int64("staffNumber", a.StaffNumber),
			zap.Int64("requirementId", a.RequirementID),
			zap.Error(err))
		return err
	}
	s.logger.Info("Сотрудник назначен", zap.Int64("staffNumber", a.StaffNumber), zap.Int64("requirementId", a.RequirementID))
	return nil
}

func (s *QueryService) RequirementsForClient(ctx context.Context, clientNumber int64) ([]entities.ClientRequirementRow, error) {
	rows, err := s.repos.Requirements.FindByClient(ctx, nil, clientNumber)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Заявки клиента получены", zap.Int64("clientNumber", clientNumber), zap.Int("rows", len(rows)))
	return rows, nil
}

func (s *QueryService) RequirementsForEmployee(ctx context.Context, staffNumber int64) ([]entities.EmployeeAssignmentRow, error) {
	rows, err := s.repos.Requirements.FindByEmployee(ctx, nil, staffNumber)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Заявки сотрудника получены", zap.Int64("staffNumber", staffNumber), zap.Int("rows", len(rows)))
	return rows, nil
}

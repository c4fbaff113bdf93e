package services

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"supermaids/internal/entities"
	"supermaids/internal/repositories"
	apperrors "supermaids/pkg/errors"
	"supermaids/pkg/tablefmt"
)

type ReportServiceInterface interface {
	Snapshots(ctx context.Context) ([]*entities.TableSnapshot, error)
	ExportXLSX(snapshots []*entities.TableSnapshot, path string) error
}

type ReportService struct {
	tables repositories.TableRepositoryInterface
	logger *zap.Logger
}

func NewReportService(tables repositories.TableRepositoryInterface, logger *zap.Logger) *ReportService {
	return &ReportService{tables: tables, logger: logger}
}

// Snapshots читает все шесть таблиц в порядке entities.Tables.
func (s *ReportService) Snapshots(ctx context.Context) ([]*entities.TableSnapshot, error) {
	result := make([]*entities.TableSnapshot, 0, len(entities.Tables))
	for _, table := range entities.Tables {
		snap, err := s.tables.Snapshot(ctx, nil, table)
		if err != nil {
			return nil, err
		}
		s.logger.Debug("Таблица прочитана", zap.String("table", table), zap.Int("rows", len(snap.Rows)))
		result = append(result, snap)
	}
	return result, nil
}

// ExportXLSX сохраняет снимки в книгу Excel: один лист на таблицу, первая строка - заголовки.
func (s *ReportService) ExportXLSX(snapshots []*entities.TableSnapshot, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: ошибка создания стиля: %w", apperrors.ErrIO, err)
	}

	for i, snap := range snapshots {
		sheet := snap.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("%w: лист %s: %w", apperrors.ErrIO, sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("%w: лист %s: %w", apperrors.ErrIO, sheet, err)
		}

		header := make([]interface{}, len(snap.Columns))
		for j, c := range snap.Columns {
			header[j] = c
		}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return fmt.Errorf("%w: заголовок %s: %w", apperrors.ErrIO, sheet, err)
		}
		if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
			return fmt.Errorf("%w: стиль %s: %w", apperrors.ErrIO, sheet, err)
		}

		for r, row := range snap.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("%w: %w", apperrors.ErrIO, err)
			}
			values := excelValues(row)
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return fmt.Errorf("%w: строка %d листа %s: %w", apperrors.ErrIO, r+2, sheet, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: не удалось сохранить %s: %w", apperrors.ErrIO, path, err)
	}
	s.logger.Info("Выгрузка в Excel сохранена", zap.String("path", path), zap.Int("sheets", len(snapshots)))
	return nil
}

func excelValues(row []interface{}) []interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		switch val := v.(type) {
		case nil:
			values[i] = ""
		case []byte:
			values[i] = string(val)
		default:
			values[i] = val
		}
	}
	return values
}

// SnapshotTable переводит снимок в текстовую таблицу для вывода.
func SnapshotTable(snap *entities.TableSnapshot) *tablefmt.Table {
	tbl := tablefmt.New(snap.Columns...)
	for _, row := range snap.Rows {
		tbl.AddRow(row...)
	}
	return tbl
}

// ClientRequirementsTable - результат запроса заявок клиента.
func ClientRequirementsTable(rows []entities.ClientRequirementRow) *tablefmt.Table {
	tbl := tablefmt.New("requirementId", "startDate", "startTime", "duration", "comments")
	for _, r := range rows {
		tbl.AddRow(r.RequirementID, r.StartDate, r.StartTime, r.Duration, r.Comments)
	}
	return tbl
}

// EmployeeAssignmentsTable - результат запроса заявок сотрудника.
func EmployeeAssignmentsTable(rows []entities.EmployeeAssignmentRow) *tablefmt.Table {
	tbl := tablefmt.New("requirementId", "startDate", "startTime", "duration", "firstName", "lastName")
	for _, r := range rows {
		tbl.AddRow(r.RequirementID, r.StartDate, r.StartTime, r.Duration, r.FirstName, r.LastName)
	}
	return tbl
}

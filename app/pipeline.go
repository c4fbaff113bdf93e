package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"supermaids/internal/migrations"
	"supermaids/internal/repositories"
	"supermaids/internal/services"
	"supermaids/pkg/config"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
	"supermaids/pkg/tablefmt"
	"supermaids/pkg/validation"
	"supermaids/seeders"
)

var banner = strings.Repeat("=", 60)

// execute - схема, наполнение, пять запросов, вывод всех таблиц. Строго по порядку, одно соединение.
func execute(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *zap.Logger) error {
	out := &printer{w: stdout}
	out.println("SUPERMAIDS CLEANING COMPANY - DATABASE IMPLEMENTATION")
	out.println(banner)

	store, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("✅ Подключено к хранилищу", zap.String("dialect", string(store.Dialect)))

	if err := migrations.Apply(ctx, store, logger); err != nil {
		return err
	}

	repos := repositories.New(store)
	v := validation.New()

	if err := seeders.NewSeeder(store.DB, repos, v, logger).Seed(ctx, seeders.DefaultDataset()); err != nil {
		return err
	}
	out.println("Sample data inserted")

	queries := services.NewQueryService(repos, v, logger)
	if err := runQueries(ctx, out, repos, queries, services.DefaultScenario()); err != nil {
		return err
	}

	reports := services.NewReportService(repos.Tables, logger)
	snapshots, err := reports.Snapshots(ctx)
	if err != nil {
		return err
	}
	out.println("\n" + banner)
	out.println("All Table Contents")
	out.println(banner)
	for _, snap := range snapshots {
		out.printf("\n%s:\n", snap.Name)
		out.table(services.SnapshotTable(snap))
	}

	if cfg.Report.XLSXPath != "" {
		if err := reports.ExportXLSX(snapshots, cfg.Report.XLSXPath); err != nil {
			return err
		}
	}

	if err := store.Close(); err != nil {
		return fmt.Errorf("%w: ошибка закрытия хранилища: %w", apperrors.ErrIO, err)
	}

	out.println("\n" + banner)
	out.println("PROJECT PART 3 COMPLETED SUCCESSFULLY!")
	out.println(banner)

	if out.err != nil {
		return fmt.Errorf("%w: ошибка вывода отчёта: %w", apperrors.ErrIO, out.err)
	}
	return nil
}

func runQueries(ctx context.Context, out *printer, repos *repositories.Repositories, queries services.QueryServiceInterface, sc services.Scenario) error {
	err := repos.Tx.RunInTransaction(ctx, func(tx *sql.Tx) error {
		out.println("\n1. Add a new client to the system")
		if err := queries.AddClient(ctx, tx, sc.NewClient); err != nil {
			return err
		}
		out.printf("   Added client %d: %s\n", sc.NewClient.ClientNumber, sc.NewClient.FullName())

		out.println("\n2. Record a new service requirement for a specific client")
		if err := queries.AddServiceRequirement(ctx, tx, sc.NewRequirement); err != nil {
			return err
		}
		out.printf("   Added service requirement %d for client %d\n", sc.NewRequirement.RequirementID, sc.NewRequirement.ClientNumber)

		out.println("\n3. Insert a new assignment linking employee to service requirement")
		if err := queries.AssignEmployee(ctx, tx, sc.NewAssignment); err != nil {
			return err
		}
		out.printf("   Assigned employee %d to requirement %d\n", sc.NewAssignment.StaffNumber, sc.NewAssignment.RequirementID)
		return nil
	})
	if err != nil {
		return err
	}

	out.printf("\n4. Retrieve service requirements for client %d\n", sc.LookupClient)
	byClient, err := queries.RequirementsForClient(ctx, sc.LookupClient)
	if err != nil {
		return err
	}
	out.table(services.ClientRequirementsTable(byClient))

	out.printf("\n5. Retrieve all service requirements assigned to employee %d\n", sc.LookupEmployee)
	byEmployee, err := queries.RequirementsForEmployee(ctx, sc.LookupEmployee)
	if err != nil {
		return err
	}
	out.table(services.EmployeeAssignmentsTable(byEmployee))
	return nil
}

// printer запоминает первую ошибку записи, дальше молчит.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) table(t *tablefmt.Table) {
	if p.err != nil {
		return
	}
	_, p.err = t.WriteTo(p.w)
}

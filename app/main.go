package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"supermaids/pkg/config"
	apperrors "supermaids/pkg/errors"
	applogger "supermaids/pkg/logger"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

// run выполняет весь конвейер и возвращает код выхода процесса.
// Отчёт пишется в stdout, логи и диагностика - в stderr.
func run(ctx context.Context, stdout, stderr io.Writer) int {
	cfg, err := config.New()
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "supermaids: %v\n", apperrors.Setup("%w", err))
		return apperrors.ExitSetup
	}

	logger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "supermaids: %v\n", apperrors.Setup("%w", err))
		return apperrors.ExitSetup
	}
	logger = logger.With(zap.String("run_id", uuid.New().String()))
	defer func() { _ = logger.Sync() }()

	if err := execute(ctx, cfg, stdout, logger); err != nil {
		logger.Error("❌ Запуск завершился ошибкой", zap.Error(err), zap.Int("exit_code", apperrors.ExitCode(err)))
		_, _ = fmt.Fprintf(stderr, "supermaids: %v\n", err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitOK
}

package usecase

import (
	"context"
	"fmt"
	"time"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
)

// DailyReportUseCase consulta el reporte diario de ventas al backend.
type DailyReportUseCase struct {
	reports port.ReportFetcher
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso.
func NewDailyReportUseCase(reports port.ReportFetcher) *DailyReportUseCase {
	return &DailyReportUseCase{reports: reports}
}

// Execute valida el formato de fecha (YYYY-MM-DD) y consulta el reporte.
// Fecha vacía significa hoy.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*entity.DailyReport, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	report, err := uc.reports.DailyReport(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("error fetching daily report for %s: %w", date, err)
	}
	return report, nil
}

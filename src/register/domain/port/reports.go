package port

import (
	"context"

	"register/src/register/domain/entity"
)

// ReportFetcher define el contrato para obtener reportes del backend.
// La agregación vive del lado del servidor; el terminal solo consulta.
type ReportFetcher interface {
	// DailyReport retorna el reporte de ventas del día indicado (YYYY-MM-DD).
	DailyReport(ctx context.Context, date string) (*entity.DailyReport, error)
}

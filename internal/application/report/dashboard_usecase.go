// Package report contiene los casos de uso read-only sobre el ledger:
// el dashboard de inventario y el listado de stock bajo umbral.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const recentMovesLimit = 5 // movimientos en el widget de actividad reciente

// Config parámetros del reporte.
type Config struct {
	LowStockThreshold int // umbral de stock bajo (default 10)
	ReportYear        int // año de la serie mensual; 0 = año en curso
}

// DashboardUseCase arma las estadísticas del dashboard de inventario.
// Nunca muta el ledger; todas las consultas delegan en ReportRepository
// y StockMoveRepository.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
	moveRepo   repository.StockMoveRepository
	cfg        Config
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	reportRepo repository.ReportRepository,
	moveRepo repository.StockMoveRepository,
	cfg Config,
) *DashboardUseCase {
	if cfg.LowStockThreshold <= 0 {
		cfg.LowStockThreshold = 10
	}
	return &DashboardUseCase{reportRepo: reportRepo, moveRepo: moveRepo, cfg: cfg}
}

// GetStats construye el DashboardStatsDTO.
//
// Tres grupos de consultas en paralelo:
//  1. contadores (valoración, stock bajo, pendientes, atrasados, en espera)
//  2. actividad reciente (últimos 5 movimientos)
//  3. serie mensual de entradas/salidas del año de reporte
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	year := uc.cfg.ReportYear
	if year == 0 {
		year = now.Year()
	}
	threshold := decimal.NewFromInt(int64(uc.cfg.LowStockThreshold))

	type countsResult struct {
		stats dto.DashboardStatsDTO
		err   error
	}
	type recentResult struct {
		moves []repository.MoveSummary
		err   error
	}
	type chartResult struct {
		flows []repository.MonthlyFlow
		err   error
	}

	countsCh := make(chan countsResult, 1)
	recentCh := make(chan recentResult, 1)
	chartCh := make(chan chartResult, 1)

	go func() {
		stats, err := uc.counters(ctx, threshold, todayStart)
		countsCh <- countsResult{stats, err}
	}()
	go func() {
		moves, err := uc.reportRepo.RecentMoves(ctx, recentMovesLimit)
		recentCh <- recentResult{moves, err}
	}()
	go func() {
		flows, err := uc.moveRepo.AggregateByMonth(year)
		chartCh <- chartResult{flows, err}
	}()

	counts := <-countsCh
	recent := <-recentCh
	chart := <-chartCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", recent.err)
	}
	if chart.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", chart.err)
	}

	stats := counts.stats
	stats.RecentActivity = toRecentDTOs(recent.moves)
	stats.ChartData = toChartDTOs(chart.flows)
	return &stats, nil
}

// counters ejecuta las consultas de contadores de forma secuencial: comparten
// conexión del pool y ninguna es costosa.
func (uc *DashboardUseCase) counters(
	ctx context.Context,
	threshold decimal.Decimal,
	todayStart time.Time,
) (dto.DashboardStatsDTO, error) {
	var stats dto.DashboardStatsDTO
	var err error

	if stats.TotalStockValue, err = uc.reportRepo.TotalStockValue(ctx); err != nil {
		return stats, err
	}
	if stats.LowStockCount, err = uc.reportRepo.LowStockCount(ctx, threshold); err != nil {
		return stats, err
	}
	if stats.TotalProducts, err = uc.reportRepo.CountProducts(ctx); err != nil {
		return stats, err
	}
	if stats.PendingReceipts, err = uc.reportRepo.CountPendingDocuments(ctx, entity.DocumentKindReceipt); err != nil {
		return stats, err
	}
	if stats.PendingDeliveries, err = uc.reportRepo.CountPendingDocuments(ctx, entity.DocumentKindDelivery); err != nil {
		return stats, err
	}

	lateReceipts, err := uc.reportRepo.CountLateDocuments(ctx, entity.DocumentKindReceipt, todayStart)
	if err != nil {
		return stats, err
	}
	lateDeliveries, err := uc.reportRepo.CountLateDocuments(ctx, entity.DocumentKindDelivery, todayStart)
	if err != nil {
		return stats, err
	}
	stats.LateOps = lateReceipts + lateDeliveries

	waitingReceipts, err := uc.reportRepo.CountDocumentsByStatus(ctx, entity.DocumentKindReceipt, entity.StatusWaiting)
	if err != nil {
		return stats, err
	}
	waitingDeliveries, err := uc.reportRepo.CountDocumentsByStatus(ctx, entity.DocumentKindDelivery, entity.StatusWaiting)
	if err != nil {
		return stats, err
	}
	stats.WaitingOps = waitingReceipts + waitingDeliveries

	return stats, nil
}

var monthNames = [...]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// toChartDTOs completa la serie con los 12 meses; los meses sin movimientos
// quedan en cero.
func toChartDTOs(flows []repository.MonthlyFlow) []dto.MonthlyFlowDTO {
	byMonth := make(map[int]repository.MonthlyFlow, len(flows))
	for _, f := range flows {
		byMonth[f.Month] = f
	}
	chart := make([]dto.MonthlyFlowDTO, 0, 12)
	for m := 1; m <= 12; m++ {
		point := dto.MonthlyFlowDTO{Name: monthNames[m-1], In: decimal.Zero, Out: decimal.Zero}
		if f, ok := byMonth[m]; ok {
			point.In = f.Inbound
			point.Out = f.Outbound
		}
		chart = append(chart, point)
	}
	return chart
}

func toRecentDTOs(moves []repository.MoveSummary) []dto.RecentMoveDTO {
	out := make([]dto.RecentMoveDTO, 0, len(moves))
	for _, m := range moves {
		out = append(out, dto.RecentMoveDTO{
			ID:           m.ID,
			ProductName:  m.ProductName,
			SKU:          m.SKU,
			Type:         m.Type,
			Quantity:     m.Quantity,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			Reference:    m.Reference,
			Date:         m.Date,
		})
	}
	return out
}

package reports

import (
	"context"
	"time"

	"github.com/jhoicas/mayorista-api/internal/application/dto"
	"github.com/jhoicas/mayorista-api/internal/domain"
	"github.com/jhoicas/mayorista-api/internal/domain/repository"
)

const (
	// Tope de días en un rango de reporte.
	maxRangeDays = 92
	// Formato estricto de fechas en query params.
	dateLayout = "2006-01-02"

	lowStockLimit = 8

	topLimitDefault = 8
	topLimitMax     = 50

	historyLimitDefault = 20
	historyLimitMax     = 100
)

// ReportUseCase consultas de solo lectura para el dashboard del cliente.
// Nunca muta catálogo, recepciones, ventas ni movimientos.
type ReportUseCase struct {
	repo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

// Summary resumen del día en curso (corte a medianoche local) más la
// valoración del stock y los productos bajo mínimo.
func (uc *ReportUseCase) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)

	totals, err := uc.repo.PeriodTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	stockValue, err := uc.repo.StockValue(ctx)
	if err != nil {
		return nil, err
	}
	low, err := uc.repo.LowStock(ctx, lowStockLimit)
	if err != nil {
		return nil, err
	}

	resp := dto.SummaryResponse{
		Today: dto.TodaySummary{
			ReceiptCount: totals.ReceiptCount,
			ReceiptTotal: totals.ReceiptTotal,
			SaleCount:    totals.SaleCount,
			SaleTotal:    totals.SaleTotal,
		},
		Stock: dto.StockSummary{
			StockValue: stockValue,
			LowStock:   []dto.LowStockProduct{},
		},
	}
	for _, p := range low {
		resp.Stock.LowStock = append(resp.Stock.LowStock, dto.LowStockProduct{
			ID:        p.ID,
			Name:      p.Name,
			StockQty:  p.StockQty,
			MinQty:    p.MinQty,
			CostPrice: p.CostPrice,
		})
	}
	return &resp, nil
}

// SummaryRange agregados de un rango de fechas más la serie diaria completa.
// Las fechas son estrictamente YYYY-MM-DD, from <= to, y el rango no puede
// superar maxRangeDays días inclusive.
func (uc *ReportUseCase) SummaryRange(ctx context.Context, fromStr, toStr string) (*dto.RangeSummaryResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	// [from, to+1d) cubre el día "to" completo
	end := to.AddDate(0, 0, 1)

	totals, err := uc.repo.PeriodTotals(ctx, from, end)
	if err != nil {
		return nil, err
	}
	daily, err := uc.repo.DailyTotals(ctx, from, end)
	if err != nil {
		return nil, err
	}

	byDay := map[string]repository.DayTotals{}
	for _, d := range daily {
		byDay[d.Day.Format(dateLayout)] = d
	}

	resp := dto.RangeSummaryResponse{
		From: from.Format(dateLayout),
		To:   to.Format(dateLayout),
		Totals: dto.RangeTotals{
			ReceiptsTotal: totals.ReceiptTotal,
			ReceiptsCount: totals.ReceiptCount,
			SalesTotal:    totals.SaleTotal,
			SalesCount:    totals.SaleCount,
		},
		Days: []dto.DayPoint{},
	}
	// Serie diaria rellenada con ceros: un punto por cada día del rango
	for day := from; day.Before(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		point := dto.DayPoint{Date: key}
		if d, ok := byDay[key]; ok {
			point.ReceiptsTotal = d.ReceiptsTotal
			point.SalesTotal = d.SalesTotal
		}
		resp.Days = append(resp.Days, point)
	}
	return &resp, nil
}

// TopProducts productos más vendidos del rango, por cantidad descendente con
// desempate por ingresos. limit se ajusta a [1, 50] con 8 por defecto.
func (uc *ReportUseCase) TopProducts(ctx context.Context, fromStr, toStr string, limit int) (*dto.TopProductsResponse, error) {
	from, to, err := parseRange(fromStr, toStr)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = topLimitDefault
	}
	if limit > topLimitMax {
		limit = topLimitMax
	}

	results, err := uc.repo.TopProducts(ctx, from, to.AddDate(0, 0, 1), limit)
	if err != nil {
		return nil, err
	}
	resp := dto.TopProductsResponse{
		From:  from.Format(dateLayout),
		To:    to.Format(dateLayout),
		Items: []dto.TopProductItem{},
	}
	for _, r := range results {
		resp.Items = append(resp.Items, dto.TopProductItem{
			ProductID: r.ProductID,
			Name:      r.Name,
			Unit:      r.Unit,
			Qty:       r.Qty,
			Revenue:   r.Revenue,
		})
	}
	return &resp, nil
}

// History feed cronológico inverso mezclando recepciones y ventas.
// limit se ajusta a [1, 100] con 20 por defecto.
func (uc *ReportUseCase) History(ctx context.Context, limit int) (*dto.HistoryResponse, error) {
	if limit <= 0 {
		limit = historyLimitDefault
	}
	if limit > historyLimitMax {
		limit = historyLimitMax
	}
	entries, err := uc.repo.History(ctx, limit)
	if err != nil {
		return nil, err
	}
	resp := dto.HistoryResponse{Items: []dto.HistoryItem{}}
	for _, e := range entries {
		resp.Items = append(resp.Items, dto.HistoryItem{
			Kind:      e.Kind,
			ID:        e.ID,
			Total:     e.Total,
			ItemCount: e.ItemCount,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}
	return &resp, nil
}

// parseRange valida fechas estrictas YYYY-MM-DD, orden y tope del rango.
func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := time.ParseInLocation(dateLayout, fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	to, err := time.ParseInLocation(dateLayout, toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	// Días inclusive: 2024-01-01 a 2024-04-01 son 92 días
	days := int(to.Sub(from).Hours()/24) + 1
	if days > maxRangeDays {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/domain/entity"
)

// Summarize calcula las tarjetas del dashboard sobre las ventas dadas.
// Los totales son sumas exactas sin redondear; solo AverageTicket se redondea
// a 2 decimales (half-up). Sin ventas, AverageTicket es 0.
func Summarize(sales []*entity.Sale) dto.CardSummaryDTO {
	out := dto.CardSummaryDTO{
		TotalValue:          decimal.Zero,
		TotalCompletedValue: decimal.Zero,
		AverageTicket:       decimal.Zero,
	}
	for _, s := range sales {
		out.TotalValue = out.TotalValue.Add(s.Total)
		out.Count++
		switch s.Status {
		case entity.SaleStatusCompleted:
			out.CompletedCount++
			out.TotalCompletedValue = out.TotalCompletedValue.Add(s.Total)
		case entity.SaleStatusPending:
			out.PendingCount++
		case entity.SaleStatusCancelled:
			out.CancelledCount++
		}
	}
	if out.Count > 0 {
		// DivRound redondea half away from zero; con montos positivos es half-up.
		out.AverageTicket = out.TotalValue.DivRound(decimal.NewFromInt(out.Count), 2)
	}
	return out
}

// GroupByType una entrada por tipo presente, ordenadas por nombre de tipo.
// Cada tipo vuelve a recorrer todas las ventas (O(tipos × ventas)); a la escala
// de un usuario es suficiente y mantiene cada suma independiente.
func GroupByType(sales []*entity.Sale) []dto.SalesByTypeDTO {
	types := make([]string, 0)
	for _, s := range sales {
		if !slices.Contains(types, s.Type) {
			types = append(types, s.Type)
		}
	}
	slices.Sort(types)

	out := make([]dto.SalesByTypeDTO, 0, len(types))
	for _, t := range types {
		entry := dto.SalesByTypeDTO{Type: t, TotalValue: decimal.Zero}
		for _, s := range sales {
			if s.Type == t {
				entry.TotalValue = entry.TotalValue.Add(s.Total)
				entry.Count++
			}
		}
		out = append(out, entry)
	}
	return out
}

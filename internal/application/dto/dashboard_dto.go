package dto

import "github.com/shopspring/decimal"

// CardSummaryDTO respuesta de GET /api/dashboard/cards.
type CardSummaryDTO struct {
	TotalValue          decimal.Decimal `json:"total_value"`           // suma sin redondear
	TotalCompletedValue decimal.Decimal `json:"total_completed_value"` // solo Completed
	Count               int64           `json:"count"`
	CompletedCount      int64           `json:"completed_count"`
	PendingCount        int64           `json:"pending_count"`
	CancelledCount      int64           `json:"cancelled_count"`
	AverageTicket       decimal.Decimal `json:"average_ticket"` // 2 decimales, half-up
}

// SalesByTypeDTO total y cantidad de ventas de un tipo.
type SalesByTypeDTO struct {
	Type       string          `json:"type"`
	TotalValue decimal.Decimal `json:"total_value"`
	Count      int64           `json:"count"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStockPeriodRequest congela el stock de una ubicación a una fecha (YYYY-MM-DD).
type CreateStockPeriodRequest struct {
	LocationID string `json:"location_id"`
	Date       string `json:"date"`
}

// StockPeriodLineResponse cantidad de un producto en el periodo.
type StockPeriodLineResponse struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// StockPeriodResponse periodo con sus líneas.
type StockPeriodResponse struct {
	ID         string                    `json:"id"`
	LocationID string                    `json:"location_id"`
	Date       string                    `json:"date"`
	CreatedAt  time.Time                 `json:"created_at"`
	Lines      []StockPeriodLineResponse `json:"lines"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPeriod congela la cantidad de cada producto en una ubicación a una fecha.
type StockPeriod struct {
	ID         string
	CompanyID  string
	LocationID string
	Date       time.Time
	Lines      []StockQuantPeriod
	CreatedAt  time.Time
}

// StockQuantPeriod línea de un StockPeriod (una por producto).
type StockQuantPeriod struct {
	ID            string
	StockPeriodID string
	ProductID     string
	Quantity      decimal.Decimal
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quant es una foto de la cantidad disponible de un producto en una ubicación,
// vigente desde InDate. Puede haber varias por producto/ubicación.
type Quant struct {
	ID         string
	ProductID  string
	LocationID string
	Quantity   decimal.Decimal
	InDate     time.Time
}

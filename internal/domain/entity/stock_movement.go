package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un movimiento. Solo "done" cuenta para reportes.
const (
	MoveStateDraft     = "draft"
	MoveStateConfirmed = "confirmed"
	MoveStateDone      = "done"
	MoveStateCancel    = "cancel"
)

// StockMove es una entrada del libro de movimientos: traslada Quantity de
// LocationID (origen) a LocationDestID (destino).
type StockMove struct {
	ID             string
	ProductID      string
	LocationID     string
	LocationDestID string
	Quantity       decimal.Decimal
	State          string
	Date           time.Time
	Reference      string
}

// IsDone indica si el movimiento está en estado terminal.
func (m *StockMove) IsDone() bool {
	return m.State == MoveStateDone
}

// Direcciones de movimiento respecto de un conjunto de ubicaciones.
const (
	MoveDirectionIn  = "in"  // destino dentro, origen fuera
	MoveDirectionOut = "out" // origen dentro, destino fuera
)

package entity

import "time"

// Company representa la organización dueña de bodegas y productos.
// Su nombre encabeza el reporte de movimientos.
type Company struct {
	ID        string
	Name      string
	NIT       string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}

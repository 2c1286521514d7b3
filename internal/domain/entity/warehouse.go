package entity

import "time"

// Warehouse representa una bodega. Sus ubicaciones físicas cuelgan de ViewLocationID.
type Warehouse struct {
	ID             string
	CompanyID      string
	Name           string
	Code           string
	ViewLocationID string // ubicación tipo "view" raíz de la jerarquía de la bodega
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

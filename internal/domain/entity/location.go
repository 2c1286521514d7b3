package entity

// Usos de ubicación. Solo las "internal" guardan stock de la bodega.
const (
	LocationUsageView      = "view"
	LocationUsageInternal  = "internal"
	LocationUsageSupplier  = "supplier"
	LocationUsageCustomer  = "customer"
	LocationUsageInventory = "inventory" // pérdidas / ajustes
	LocationUsageTransit   = "transit"
)

// Location representa un nodo de la jerarquía de ubicaciones.
// ParentID vacío indica una raíz.
type Location struct {
	ID        string
	CompanyID string
	Name      string
	ParentID  string
	Usage     string
}

// IsStorage indica si la ubicación almacena stock físico.
func (l *Location) IsStorage() bool {
	return l.Usage == LocationUsageInternal
}

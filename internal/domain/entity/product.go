package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Cost es el costo estándar vigente; valoriza todo el reporte (no hay costo histórico).
type Product struct {
	ID          string
	CompanyID   string
	SKU         string // código único por empresa
	Name        string
	UnitMeasure string
	Cost        decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName devuelve "[SKU] Nombre", o solo el nombre si no hay SKU.
func (p *Product) DisplayName() string {
	if p.SKU == "" {
		return p.Name
	}
	return "[" + p.SKU + "] " + p.Name
}

package dto

import "time"

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Name           string    `json:"name"`
	Code           string    `json:"code"`
	ViewLocationID string    `json:"view_location_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// WarehouseListResponse lista paginada de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// LocationResponse ubicación de almacenamiento de una bodega.
type LocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Usage    string `json:"usage"`
}

// WarehouseLocationsResponse ubicaciones que entran en el reporte de la bodega.
type WarehouseLocationsResponse struct {
	WarehouseID string             `json:"warehouse_id"`
	Items       []LocationResponse `json:"items"`
}

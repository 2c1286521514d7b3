package entity

import "time"

// Attachment archivo binario almacenado para descarga por referencia.
type Attachment struct {
	ID        string
	CompanyID string
	Name      string
	MimeType  string
	Size      int
	Data      []byte
	CreatedAt time.Time
}

package repository

import (
	"context"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
)

// AttachmentRepository guarda artefactos binarios descargables.
type AttachmentRepository interface {
	Create(ctx context.Context, attachment *entity.Attachment) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Attachment, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

var _ repository.AttachmentRepository = (*AttachmentRepo)(nil)

// AttachmentRepo guarda artefactos binarios (bytea) en attachments.
type AttachmentRepo struct {
	q Querier
}

// NewAttachmentRepository construye el adaptador de adjuntos.
func NewAttachmentRepository(q Querier) *AttachmentRepo {
	return &AttachmentRepo{q: q}
}

// Create persiste el adjunto.
func (r *AttachmentRepo) Create(ctx context.Context, a *entity.Attachment) error {
	query := `
		INSERT INTO attachments (id, company_id, name, mime_type, size, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, a.ID, a.CompanyID, a.Name, a.MimeType, a.Size, a.Data, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert attachment: %w", err)
	}
	return nil
}

// GetByID obtiene el adjunto con su contenido.
func (r *AttachmentRepo) GetByID(ctx context.Context, id string) (*entity.Attachment, error) {
	query := `
		SELECT id, company_id, name, mime_type, size, data, created_at
		FROM attachments WHERE id = $1`
	var a entity.Attachment
	err := r.q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.CompanyID, &a.Name, &a.MimeType, &a.Size, &a.Data, &a.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attachment: %w", err)
	}
	return &a, nil
}

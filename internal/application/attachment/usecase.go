// Package attachment sirve los archivos generados (descarga por referencia).
package attachment

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

// UseCase lectura de adjuntos.
type UseCase struct {
	repo repository.AttachmentRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AttachmentRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get devuelve el adjunto si pertenece a la empresa del llamador.
func (uc *UseCase) Get(ctx context.Context, companyID, id string) (*entity.Attachment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id requerido", domain.ErrInvalidInput)
	}
	att, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener adjunto: %w", err)
	}
	if att == nil {
		return nil, fmt.Errorf("adjunto %s: %w", id, domain.ErrNotFound)
	}
	if att.CompanyID != companyID {
		return nil, fmt.Errorf("adjunto %s: %w", id, domain.ErrForbidden)
	}
	return att, nil
}

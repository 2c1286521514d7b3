package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/domain"
	"github.com/jhoicas/stock-movement-report/internal/domain/entity"
	"github.com/jhoicas/stock-movement-report/internal/domain/repository"
)

// ExportUseCase calcula el reporte, lo renderiza y lo guarda como adjunto.
// Devuelve una URL de descarga por referencia; las filas nunca se almacenan.
type ExportUseCase struct {
	generator     *GenerateUseCase
	attachments   repository.AttachmentRepository
	renderers     map[string]Renderer
	defaultFormat string
}

// NewExportUseCase construye el caso de uso. defaultFormat se usa cuando el request no trae formato.
func NewExportUseCase(
	generator *GenerateUseCase,
	attachments repository.AttachmentRepository,
	defaultFormat string,
	renderers ...Renderer,
) *ExportUseCase {
	m := make(map[string]Renderer, len(renderers))
	for _, r := range renderers {
		m[r.Format()] = r
	}
	if defaultFormat == "" {
		defaultFormat = FormatXLSX
	}
	return &ExportUseCase{
		generator:     generator,
		attachments:   attachments,
		renderers:     m,
		defaultFormat: defaultFormat,
	}
}

// Export genera el archivo en el formato pedido y devuelve la referencia de descarga.
func (uc *ExportUseCase) Export(ctx context.Context, companyID string, in dto.ExportReportRequest) (*dto.ExportReportResponse, error) {
	format := strings.ToLower(strings.TrimSpace(in.Format))
	if format == "" {
		format = uc.defaultFormat
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, in.Format)
	}

	doc, err := uc.generator.build(ctx, companyID, in.WarehouseID, in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	data, err := renderer.Render(ctx, *doc)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	att := &entity.Attachment{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      renderer.FileName(),
		MimeType:  renderer.ContentType(),
		Size:      len(data),
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := uc.attachments.Create(ctx, att); err != nil {
		return nil, fmt.Errorf("guardar adjunto: %w", err)
	}

	uc.generator.log.Info().
		Str("attachment_id", att.ID).
		Str("format", format).
		Int("size", att.Size).
		Msg("reporte exportado")

	return &dto.ExportReportResponse{
		AttachmentID: att.ID,
		FileName:     att.Name,
		MimeType:     att.MimeType,
		Size:         att.Size,
		URL:          DownloadURL(att.ID),
	}, nil
}

// DownloadURL ruta relativa de descarga de un adjunto.
func DownloadURL(attachmentID string) string {
	return "/api/attachments/" + attachmentID + "?download=true"
}

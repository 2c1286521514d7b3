package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-movement-report/internal/application/attachment"
)

// AttachmentHandler descarga archivos generados.
type AttachmentHandler struct {
	uc *attachment.UseCase
}

// NewAttachmentHandler construye el handler.
func NewAttachmentHandler(uc *attachment.UseCase) *AttachmentHandler {
	return &AttachmentHandler{uc: uc}
}

// Download godoc
// @Summary      Descargar adjunto
// @Tags         attachments
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id        path   string  true   "ID del adjunto"
// @Param        download  query  bool    false  "Forzar descarga (Content-Disposition: attachment)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/attachments/{id} [get]
func (h *AttachmentHandler) Download(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	att, err := h.uc.Get(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	disposition := "inline"
	if c.QueryBool("download", false) {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, att.MimeType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename="%s"`, disposition, att.Name))
	return c.Send(att.Data)
}

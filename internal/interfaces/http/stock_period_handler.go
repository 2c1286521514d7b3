package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-movement-report/internal/application/dto"
	"github.com/jhoicas/stock-movement-report/internal/application/inventory"
)

// StockPeriodHandler periodos de stock por ubicación.
type StockPeriodHandler struct {
	uc *inventory.StockPeriodUseCase
}

// NewStockPeriodHandler construye el handler.
func NewStockPeriodHandler(uc *inventory.StockPeriodUseCase) *StockPeriodHandler {
	return &StockPeriodHandler{uc: uc}
}

// Create godoc
// @Summary      Crear periodo de stock
// @Description  Congela la cantidad de cada producto en la ubicación a la fecha indicada.
// @Tags         stock-periods
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockPeriodRequest  true  "Ubicación y fecha"
// @Success      201   {object}  dto.StockPeriodResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-periods [post]
func (h *StockPeriodHandler) Create(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	var in dto.CreateStockPeriodRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePeriod(c.UserContext(), companyID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener periodo de stock
// @Tags         stock-periods
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del periodo"
// @Success      200  {object}  dto.StockPeriodResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-periods/{id} [get]
func (h *StockPeriodHandler) GetByID(c *fiber.Ctx) error {
	companyID, ok := requireCompany(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetPeriod(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

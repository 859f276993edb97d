package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/usecase"
)

// SaleHandler maneja las peticiones HTTP para Sale (protegido).
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Columns godoc
// @Summary      Columnas de la tabla de ventas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.Column
// @Router       /api/sales/columns [get]
func (h *SaleHandler) Columns(c *fiber.Ctx) error {
	return c.JSON(dto.SaleColumns)
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201   {object}  dto.SaleDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), CurrentUser(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas del usuario
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        field  query  string  false  "product, type o status"
// @Param        value  query  string  false  "Valor del filtro"
// @Success      200  {array}  dto.SaleDetailResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CurrentUser(c), c.Query("field"), c.Query("value"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Filter godoc
// @Summary      Buscar ventas por lote de IDs
// @Description  Devuelve solo las ventas del usuario; IDs ajenos o inexistentes se omiten.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        ids  query  string  true  "IDs separados por coma"
// @Success      200  {array}  dto.SaleDetailResponse
// @Router       /api/sales/filter [get]
func (h *SaleHandler) Filter(c *fiber.Ctx) error {
	out, err := h.uc.GetByIDs(c.UserContext(), CurrentUser(c), strings.Split(c.Query("ids"), ","))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Distinct godoc
// @Summary      Valores distintos de un campo
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        field  path  string  true  "type, status o product"
// @Success      200  {array}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales/distinct/{field} [get]
func (h *SaleHandler) Distinct(c *fiber.Ctx) error {
	out, err := h.uc.DistinctValues(c.UserContext(), CurrentUser(c), c.Params("field"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleDetailResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar venta (parcial)
// @Description  Solo se modifican los campos enviados; el total se recalcula.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la venta"
// @Param        body  body  dto.UpdateSaleRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.SaleDetailResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [put]
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), CurrentUser(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar venta
// @Tags         sales
// @Security     Bearer
// @Param        id   path  string  true  "ID de la venta"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

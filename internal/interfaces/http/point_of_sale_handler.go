package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-api/internal/application/dto"
	"github.com/jhoicas/sales-api/internal/application/usecase"
	"github.com/jhoicas/sales-api/internal/domain/repository"
)

// PointOfSaleHandler maneja las peticiones HTTP para puntos de venta (PDV).
type PointOfSaleHandler struct {
	uc *usecase.PointOfSaleUseCase
}

func NewPointOfSaleHandler(uc *usecase.PointOfSaleUseCase) *PointOfSaleHandler {
	return &PointOfSaleHandler{uc: uc}
}

// Columns godoc
// @Summary      Columnas de la tabla de PDVs
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.Column
// @Router       /api/pdv/columns [get]
func (h *PointOfSaleHandler) Columns(c *fiber.Ctx) error {
	return c.JSON(dto.PointOfSaleColumns)
}

// Create godoc
// @Summary      Crear PDV
// @Tags         pdv
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PointOfSaleRequest  true  "Datos del PDV"
// @Success      201   {object}  dto.PointOfSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pdv [post]
func (h *PointOfSaleHandler) Create(c *fiber.Ctx) error {
	var in dto.PointOfSaleRequest
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
// @Summary      Listar PDVs
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PointOfSaleResponse
// @Router       /api/pdv [get]
func (h *PointOfSaleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CurrentUser(c), "", "")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Filter godoc
// @Summary      Filtrar PDVs por campo
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Param        field  path   string  true  "name, address, neighborhood, city, state, type o active"
// @Param        value  query  string  true  "Valor del filtro"
// @Success      200  {array}  dto.PointOfSaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pdv/filter/{field} [get]
func (h *PointOfSaleHandler) Filter(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), CurrentUser(c), c.Params("field"), c.Query("value"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Types godoc
// @Summary      Tipos distintos de PDV
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/pdv/types [get]
func (h *PointOfSaleHandler) Types(c *fiber.Ctx) error {
	return h.distinct(c, repository.FieldType)
}

// Cities godoc
// @Summary      Ciudades distintas de PDV
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/pdv/cities [get]
func (h *PointOfSaleHandler) Cities(c *fiber.Ctx) error {
	return h.distinct(c, repository.FieldCity)
}

func (h *PointOfSaleHandler) distinct(c *fiber.Ctx, field string) error {
	out, err := h.uc.DistinctValues(c.UserContext(), CurrentUser(c), field)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener PDV por ID
// @Tags         pdv
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del PDV"
// @Success      200  {object}  dto.PointOfSaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdv/{id} [get]
func (h *PointOfSaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), CurrentUser(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar PDV
// @Tags         pdv
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del PDV"
// @Param        body  body  dto.PointOfSaleRequest  true  "Datos del PDV"
// @Success      200   {object}  dto.PointOfSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pdv/{id} [put]
func (h *PointOfSaleHandler) Update(c *fiber.Ctx) error {
	var in dto.PointOfSaleRequest
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
// @Summary      Eliminar PDV
// @Tags         pdv
// @Security     Bearer
// @Param        id   path  string  true  "ID del PDV"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pdv/{id} [delete]
func (h *PointOfSaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), CurrentUser(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

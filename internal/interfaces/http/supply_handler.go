package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// SupplyHandler maneja las peticiones HTTP de suministros (producto-proveedor).
type SupplyHandler struct {
	uc *usecase.SupplyUseCase
}

// NewSupplyHandler construye el handler.
func NewSupplyHandler(uc *usecase.SupplyUseCase) *SupplyHandler {
	return &SupplyHandler{uc: uc}
}

// List lista suministros; acepta filtros opcionales por producto o proveedor.
func (h *SupplyHandler) List(c *fiber.Ctx) error {
	if v := c.QueryInt("productID"); v > 0 {
		rows, err := h.uc.ListByProduct(int64(v))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(rows)
	}
	if v := c.QueryInt("vendorID"); v > 0 {
		rows, err := h.uc.ListByVendor(int64(v))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(rows)
	}
	rows, err := h.uc.ListAll()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// Create registra una entrega.
func (h *SupplyHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"supplyID": id})
}

// Update reescribe una entrega.
func (h *SupplyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.SupplyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "suministro actualizado"})
}

// Delete borra una entrega.
func (h *SupplyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "suministro eliminado"})
}

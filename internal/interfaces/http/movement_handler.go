package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ledger"
)

// MovementHandler maneja la ruta administrativa de movimientos de stock.
type MovementHandler struct {
	uc *ledger.UseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *ledger.UseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// List lista todos los movimientos con detalles, más recientes primero.
func (h *MovementHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.ListMovements(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// ListByProduct lista los movimientos de un producto.
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := parseID(c, "productId")
	if err != nil {
		return err
	}
	rows, err := h.uc.MovementsByProduct(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// ListByInventory lista los movimientos de una bodega.
func (h *MovementHandler) ListByInventory(c *fiber.Ctx) error {
	id, err := parseID(c, "inventoryId")
	if err != nil {
		return err
	}
	rows, err := h.uc.MovementsByInventory(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// Create registra un movimiento manual y ajusta el stock por su delta.
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.CreateMovement(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"movementID": id})
}

// Update reescribe un movimiento y ajusta el stock por la diferencia de deltas.
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateMovement(c.Context(), id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento actualizado"})
}

// Delete borra un movimiento revirtiendo su delta sobre el stock.
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteMovement(c.Context(), id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "movimiento eliminado"})
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// OrderHandler maneja pedidos, checkout y líneas de pedido.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List lista pedidos con filtros opcionales (search, status, customerID).
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	if v := c.QueryInt("customerID"); v > 0 {
		filter.CustomerID = int64(v)
	}
	orders, err := h.uc.List(filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(orders)
}

// ListByCustomer lista los pedidos de un cliente.
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	id, err := parseID(c, "customerId")
	if err != nil {
		return err
	}
	orders, err := h.uc.ListByCustomer(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(orders)
}

// Create crea un pedido suelto (sin líneas).
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderID": id})
}

// Update actualiza un pedido.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.OrderRequestBody
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido actualizado"})
}

// Delete borra un pedido.
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido eliminado"})
}

// Checkout godoc
// @Summary      Checkout: pedido + líneas + pago pendiente en una transacción
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "customerID + productos del carrito"
// @Success      201   {object}  map[string]int64
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Checkout(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orderID": id})
}

// Lines lista líneas de pedido; acepta filtro opcional por pedido.
func (h *OrderHandler) Lines(c *fiber.Ctx) error {
	if v := c.QueryInt("orderID"); v > 0 {
		lines, err := h.uc.LinesByOrder(int64(v))
		if err != nil {
			return errorResponse(c, err)
		}
		return c.JSON(lines)
	}
	lines, err := h.uc.Lines()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lines)
}

// LinesByOrder lista las líneas de un pedido.
func (h *OrderHandler) LinesByOrder(c *fiber.Ctx) error {
	id, err := parseID(c, "orderId")
	if err != nil {
		return err
	}
	lines, err := h.uc.LinesByOrder(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(lines)
}

// CreateLine crea una línea de pedido suelta.
func (h *OrderHandler) CreateLine(c *fiber.Ctx) error {
	var in dto.LineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CreateLine(in); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "línea creada"})
}

// UpdateLine actualiza una línea de pedido.
func (h *OrderHandler) UpdateLine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.LineRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.UpdateLine(id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea actualizada"})
}

// DeleteLine borra una línea de pedido.
func (h *OrderHandler) DeleteLine(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteLine(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "línea eliminada"})
}

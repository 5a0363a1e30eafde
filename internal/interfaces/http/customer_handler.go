package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes y deudas.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List lista clientes con búsqueda opcional por nombre, teléfono o email.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.uc.List(c.Query("search"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customers)
}

// Get obtiene un cliente por ID.
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	cust, err := h.uc.Get(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cust)
}

// Create crea un cliente.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"customerID": id})
}

// Update actualiza los datos de contacto de un cliente.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente actualizado"})
}

// Delete borra un cliente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado"})
}

// Debts lista los pedidos con saldo pendiente de un cliente.
func (h *CustomerHandler) Debts(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	debts, err := h.uc.Debts(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(debts)
}

// AllDebts lista la deuda total acumulada por cliente.
func (h *CustomerHandler) AllDebts(c *fiber.Ctx) error {
	debts, err := h.uc.AllDebts()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(debts)
}

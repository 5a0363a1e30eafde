package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos (búsqueda y filtro por línea opcionales)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "nombre, marca o línea"
// @Param        category  query  string  false  "línea exacta"
// @Success      200  {array}   entity.Product
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.uc.List(c.Query("search"), c.Query("category"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(products)
}

// Get obtiene un producto por ID.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.uc.Get(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(p)
}

// Create crea un producto.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"productID": id})
}

// Update actualiza un producto.
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Update(id, in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto actualizado"})
}

// Usage reporta en cuántas líneas de pedido, movimientos y suministros se usa el producto.
func (h *ProductHandler) Usage(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	usage, err := h.uc.Usage(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{
		"requests":  usage.Requests,
		"movements": usage.Movements,
		"supplies":  usage.Supplies,
		"canDelete": usage.CanDelete(),
	})
}

// Delete borra un producto si no está en uso.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}

// Inventory lista las bodegas con movimientos del producto.
func (h *ProductHandler) Inventory(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	rows, err := h.uc.InventoryView(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// Suppliers lista las entregas del producto con datos del proveedor.
func (h *ProductHandler) Suppliers(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	rows, err := h.uc.Suppliers(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(rows)
}

// Categories lista las líneas de producto distintas.
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.uc.Categories()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cats)
}

// CategoriesWithCount lista las líneas con el número de productos de cada una.
func (h *ProductHandler) CategoriesWithCount(c *fiber.Ctx) error {
	cats, err := h.uc.CategoriesWithCount()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cats)
}

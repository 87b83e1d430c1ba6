package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CampoStock-api/internal/application/dto"
	"github.com/jhoicas/CampoStock-api/internal/application/reference"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
)

// ReferenceHandler lecturas de datos maestros (solo lectura: los administra la
// aplicación de ventas que nos rodea).
type ReferenceHandler struct {
	uc *reference.UseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *reference.UseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

// ListStores devuelve las tiendas.
func (h *ReferenceHandler) ListStores(c *fiber.Ctx) error {
	page, ok := h.page(c)
	if !ok {
		return nil
	}
	stores, err := h.uc.ListStores(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.StoreDTO, 0, len(stores))
	for _, s := range stores {
		out = append(out, dto.NewStoreDTO(s))
	}
	return c.JSON(fiber.Map{"stores": out})
}

// GetStore devuelve una tienda.
func (h *ReferenceHandler) GetStore(c *fiber.Ctx) error {
	s, err := h.uc.GetStore(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewStoreDTO(s))
}

// ListProducts devuelve los productos.
func (h *ReferenceHandler) ListProducts(c *fiber.Ctx) error {
	page, ok := h.page(c)
	if !ok {
		return nil
	}
	products, err := h.uc.ListProducts(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductDTO(p))
	}
	return c.JSON(fiber.Map{"products": out})
}

// GetProduct devuelve un producto.
func (h *ReferenceHandler) GetProduct(c *fiber.Ctx) error {
	p, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewProductDTO(p))
}

// ListEmployees devuelve los empleados.
func (h *ReferenceHandler) ListEmployees(c *fiber.Ctx) error {
	page, ok := h.page(c)
	if !ok {
		return nil
	}
	employees, err := h.uc.ListEmployees(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.EmployeeDTO, 0, len(employees))
	for _, e := range employees {
		out = append(out, dto.NewEmployeeDTO(e))
	}
	return c.JSON(fiber.Map{"employees": out})
}

// ListStoreVisits devuelve las visitas de una tienda.
func (h *ReferenceHandler) ListStoreVisits(c *fiber.Ctx) error {
	page, ok := h.page(c)
	if !ok {
		return nil
	}
	visits, err := h.uc.ListStoreVisits(c.Context(), c.Params("storeId"), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]fiber.Map, 0, len(visits))
	for _, v := range visits {
		out = append(out, visitMap(v))
	}
	return c.JSON(fiber.Map{"visits": out})
}

func visitMap(v *entity.Visit) fiber.Map {
	return fiber.Map{
		"id":          v.ID,
		"store_id":    v.StoreID,
		"employee_id": v.EmployeeID,
		"visited_at":  v.VisitedAt,
	}
}

func (h *ReferenceHandler) page(c *fiber.Ctx) (dto.PageRequest, bool) {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
		return page, false
	}
	page.DefaultPage()
	return page, true
}

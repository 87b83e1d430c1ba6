package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CampoStock-api/internal/application/dto"
	"github.com/jhoicas/CampoStock-api/internal/application/ledger"
)

// LedgerHandler lecturas del libro de inventario y del agregado de bodega.
type LedgerHandler struct {
	queries *ledger.QueryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(queries *ledger.QueryUseCase) *LedgerHandler {
	return &LedgerHandler{queries: queries}
}

// GetLedger godoc
// @Summary      Contadores de un par (tienda, producto)
// @Tags         ledger
// @Produce      json
// @Param        storeId    path  string  true  "id de la tienda"
// @Param        productId  path  string  true  "id del producto"
// @Success      200  {object}  dto.LedgerDTO
// @Router       /api/stores/{storeId}/ledger/{productId} [get]
func (h *LedgerHandler) GetLedger(c *fiber.Ctx) error {
	entry, err := h.queries.GetLedger(c.Context(), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewLedgerDTO(entry))
}

// ListStoreLedger godoc
// @Summary      Ledger completo de una tienda
// @Tags         ledger
// @Produce      json
// @Param        storeId  path   string  true   "id de la tienda"
// @Param        limit    query  int     false  "por página (máx 100)"
// @Param        offset   query  int     false  "desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stores/{storeId}/ledger [get]
func (h *LedgerHandler) ListStoreLedger(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	entries, err := h.queries.ListStoreLedger(c.Context(), c.Params("storeId"), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.LedgerDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewLedgerDTO(e))
	}
	return c.JSON(fiber.Map{
		"ledger": out,
		"page":   dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// GetAggregate godoc
// @Summary      Agregado de bodega de un producto
// @Tags         ledger
// @Produce      json
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.AggregateDTO
// @Router       /api/products/{id}/aggregate [get]
func (h *LedgerHandler) GetAggregate(c *fiber.Ctx) error {
	agg, err := h.queries.GetAggregate(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.AggregateDTO{ProductID: agg.ProductID, WarehouseStock: agg.WarehouseStock})
}

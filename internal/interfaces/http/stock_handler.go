package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CampoStock-api/internal/application/dto"
	"github.com/jhoicas/CampoStock-api/internal/application/ledger"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
	"github.com/jhoicas/CampoStock-api/pkg/validator"
)

// StockHandler maneja las peticiones HTTP del ciclo de vida de transacciones
// de stock: creación desde terreno, decisiones administrativas y consultas.
type StockHandler struct {
	submit   *ledger.SubmitTransactionUseCase
	approval *ledger.ApprovalUseCase
	queries  *ledger.QueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(
	submit *ledger.SubmitTransactionUseCase,
	approval *ledger.ApprovalUseCase,
	queries *ledger.QueryUseCase,
) *StockHandler {
	return &StockHandler{submit: submit, approval: approval, queries: queries}
}

// Submit godoc
// @Summary      Crear transacción de stock desde terreno
// @Tags         stock-transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitTransactionRequest  true  "store_id, product_id, visit_id, type (restock|return), quantity, remark"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions [post]
func (h *StockHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campo inválido: " + errs[0].FailedField})
	}

	id, err := h.submit.Submit(c.Context(), ledger.SubmitInput{
		StoreID:     in.StoreID,
		ProductID:   in.ProductID,
		VisitID:     in.VisitID,
		RequestedBy: GetActorID(c),
		Type:        entity.TransactionType(in.Type),
		Quantity:    in.Quantity,
		Remark:      in.Remark,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// Approve godoc
// @Summary      Aprobar una transacción pending
// @Tags         stock-transactions
// @Produce      json
// @Param        id    path  string  true  "id de la transacción"
// @Param        body  body  dto.DecisionRequest  false  "remark opcional"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id}/approve [post]
func (h *StockHandler) Approve(c *fiber.Ctx) error {
	in, ok := h.decisionBody(c)
	if !ok {
		return nil
	}
	if err := h.approval.Approve(c.Context(), c.Params("id"), GetActorID(c), in.Remark); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(entity.StatusApproved)})
}

// Reject godoc
// @Summary      Rechazar una transacción pending (remark obligatorio)
// @Tags         stock-transactions
// @Produce      json
// @Param        id    path  string  true  "id de la transacción"
// @Param        body  body  dto.DecisionRequest  true  "remark con el motivo"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id}/reject [post]
func (h *StockHandler) Reject(c *fiber.Ctx) error {
	in, ok := h.decisionBody(c)
	if !ok {
		return nil
	}
	if err := h.approval.Reject(c.Context(), c.Params("id"), GetActorID(c), in.Remark); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"status": string(entity.StatusRejected)})
}

// MarkDelivered godoc
// @Summary      Confirmar entrega de un restock approved
// @Tags         stock-transactions
// @Produce      json
// @Param        id    path  string  true  "id de la transacción"
// @Param        body  body  dto.DecisionRequest  false  "remark opcional"
// @Success      200   {object}  dto.LedgerDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id}/delivered [post]
func (h *StockHandler) MarkDelivered(c *fiber.Ctx) error {
	in, ok := h.decisionBody(c)
	if !ok {
		return nil
	}
	entry, err := h.approval.MarkDelivered(c.Context(), c.Params("id"), GetActorID(c), in.Remark)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewLedgerDTO(entry))
}

// MarkReturned godoc
// @Summary      Confirmar retiro de un return approved
// @Tags         stock-transactions
// @Produce      json
// @Param        id    path  string  true  "id de la transacción"
// @Param        body  body  dto.DecisionRequest  false  "remark opcional"
// @Success      200   {object}  dto.LedgerDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id}/returned [post]
func (h *StockHandler) MarkReturned(c *fiber.Ctx) error {
	in, ok := h.decisionBody(c)
	if !ok {
		return nil
	}
	entry, err := h.approval.MarkReturned(c.Context(), c.Params("id"), GetActorID(c), in.Remark)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewLedgerDTO(entry))
}

// BulkApprove godoc
// @Summary      Aprobar en bloque las transacciones pending del conjunto
// @Tags         stock-transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkApproveRequest  true  "ids y remark opcional"
// @Success      200   {object}  dto.BulkApproveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/bulk-approve [post]
func (h *StockHandler) BulkApprove(c *fiber.Ctx) error {
	var in dto.BulkApproveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campo inválido: " + errs[0].FailedField})
	}
	count, err := h.approval.BulkApprove(c.Context(), in.IDs, GetActorID(c), in.Remark)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.BulkApproveResponse{TransitionedCount: count})
}

// GetByID godoc
// @Summary      Detalle de una transacción
// @Tags         stock-transactions
// @Produce      json
// @Param        id  path  string  true  "id de la transacción"
// @Success      200  {object}  dto.TransactionDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-transactions/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	txn, err := h.queries.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.NewTransactionDTO(txn))
}

// List godoc
// @Summary      Listar transacciones con filtros
// @Tags         stock-transactions
// @Produce      json
// @Param        status      query  string  false  "pending|approved|delivered|returned|rejected"
// @Param        type        query  string  false  "restock|return"
// @Param        store_id    query  string  false  "filtrar por tienda"
// @Param        product_id  query  string  false  "filtrar por producto"
// @Param        actor_id    query  string  false  "filtrar por solicitante"
// @Param        from        query  string  false  "RFC3339"
// @Param        to          query  string  false  "RFC3339"
// @Param        limit       query  int     false  "por página (máx 100)"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stock-transactions [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	filter := repository.TransactionFilter{
		Status:    entity.TransactionStatus(c.Query("status")),
		Type:      entity.TransactionType(c.Query("type")),
		StoreID:   c.Query("store_id"),
		ProductID: c.Query("product_id"),
		ActorID:   c.Query("actor_id"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status desconocido"})
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type desconocido"})
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido (RFC3339)"})
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido (RFC3339)"})
		}
		filter.To = &t
	}

	items, total, err := h.queries.ListTransactions(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.TransactionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.NewTransactionListDTO(item))
	}
	return c.JSON(fiber.Map{
		"transactions": out,
		"page":         dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// decisionBody parsea el body opcional de las acciones de decisión. Si el body
// es inválido escribe la respuesta 400 y devuelve ok=false.
func (h *StockHandler) decisionBody(c *fiber.Ctx) (dto.DecisionRequest, bool) {
	var in dto.DecisionRequest
	if len(c.Body()) == 0 {
		return in, true
	}
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return in, false
	}
	return in, true
}

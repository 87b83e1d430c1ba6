package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CampoStock-api/internal/application/dto"
	appledger "github.com/jhoicas/CampoStock-api/internal/application/ledger"
	"github.com/jhoicas/CampoStock-api/internal/application/reference"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/infrastructure/memory"
	"github.com/jhoicas/CampoStock-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *memory.Store) {
	store := memory.NewStore()
	store.AddStore(entity.Store{ID: "store-1", Code: "T001", Name: "Tienda Centro"})
	store.AddProduct(entity.Product{ID: "prod-1", SKU: "SKU-001", Name: "Café 500g"})
	store.AddEmployee(entity.Employee{ID: "emp-1", Name: "Laura", Role: "field"})

	log := logger.New("production", "error")
	runner := memory.NewTxRunner(store)
	submit := appledger.NewSubmitTransactionUseCase(runner, store.Stores(), store.Products(), log)
	approval := appledger.NewApprovalUseCase(runner, log)
	queries := appledger.NewQueryUseCase(store.Transactions(), store.Ledger(), store.Aggregates())
	refUC := reference.NewUseCase(store.Stores(), store.Products(), store.Employees(), store.Visits())

	app := fiber.New()
	Router(app, RouterDeps{
		Stock:     NewStockHandler(submit, approval, queries),
		Ledger:    NewLedgerHandler(queries),
		Reference: NewReferenceHandler(refUC),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, actor string) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		req.Header.Set("X-Actor-ID", actor)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func submitBody() dto.SubmitTransactionRequest {
	return dto.SubmitTransactionRequest{
		StoreID:   "store-1",
		ProductID: "prod-1",
		VisitID:   "visit-1",
		Type:      "restock",
		Quantity:  20,
		Remark:    "reponer góndola",
	}
}

func mustSubmitHTTP(t *testing.T, app *fiber.App, body dto.SubmitTransactionRequest) string {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-transactions", body, "emp-1")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.ID)
	return out.ID
}

func TestRutas_SinActorDevuelven401(t *testing.T) {
	app, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/stock-transactions", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, "MISSING_ACTOR", body.Code)
}

func TestSubmit_ValidacionDeBody(t *testing.T) {
	app, _ := newTestApp()

	body := submitBody()
	body.Quantity = 0
	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-transactions", body, "emp-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "VALIDATION", out.Code)

	body = submitBody()
	body.Type = "transfer"
	resp = doJSON(t, app, fiber.MethodPost, "/api/stock-transactions", body, "emp-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSubmit_ReferenciaDesconocidaDevuelve404(t *testing.T) {
	app, _ := newTestApp()

	body := submitBody()
	body.StoreID = "store-inexistente"
	resp := doJSON(t, app, fiber.MethodPost, "/api/stock-transactions", body, "emp-1")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "UNKNOWN_REFERENCE", out.Code)
}

func TestCicloHTTP_SubmitAprobarEntregar(t *testing.T) {
	app, _ := newTestApp()

	id := mustSubmitHTTP(t, app, submitBody())

	// El detalle refleja la creación con el actor del header.
	resp := doJSON(t, app, fiber.MethodGet, "/api/stock-transactions/"+id, nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var txn dto.TransactionDTO
	decodeBody(t, resp, &txn)
	assert.Equal(t, "pending", txn.Status)
	assert.Equal(t, "emp-1", txn.RequestedBy)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id), nil, "admin-1")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/delivered", id), nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var entry dto.LedgerDTO
	decodeBody(t, resp, &entry)
	assert.Equal(t, 20, entry.OnShelf)
	assert.Equal(t, 0, entry.PendingDelivery)

	// Consulta del ledger por la otra ruta.
	resp = doJSON(t, app, fiber.MethodGet, "/api/stores/store-1/ledger/prod-1", nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &entry)
	assert.Equal(t, 20, entry.OnShelf)

	// El agregado de bodega descontó la entrega.
	resp = doJSON(t, app, fiber.MethodGet, "/api/products/prod-1/aggregate", nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var agg dto.AggregateDTO
	decodeBody(t, resp, &agg)
	assert.Equal(t, -20, agg.WarehouseStock)
}

func TestAprobarDosVecesDevuelve409(t *testing.T) {
	app, _ := newTestApp()

	id := mustSubmitHTTP(t, app, submitBody())
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id), nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id), nil, "admin-2")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "TRANSITION_REJECTED", out.Code)
	assert.Contains(t, out.Message, "pending")
}

func TestRechazoSinObservacionDevuelve400(t *testing.T) {
	app, _ := newTestApp()

	id := mustSubmitHTTP(t, app, submitBody())
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/reject", id), nil, "admin-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "MISSING_REMARK", out.Code)
}

func TestDevolucionSinStockDevuelve409ConContadores(t *testing.T) {
	app, store := newTestApp()
	store.SetLedger(entity.LedgerEntry{StoreID: "store-1", ProductID: "prod-1", OnShelf: 3})

	body := submitBody()
	body.Type = "return"
	body.Quantity = 5
	id := mustSubmitHTTP(t, app, body)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id), nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/returned", id), nil, "admin-1")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Contains(t, out.Message, "en estantería 3")
	assert.Contains(t, out.Message, "solicitado 5")
}

func TestBulkApproveHTTP(t *testing.T) {
	app, _ := newTestApp()

	id1 := mustSubmitHTTP(t, app, submitBody())
	id2 := mustSubmitHTTP(t, app, submitBody())
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id1), nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/stock-transactions/bulk-approve",
		dto.BulkApproveRequest{IDs: []string{id1, id2, "txn-fantasma"}, Remark: "lote"}, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.BulkApproveResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, 1, out.TransitionedCount)

	// Sin ids es un error de validación.
	resp = doJSON(t, app, fiber.MethodPost, "/api/stock-transactions/bulk-approve",
		dto.BulkApproveRequest{}, "admin-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListadoConFiltros(t *testing.T) {
	app, _ := newTestApp()

	id1 := mustSubmitHTTP(t, app, submitBody())
	body := submitBody()
	body.Type = "return"
	body.Quantity = 2
	mustSubmitHTTP(t, app, body)
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/stock-transactions/%s/approve", id1), nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/stock-transactions?status=pending&type=return", nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Transactions []dto.TransactionDTO `json:"transactions"`
		Page         dto.PageResponse     `json:"page"`
	}
	decodeBody(t, resp, &out)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, "return", out.Transactions[0].Type)
	assert.Equal(t, "SKU-001", out.Transactions[0].ProductSKU)
	assert.Equal(t, "Tienda Centro", out.Transactions[0].StoreName)
	assert.Equal(t, 1, out.Page.Total)

	// Status fuera de la enumeración.
	resp = doJSON(t, app, fiber.MethodGet, "/api/stock-transactions?status=archived", nil, "admin-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListado_AcotaElLimiteDePagina(t *testing.T) {
	app, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/stock-transactions?limit=100000", nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Page dto.PageResponse `json:"page"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, 100, out.Page.Limit)
}

func TestDetalleInexistenteDevuelve404(t *testing.T) {
	app, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/stock-transactions/txn-fantasma", nil, "admin-1")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var out dto.ErrorResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestLedgerNoMaterializadoDevuelveCeros(t *testing.T) {
	app, _ := newTestApp()

	resp := doJSON(t, app, fiber.MethodGet, "/api/stores/store-1/ledger/prod-1", nil, "admin-1")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var entry dto.LedgerDTO
	decodeBody(t, resp, &entry)
	assert.Equal(t, 0, entry.OnShelf)
	assert.Equal(t, 0, entry.PendingDelivery)
	assert.Equal(t, 0, entry.PendingReturn)
}

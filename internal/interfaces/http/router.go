package http

import "github.com/gofiber/fiber/v2"

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Stock     *StockHandler
	Ledger    *LedgerHandler
	Reference *ReferenceHandler
}

// Router registra las rutas de la API. Todas requieren el actor resuelto por
// el gateway (X-Actor-ID); la autenticación real vive fuera de este servicio.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", ActorMiddleware())

	// Ciclo de vida de transacciones de stock
	txns := api.Group("/stock-transactions")
	txns.Post("/", deps.Stock.Submit)
	txns.Get("/", deps.Stock.List)
	txns.Post("/bulk-approve", deps.Stock.BulkApprove)
	txns.Get("/:id", deps.Stock.GetByID)
	txns.Post("/:id/approve", deps.Stock.Approve)
	txns.Post("/:id/reject", deps.Stock.Reject)
	txns.Post("/:id/delivered", deps.Stock.MarkDelivered)
	txns.Post("/:id/returned", deps.Stock.MarkReturned)

	// Ledger por tienda y agregado de bodega
	stores := api.Group("/stores")
	stores.Get("/", deps.Reference.ListStores)
	stores.Get("/:id", deps.Reference.GetStore)
	stores.Get("/:storeId/ledger", deps.Ledger.ListStoreLedger)
	stores.Get("/:storeId/ledger/:productId", deps.Ledger.GetLedger)
	stores.Get("/:storeId/visits", deps.Reference.ListStoreVisits)

	// Referencia de productos y empleados
	products := api.Group("/products")
	products.Get("/", deps.Reference.ListProducts)
	products.Get("/:id", deps.Reference.GetProduct)
	products.Get("/:id/aggregate", deps.Ledger.GetAggregate)

	api.Get("/employees", deps.Reference.ListEmployees)
}

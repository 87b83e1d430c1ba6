// Package memory implementa los puertos de persistencia en mapas en memoria.
// Sirve para tests y para correr la API localmente sin PostgreSQL; el TxRunner
// serializa las transacciones con un mutex global y restaura un snapshot si el
// callback falla, emulando el commit/rollback de la BD.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/CampoStock-api/internal/application/ledger"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// Store contenedor de todos los datos en memoria.
type Store struct {
	mu           sync.Mutex
	transactions map[string]entity.StockTransaction
	ledger       map[string]entity.LedgerEntry // clave storeID|productID
	aggregates   map[string]entity.ProductAggregate
	stores       map[string]entity.Store
	products     map[string]entity.Product
	employees    map[string]entity.Employee
	visits       map[string]entity.Visit
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		transactions: map[string]entity.StockTransaction{},
		ledger:       map[string]entity.LedgerEntry{},
		aggregates:   map[string]entity.ProductAggregate{},
		stores:       map[string]entity.Store{},
		products:     map[string]entity.Product{},
		employees:    map[string]entity.Employee{},
		visits:       map[string]entity.Visit{},
	}
}

func ledgerKey(storeID, productID string) string { return storeID + "|" + productID }

// Semillas de datos de referencia.

// AddStore registra una tienda.
func (s *Store) AddStore(st entity.Store) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stores[st.ID] = st
}

// AddProduct registra un producto.
func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

// AddEmployee registra un empleado.
func (s *Store) AddEmployee(e entity.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employees[e.ID] = e
}

// AddVisit registra una visita.
func (s *Store) AddVisit(v entity.Visit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visits[v.ID] = v
}

// SetLedger fija directamente una entrada del ledger (solo para preparar tests).
func (s *Store) SetLedger(e entity.LedgerEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[ledgerKey(e.StoreID, e.ProductID)] = e
}

// Vistas que implementan los puertos de dominio.

// Transactions devuelve el repositorio de transacciones.
func (s *Store) Transactions() repository.StockTransactionRepository { return &txnView{s} }

// Ledger devuelve el repositorio del ledger.
func (s *Store) Ledger() repository.LedgerRepository { return &ledgerView{s} }

// Aggregates devuelve el repositorio del agregado de bodega.
func (s *Store) Aggregates() repository.ProductAggregateRepository { return &aggView{s} }

// Stores devuelve el repositorio de tiendas.
func (s *Store) Stores() repository.StoreRepository { return &storeView{s} }

// Products devuelve el repositorio de productos.
func (s *Store) Products() repository.ProductRepository { return &productView{s} }

// Employees devuelve el repositorio de empleados.
func (s *Store) Employees() repository.EmployeeRepository { return &employeeView{s} }

// Visits devuelve el repositorio de visitas.
func (s *Store) Visits() repository.VisitRepository { return &visitView{s} }

// TxRunner serializa callbacks transaccionales sobre el almacén. El mutex
// global cumple el papel de los bloqueos de fila: dentro de Run nadie más
// observa ni muta el estado, y un error restaura el snapshot (rollback).
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

var _ ledger.TxRunner = (*TxRunner)(nil)

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con repos del almacén como una unidad atómica.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.StockTransactionRepository,
	ledgerRepo repository.LedgerRepository,
	aggRepo repository.ProductAggregateRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	snapTxns, snapLedger, snapAggs := r.store.snapshot()
	if err := fn(r.store.Transactions(), r.store.Ledger(), r.store.Aggregates()); err != nil {
		r.store.restore(snapTxns, snapLedger, snapAggs)
		return err
	}
	return nil
}

func (s *Store) snapshot() (map[string]entity.StockTransaction, map[string]entity.LedgerEntry, map[string]entity.ProductAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txns := make(map[string]entity.StockTransaction, len(s.transactions))
	for k, v := range s.transactions {
		txns[k] = v
	}
	led := make(map[string]entity.LedgerEntry, len(s.ledger))
	for k, v := range s.ledger {
		led[k] = v
	}
	aggs := make(map[string]entity.ProductAggregate, len(s.aggregates))
	for k, v := range s.aggregates {
		aggs[k] = v
	}
	return txns, led, aggs
}

func (s *Store) restore(txns map[string]entity.StockTransaction, led map[string]entity.LedgerEntry, aggs map[string]entity.ProductAggregate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = txns
	s.ledger = led
	s.aggregates = aggs
}

package memory

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

// Los métodos devuelven copias: las mutaciones solo persisten vía Create,
// UpdateStatus o Upsert, igual que con una BD real.

type txnView struct{ s *Store }

var _ repository.StockTransactionRepository = (*txnView)(nil)

func (v *txnView) Create(txn *entity.StockTransaction) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	v.s.transactions[txn.ID] = *txn
	return nil
}

func (v *txnView) GetByID(id string) (*entity.StockTransaction, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	txn, ok := v.s.transactions[id]
	if !ok {
		return nil, nil
	}
	out := txn
	return &out, nil
}

// GetForUpdate en memoria no bloquea fila: el TxRunner ya serializa todo.
func (v *txnView) GetForUpdate(id string) (*entity.StockTransaction, error) {
	return v.GetByID(id)
}

func (v *txnView) UpdateStatus(txn *entity.StockTransaction) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	current, ok := v.s.transactions[txn.ID]
	if !ok {
		return nil
	}
	current.Status = txn.Status
	current.AdminRemark = txn.AdminRemark
	current.DecidedBy = txn.DecidedBy
	current.DecidedAt = txn.DecidedAt
	current.UpdatedAt = txn.UpdatedAt
	v.s.transactions[txn.ID] = current
	return nil
}

func (v *txnView) List(filter repository.TransactionFilter, limit, offset int) ([]*repository.TransactionListItem, int, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()

	var matched []entity.StockTransaction
	for _, txn := range v.s.transactions {
		if filter.Status != "" && txn.Status != filter.Status {
			continue
		}
		if filter.Type != "" && txn.Type != filter.Type {
			continue
		}
		if filter.StoreID != "" && txn.StoreID != filter.StoreID {
			continue
		}
		if filter.ProductID != "" && txn.ProductID != filter.ProductID {
			continue
		}
		if filter.ActorID != "" && txn.RequestedBy != filter.ActorID {
			continue
		}
		if filter.From != nil && txn.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && txn.CreatedAt.After(*filter.To) {
			continue
		}
		matched = append(matched, txn)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return strings.Compare(matched[i].ID, matched[j].ID) < 0
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	var list []*repository.TransactionListItem
	for _, txn := range matched[offset:end] {
		item := &repository.TransactionListItem{StockTransaction: txn}
		if st, ok := v.s.stores[txn.StoreID]; ok {
			item.StoreName = st.Name
		}
		if p, ok := v.s.products[txn.ProductID]; ok {
			item.ProductSKU = p.SKU
			item.ProductName = p.Name
		}
		list = append(list, item)
	}
	return list, total, nil
}

type ledgerView struct{ s *Store }

var _ repository.LedgerRepository = (*ledgerView)(nil)

func (v *ledgerView) Get(storeID, productID string) (*entity.LedgerEntry, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	entry, ok := v.s.ledger[ledgerKey(storeID, productID)]
	if !ok {
		return &entity.LedgerEntry{StoreID: storeID, ProductID: productID}, nil
	}
	out := entry
	return &out, nil
}

func (v *ledgerView) GetForUpdate(storeID, productID string) (*entity.LedgerEntry, error) {
	return v.Get(storeID, productID)
}

func (v *ledgerView) Upsert(entry *entity.LedgerEntry) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	v.s.ledger[ledgerKey(entry.StoreID, entry.ProductID)] = *entry
	return nil
}

func (v *ledgerView) ListByStore(storeID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var matched []entity.LedgerEntry
	for _, entry := range v.s.ledger {
		if entry.StoreID == storeID {
			matched = append(matched, entry)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ProductID < matched[j].ProductID })
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	var list []*entity.LedgerEntry
	for _, entry := range matched[offset:end] {
		out := entry
		list = append(list, &out)
	}
	return list, nil
}

type aggView struct{ s *Store }

var _ repository.ProductAggregateRepository = (*aggView)(nil)

func (v *aggView) Get(productID string) (*entity.ProductAggregate, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	agg, ok := v.s.aggregates[productID]
	if !ok {
		return &entity.ProductAggregate{ProductID: productID}, nil
	}
	out := agg
	return &out, nil
}

func (v *aggView) AddToWarehouseStock(productID string, delta int) error {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	agg := v.s.aggregates[productID]
	agg.ProductID = productID
	agg.WarehouseStock += delta
	v.s.aggregates[productID] = agg
	return nil
}

type storeView struct{ s *Store }

var _ repository.StoreRepository = (*storeView)(nil)

func (v *storeView) GetByID(id string) (*entity.Store, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	st, ok := v.s.stores[id]
	if !ok {
		return nil, nil
	}
	out := st
	return &out, nil
}

func (v *storeView) List(limit, offset int) ([]*entity.Store, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var all []entity.Store
	for _, st := range v.s.stores {
		all = append(all, st)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Code < all[j].Code })
	return pageOf(all, limit, offset), nil
}

type productView struct{ s *Store }

var _ repository.ProductRepository = (*productView)(nil)

func (v *productView) GetByID(id string) (*entity.Product, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	p, ok := v.s.products[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
}

func (v *productView) List(limit, offset int) ([]*entity.Product, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var all []entity.Product
	for _, p := range v.s.products {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].SKU < all[j].SKU })
	return pageOf(all, limit, offset), nil
}

type employeeView struct{ s *Store }

var _ repository.EmployeeRepository = (*employeeView)(nil)

func (v *employeeView) GetByID(id string) (*entity.Employee, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	e, ok := v.s.employees[id]
	if !ok {
		return nil, nil
	}
	out := e
	return &out, nil
}

func (v *employeeView) List(limit, offset int) ([]*entity.Employee, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var all []entity.Employee
	for _, e := range v.s.employees {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return pageOf(all, limit, offset), nil
}

type visitView struct{ s *Store }

var _ repository.VisitRepository = (*visitView)(nil)

func (v *visitView) GetByID(id string) (*entity.Visit, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	vis, ok := v.s.visits[id]
	if !ok {
		return nil, nil
	}
	out := vis
	return &out, nil
}

func (v *visitView) ListByStore(storeID string, limit, offset int) ([]*entity.Visit, error) {
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	var matched []entity.Visit
	for _, vis := range v.s.visits {
		if vis.StoreID == storeID {
			matched = append(matched, vis)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].VisitedAt.After(matched[j].VisitedAt) })
	return pageOf(matched, limit, offset), nil
}

func pageOf[T any](all []T, limit, offset int) []*T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	out := make([]*T, 0, end-offset)
	for i := offset; i < end; i++ {
		item := all[i]
		out = append(out, &item)
	}
	return out
}

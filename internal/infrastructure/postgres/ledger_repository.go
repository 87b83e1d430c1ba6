package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del ledger por (tienda, producto) sobre PostgreSQL
// (usable con pool o tx).
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Get obtiene la entrada del ledger; contadores en cero si no existe (creación perezosa).
func (r *LedgerRepo) Get(storeID, productID string) (*entity.LedgerEntry, error) {
	query := `
		SELECT store_id, product_id, on_shelf, pending_delivery, pending_return, updated_at
		FROM store_ledger WHERE store_id = $1 AND product_id = $2`
	return r.scanOne(query, storeID, productID)
}

// GetForUpdate materializa la fila si no existe y la bloquea (SELECT FOR UPDATE).
// Sin fila no hay nada que bloquear: dos primeras solicitudes del mismo par
// leerían cero a la vez y la segunda pisaría la reserva de la primera. El
// INSERT previo garantiza que el FOR UPDATE siempre encuentra una fila y las
// lecturas-modificaciones quedan serializadas desde la primera.
func (r *LedgerRepo) GetForUpdate(storeID, productID string) (*entity.LedgerEntry, error) {
	insert := `
		INSERT INTO store_ledger (store_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (store_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, storeID, productID); err != nil {
		return nil, fmt.Errorf("materialize ledger entry: %w", err)
	}
	query := `
		SELECT store_id, product_id, on_shelf, pending_delivery, pending_return, updated_at
		FROM store_ledger WHERE store_id = $1 AND product_id = $2
		FOR UPDATE`
	return r.scanOne(query, storeID, productID)
}

func (r *LedgerRepo) scanOne(query, storeID, productID string) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	err := r.q.QueryRow(context.Background(), query, storeID, productID).Scan(
		&e.StoreID, &e.ProductID, &e.OnShelf, &e.PendingDelivery, &e.PendingReturn, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.LedgerEntry{StoreID: storeID, ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return &e, nil
}

// Upsert inserta o actualiza los tres contadores del par (tienda, producto).
// El CHECK de no negatividad de la tabla respalda el invariante del motor.
func (r *LedgerRepo) Upsert(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO store_ledger (store_id, product_id, on_shelf, pending_delivery, pending_return, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET on_shelf = EXCLUDED.on_shelf,
			pending_delivery = EXCLUDED.pending_delivery,
			pending_return = EXCLUDED.pending_return,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.StoreID, entry.ProductID, entry.OnShelf, entry.PendingDelivery, entry.PendingReturn,
	)
	if err != nil {
		return fmt.Errorf("upsert ledger entry: %w", err)
	}
	return nil
}

// ListByStore lista las entradas del ledger de una tienda.
func (r *LedgerRepo) ListByStore(storeID string, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT store_id, product_id, on_shelf, pending_delivery, pending_return, updated_at
		FROM store_ledger WHERE store_id = $1
		ORDER BY product_id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ledger by store: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.StoreID, &e.ProductID, &e.OnShelf, &e.PendingDelivery, &e.PendingReturn, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

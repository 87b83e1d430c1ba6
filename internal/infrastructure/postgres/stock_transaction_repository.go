package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/CampoStock-api/internal/domain"
	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

const txnColumns = `id, store_id, product_id, requested_by, origin_visit_id, type, quantity,
	status, remark, admin_remark, decided_by, decided_at, created_at, updated_at`

// Create persiste una transacción nueva (status pending).
func (r *StockTransactionRepo) Create(txn *entity.StockTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (` + txnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.StoreID, txn.ProductID, txn.RequestedBy, txn.OriginVisitID,
		txn.Type, txn.Quantity, txn.Status, txn.Remark, txn.AdminRemark,
		txn.DecidedBy, txn.DecidedAt, txn.CreatedAt, txn.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownReference
		}
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por id. Devuelve nil si no existe.
func (r *StockTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE id = $1`
	return r.scanOne(query, id)
}

// GetForUpdate obtiene y bloquea la fila (SELECT FOR UPDATE). Devuelve nil si no existe.
func (r *StockTransactionRepo) GetForUpdate(id string) (*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions WHERE id = $1 FOR UPDATE`
	return r.scanOne(query, id)
}

func (r *StockTransactionRepo) scanOne(query, id string) (*entity.StockTransaction, error) {
	var t entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.StoreID, &t.ProductID, &t.RequestedBy, &t.OriginVisitID,
		&t.Type, &t.Quantity, &t.Status, &t.Remark, &t.AdminRemark,
		&t.DecidedBy, &t.DecidedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &t, nil
}

// UpdateStatus persiste el cambio de estado y el sello de decisión.
// quantity y las referencias no se tocan: inmutables desde la creación.
func (r *StockTransactionRepo) UpdateStatus(txn *entity.StockTransaction) error {
	query := `
		UPDATE stock_transactions
		SET status = $2, admin_remark = $3, decided_by = $4, decided_at = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Status, txn.AdminRemark, txn.DecidedBy, txn.DecidedAt, txn.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock transaction status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista transacciones con filtros opcionales, referencias resueltas y total.
func (r *StockTransactionRepo) List(filter repository.TransactionFilter, limit, offset int) ([]*repository.TransactionListItem, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	pos := 1

	addFilter := func(clause string, value any) {
		where += fmt.Sprintf(clause, pos)
		args = append(args, value)
		pos++
	}
	if filter.Status != "" {
		addFilter(" AND t.status = $%d", filter.Status)
	}
	if filter.Type != "" {
		addFilter(" AND t.type = $%d", filter.Type)
	}
	if filter.StoreID != "" {
		addFilter(" AND t.store_id = $%d", filter.StoreID)
	}
	if filter.ProductID != "" {
		addFilter(" AND t.product_id = $%d", filter.ProductID)
	}
	if filter.ActorID != "" {
		addFilter(" AND t.requested_by = $%d", filter.ActorID)
	}
	if filter.From != nil {
		addFilter(" AND t.created_at >= $%d", *filter.From)
	}
	if filter.To != nil {
		addFilter(" AND t.created_at <= $%d", *filter.To)
	}

	countQuery := `SELECT COUNT(*) FROM stock_transactions t` + where
	var total int
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stock transactions: %w", err)
	}

	query := `
		SELECT t.id, t.store_id, t.product_id, t.requested_by, t.origin_visit_id, t.type,
			t.quantity, t.status, t.remark, t.admin_remark, t.decided_by, t.decided_at,
			t.created_at, t.updated_at, s.name, p.sku, p.name
		FROM stock_transactions t
		JOIN stores s ON s.id = t.store_id
		JOIN products p ON p.id = t.product_id` + where +
		fmt.Sprintf(` ORDER BY t.created_at DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var list []*repository.TransactionListItem
	for rows.Next() {
		var item repository.TransactionListItem
		if err := rows.Scan(
			&item.ID, &item.StoreID, &item.ProductID, &item.RequestedBy, &item.OriginVisitID,
			&item.Type, &item.Quantity, &item.Status, &item.Remark, &item.AdminRemark,
			&item.DecidedBy, &item.DecidedAt, &item.CreatedAt, &item.UpdatedAt,
			&item.StoreName, &item.ProductSKU, &item.ProductName,
		); err != nil {
			return nil, 0, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &item)
	}
	return list, total, rows.Err()
}

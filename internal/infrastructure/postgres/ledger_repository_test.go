package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuerier registra cada sentencia en orden y responde con filas guionadas.
type stubQuerier struct {
	ops  []string
	scan func(dest ...any) error
}

func (q *stubQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.ops = append(q.ops, sql)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (q *stubQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.ops = append(q.ops, sql)
	return nil, nil
}

func (q *stubQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.ops = append(q.ops, sql)
	return stubRow{scan: q.scan}
}

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error { return r.scan(dest...) }

func ledgerRowScan(dest ...any) error {
	*dest[0].(*string) = "store-1"
	*dest[1].(*string) = "prod-1"
	*dest[2].(*int) = 4
	*dest[3].(*int) = 20
	*dest[4].(*int) = 0
	*dest[5].(*time.Time) = time.Now()
	return nil
}

// El bloqueo de fila solo existe si la fila existe: GetForUpdate debe
// materializar el par antes del SELECT FOR UPDATE para que dos reservas
// concurrentes sobre un par nuevo se serialicen igual que sobre uno viejo.
func TestGetForUpdate_MaterializaLaFilaAntesDeBloquear(t *testing.T) {
	q := &stubQuerier{scan: ledgerRowScan}
	repo := NewLedgerRepository(q)

	entry, err := repo.GetForUpdate("store-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, 4, entry.OnShelf)
	assert.Equal(t, 20, entry.PendingDelivery)

	require.Len(t, q.ops, 2)
	assert.Contains(t, q.ops[0], "INSERT INTO store_ledger")
	assert.Contains(t, q.ops[0], "ON CONFLICT (store_id, product_id) DO NOTHING")
	assert.Contains(t, q.ops[1], "FOR UPDATE")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(q.ops[1]), "SELECT"))
}

// La lectura sin bloqueo no debe materializar nada: una consulta de un par
// nunca movido devuelve ceros sin crear la fila.
func TestGet_NoMaterializaNiBloquea(t *testing.T) {
	q := &stubQuerier{scan: func(dest ...any) error { return pgx.ErrNoRows }}
	repo := NewLedgerRepository(q)

	entry, err := repo.Get("store-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "store-1", entry.StoreID)
	assert.Zero(t, entry.OnShelf)

	require.Len(t, q.ops, 1)
	assert.NotContains(t, q.ops[0], "INSERT")
	assert.NotContains(t, q.ops[0], "FOR UPDATE")
}

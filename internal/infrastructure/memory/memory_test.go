package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/CampoStock-api/internal/domain/entity"
	"github.com/jhoicas/CampoStock-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRunner_RestauraSnapshotSiFallaElCallback(t *testing.T) {
	store := NewStore()
	store.SetLedger(entity.LedgerEntry{StoreID: "s1", ProductID: "p1", OnShelf: 10})

	fallo := errors.New("algo salió mal")
	err := NewTxRunner(store).Run(context.Background(), func(
		txnRepo repository.StockTransactionRepository,
		ledgerRepo repository.LedgerRepository,
		aggRepo repository.ProductAggregateRepository,
	) error {
		entry, err := ledgerRepo.GetForUpdate("s1", "p1")
		require.NoError(t, err)
		entry.OnShelf = 99
		require.NoError(t, ledgerRepo.Upsert(entry))
		require.NoError(t, aggRepo.AddToWarehouseStock("p1", 5))
		require.NoError(t, txnRepo.Create(&entity.StockTransaction{ID: "t1"}))
		return fallo
	})
	require.ErrorIs(t, err, fallo)

	entry, err := store.Ledger().Get("s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, entry.OnShelf, "el error deshace la mutación del ledger")

	agg, err := store.Aggregates().Get("p1")
	require.NoError(t, err)
	assert.Zero(t, agg.WarehouseStock)

	txn, err := store.Transactions().GetByID("t1")
	require.NoError(t, err)
	assert.Nil(t, txn, "la inserción también se deshace")
}

func TestVistas_DevuelvenCopias(t *testing.T) {
	store := NewStore()
	store.SetLedger(entity.LedgerEntry{StoreID: "s1", ProductID: "p1", OnShelf: 10})

	entry, err := store.Ledger().Get("s1", "p1")
	require.NoError(t, err)
	entry.OnShelf = 500

	fresh, err := store.Ledger().Get("s1", "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, fresh.OnShelf, "mutar la copia no toca el almacén")
}

func TestLedgerView_EntradaPerezosa(t *testing.T) {
	store := NewStore()

	entry, err := store.Ledger().Get("s1", "p1")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "s1", entry.StoreID)
	assert.Zero(t, entry.OnShelf)
	assert.Zero(t, entry.PendingDelivery)
	assert.Zero(t, entry.PendingReturn)
}

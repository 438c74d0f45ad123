package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/models"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// corruptBucket пишет невалидный JSON прямо в bucket
func corruptBucket(t *testing.T, store *Storage, bucket, key []byte) {
	t.Helper()

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put(key, []byte("{not json"))
	})
	require.NoError(t, err)
}

func TestStorage_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// До сохранения GetSession должен вернуть ErrSessionNotFound
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.SessionData{
		Username: "mor_2314",
		Token:    "opaque-token",
		ClientID: "client-1",
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Logout: документ удаляется
	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Повторное удаление отсутствующей сессии не ошибка
	require.NoError(t, store.DeleteSession(ctx))
}

func TestStorage_SessionCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	corruptBucket(t, store, bucketSession, sessionKey)

	// Поврежденная сессия равнозначна отсутствующей
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пустая база: пустая корзина, не ошибка
	state, err := store.GetCart(ctx)
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Empty(t, state.Items)

	state.Items["1"] = storage.CartLine{
		Product:  models.Product{ID: "1", Title: "Backpack", Price: 109.95},
		Quantity: 2,
	}
	state.Items["2"] = storage.CartLine{
		Product:  models.Product{ID: "2", Title: "Shirt", Price: 22.3},
		Quantity: 1,
	}
	state.Order = []string{"1", "2"}
	require.NoError(t, store.SaveCart(ctx, state))

	got, err := store.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, state.Items, got.Items)
	assert.Equal(t, []string{"1", "2"}, got.Order)
}

func TestStorage_CartCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	corruptBucket(t, store, bucketCart, cartKey)

	state, err := store.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
	assert.Empty(t, state.Order)
}

func TestStorage_CartOrderReconciled(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Документ со списком order, разошедшимся с items
	state := storage.NewCartState()
	state.Items["2"] = storage.CartLine{
		Product:  models.Product{ID: "2", Title: "Shirt", Price: 22.3},
		Quantity: 1,
	}
	state.Order = []string{"1", "2", "2"} // id=1 отсутствует, id=2 дублируется
	require.NoError(t, store.SaveCart(ctx, state))

	got, err := store.GetCart(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, got.Order)
}

func TestStorage_LocalProductsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Пустая база: пустой список, не ошибка
	list, err := store.GetLocalProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	products := []models.Product{
		{ID: "1700000000001", Title: "Handmade Mug", Price: 15, Category: "decor"},
		{ID: "1700000000000", Title: "Poster", Price: 9.5, Category: "decor"},
	}
	require.NoError(t, store.SaveLocalProducts(ctx, products))

	got, err := store.GetLocalProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, products, got)
}

func TestStorage_LocalProductsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	corruptBucket(t, store, bucketLocalProducts, localProductsKey)

	list, err := store.GetLocalProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStorage_NumericProductIDDocument(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Документ с числовым id (например, записанный ранней версией клиента)
	err := store.db.Update(func(tx *bbolt.Tx) error {
		doc := `[{"id":7,"title":"Chain Bracelet","price":695}]`
		return tx.Bucket(bucketLocalProducts).Put(localProductsKey, []byte(doc))
	})
	require.NoError(t, err)

	list, err := store.GetLocalProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.ID("7"), list[0].ID)
}

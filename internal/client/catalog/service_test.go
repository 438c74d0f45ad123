package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/querycache"
	"github.com/iudanet/storefront/internal/client/storage/boltdb"
	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/validation"
)

// catalogCalls считает запросы к удаленному каталогу по эндпоинтам
type catalogCalls struct {
	list       atomic.Int64
	byID       atomic.Int64
	categories atomic.Int64
	create     atomic.Int64
}

// newTestCatalog поднимает mock каталога и сервис поверх чистого хранилища
func newTestCatalog(t *testing.T) (*Service, *products.Store, *catalogCalls) {
	t.Helper()

	calls := &catalogCalls{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/products":
			calls.list.Add(1)
			_, _ = w.Write([]byte(`[
				{"id":2,"title":"remote two","price":5,"category":"electronics"},
				{"id":3,"title":"remote three","price":20,"category":"jewelery"}
			]`))
		case r.Method == http.MethodGet && r.URL.Path == "/products/categories":
			calls.categories.Add(1)
			_, _ = w.Write([]byte(`["electronics","jewelery"]`))
		case r.Method == http.MethodGet && r.URL.Path == "/products/3":
			calls.byID.Add(1)
			_, _ = w.Write([]byte(`{"id":3,"title":"remote three","price":20,"category":"jewelery"}`))
		case r.Method == http.MethodPost && r.URL.Path == "/products":
			calls.create.Add(1)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":21}`))
		default:
			calls.byID.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	ctx := context.Background()
	boltStorage, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "catalog_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, boltStorage.Close())
	})

	local, err := products.New(ctx, boltStorage)
	require.NoError(t, err)

	service := NewService(api.NewClient(server.URL, ""), querycache.New(), local)
	return service, local, calls
}

func TestService_ProductsMergesLocalFirst(t *testing.T) {
	ctx := context.Background()
	service, local, calls := newTestCatalog(t)

	require.NoError(t, local.Add(ctx, models.Product{ID: "2", Title: "local two", Price: 7}))
	require.NoError(t, local.Add(ctx, models.Product{ID: "1", Title: "local one", Price: 3}))

	merged, err := service.Products(ctx)
	require.NoError(t, err)

	// Локальные (новые первыми) впереди, коллизия id=2 в пользу локальной
	require.Len(t, merged, 3)
	assert.Equal(t, []string{"1", "2", "3"}, ids(merged))
	assert.Equal(t, "local two", merged[1].Title)

	// Список пришел из кэша при повторном чтении
	_, err = service.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.list.Load())
}

func TestService_BrowseAppliesQuery(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestCatalog(t)

	view, err := service.Browse(ctx, Query{Category: "jewelery", Page: 1})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, models.ID("3"), view.Items[0].ID)
}

func TestService_CategoriesCached(t *testing.T) {
	ctx := context.Background()
	service, _, calls := newTestCatalog(t)

	categories, err := service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"electronics", "jewelery"}, categories)

	_, err = service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.categories.Load())
}

func TestService_ResolveLocalNeverFetches(t *testing.T) {
	ctx := context.Background()
	service, local, calls := newTestCatalog(t)

	require.NoError(t, local.Add(ctx, models.Product{ID: "1700000000000", Title: "Handmade Mug"}))

	p, err := service.Resolve(ctx, "1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "Handmade Mug", p.Title)

	// Локальный товар разрешается без единого сетевого вызова
	assert.Zero(t, calls.list.Load())
	assert.Zero(t, calls.byID.Load())
}

func TestService_ResolveUsesListCache(t *testing.T) {
	ctx := context.Background()
	service, _, calls := newTestCatalog(t)

	// Список уже загружен (переход со страницы каталога)
	_, err := service.Products(ctx)
	require.NoError(t, err)

	p, err := service.Resolve(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "remote three", p.Title)

	// Одиночный эндпоинт не вызывался
	assert.Zero(t, calls.byID.Load())
}

func TestService_ResolveFetchesOnCacheMiss(t *testing.T) {
	ctx := context.Background()
	service, _, calls := newTestCatalog(t)

	p, err := service.Resolve(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "remote three", p.Title)
	assert.Equal(t, int64(1), calls.byID.Load())

	// Повторное разрешение того же id идет из кэша
	_, err = service.Resolve(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.byID.Load())
}

func TestService_ResolveNotFound(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestCatalog(t)

	_, err := service.Resolve(ctx, "404")
	require.Error(t, err)
	// Вызывающий отличает "не найден" от транспортной ошибки
	assert.ErrorIs(t, err, api.ErrNotFound)
}

func TestService_CreateSynthesizesLocalProduct(t *testing.T) {
	ctx := context.Background()
	service, local, calls := newTestCatalog(t)

	created := time.UnixMilli(1700000000000)
	service.now = func() time.Time { return created }

	form := validation.ProductForm{
		Title:       "Handmade Mug",
		Description: "Ceramic",
		Price:       "15",
		Category:    "decor",
		Image:       "https://img/mug.png",
	}

	p, err := service.Create(ctx, form)
	require.NoError(t, err)
	assert.Equal(t, int64(1), calls.create.Load())

	// id это миллисекундный timestamp клиента, не id из ответа сервера
	assert.Equal(t, models.ID("1700000000000"), p.ID)
	assert.InDelta(t, 15.0, p.Price, 0.0001)

	// Товар записан в локальное хранилище
	got, err := local.GetByID("1700000000000")
	require.NoError(t, err)
	assert.Equal(t, "Handmade Mug", got.Title)
}

func TestService_CreateInvalidFormSkipsNetwork(t *testing.T) {
	ctx := context.Background()
	service, local, calls := newTestCatalog(t)

	_, err := service.Create(ctx, validation.ProductForm{Title: "no price"})
	require.Error(t, err)

	// Валидация блокирует отправку целиком
	assert.Zero(t, calls.create.Load())
	assert.Empty(t, local.List())
}

// Сквозной сценарий: создание -> вершина списка -> деталь без сети
func TestService_CreateThenBrowseThenResolve(t *testing.T) {
	ctx := context.Background()
	service, _, calls := newTestCatalog(t)

	created := time.UnixMilli(1700000000000)
	service.now = func() time.Time { return created }

	p, err := service.Create(ctx, validation.ProductForm{
		Title:       "Handmade Mug",
		Description: "Ceramic",
		Price:       "15",
		Category:    "decor",
		Image:       "https://img/mug.png",
	})
	require.NoError(t, err)

	view, err := service.Browse(ctx, Query{Page: 1})
	require.NoError(t, err)
	require.NotEmpty(t, view.Items)
	assert.Equal(t, p.ID, view.Items[0].ID, "созданный товар наверху списка")

	fetchesBefore := calls.byID.Load()
	resolved, err := service.Resolve(ctx, string(p.ID))
	require.NoError(t, err)
	assert.Equal(t, "Handmade Mug", resolved.Title)
	assert.Equal(t, fetchesBefore, calls.byID.Load(), "деталь локального товара без сети")
}

func TestService_RefreshForcesRefetch(t *testing.T) {
	ctx := context.Background()
	service, _, calls := newTestCatalog(t)

	_, err := service.Products(ctx)
	require.NoError(t, err)

	service.Refresh()

	_, err = service.Products(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.list.Load())
}

// Package catalog combines the two product provenances, the remote
// catalog and locally created products, into one consistent read path:
// a merged, filterable listing and an id lookup that prefers local state
// over the cache over the network.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/querycache"
	"github.com/iudanet/storefront/internal/models"
	"github.com/iudanet/storefront/internal/validation"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

// Cache keys and staleness windows. The full product list and each
// product-by-id entry have independent keys and windows; categories
// change rarely and keep a longer one.
const (
	productsCacheKey   = "products"
	categoriesCacheKey = "categories"
	productCachePrefix = "product:"

	productsStaleAfter   = time.Minute
	categoriesStaleAfter = 10 * time.Minute
	productStaleAfter    = time.Minute
)

// Service is the catalog read/write facade used by the CLI.
type Service struct {
	apiClient *api.Client
	cache     *querycache.Cache
	local     *products.Store
	now       func() time.Time
}

// NewService creates a new catalog service.
func NewService(apiClient *api.Client, cache *querycache.Cache, local *products.Store) *Service {
	return &Service{
		apiClient: apiClient,
		cache:     cache,
		local:     local,
		now:       time.Now,
	}
}

// Products returns the merged product list: locally created products
// first (newest first), then the remote catalog, deduplicated by id.
// The remote list is served through the query cache.
func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	remote, err := s.remoteProducts(ctx)
	if err != nil {
		return nil, err
	}

	return Merge(s.local.List(), remote), nil
}

// Browse returns one page of the catalog for the given query.
func (s *Service) Browse(ctx context.Context, query Query) (View, error) {
	merged, err := s.Products(ctx)
	if err != nil {
		return View{}, err
	}

	return query.Apply(merged), nil
}

// Categories returns the remote category names through the query cache.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	value, err := s.cache.GetOrFetch(ctx, categoriesCacheKey, categoriesStaleAfter, func(ctx context.Context) (any, error) {
		return s.apiClient.ListCategories(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categories, ok := value.([]string)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for categories")
	}
	return categories, nil
}

// Resolve returns the product with the given id, consulting sources in
// strict priority order and short-circuiting at the first hit:
//
//  1. the local products store: a locally created product is always
//     resolvable without touching the network;
//  2. an already-fetched product list in the query cache;
//  3. a single fetch of the product-by-id endpoint, through the cache
//     under this id's own key and staleness window.
//
// A remote 404 surfaces as api.ErrNotFound: a product that only ever
// existed locally and has since been cleared is reported as not found,
// never as a stale success.
func (s *Service) Resolve(ctx context.Context, id string) (models.Product, error) {
	// 1. Локальный товар: сеть не трогаем
	if p, err := s.local.GetByID(id); err == nil {
		return p, nil
	}

	// 2. Загруженный ранее список: сеть не трогаем
	if value, ok := s.cache.Peek(productsCacheKey); ok {
		if list, ok := value.([]models.Product); ok {
			for _, p := range list {
				if string(p.ID) == id {
					return p, nil
				}
			}
		}
	}

	// 3. Одиночный запрос к каталогу
	value, err := s.cache.GetOrFetch(ctx, productCachePrefix+id, productStaleAfter, func(ctx context.Context) (any, error) {
		slog.Debug("product not in local store or cache, fetching", "id", id)
		return s.apiClient.GetProduct(ctx, id)
	})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to resolve product %s: %w", id, err)
	}

	p, ok := value.(*models.Product)
	if !ok || p == nil {
		return models.Product{}, fmt.Errorf("unexpected cache entry type for product %s", id)
	}
	return *p, nil
}

// Create validates the form, submits the product to the remote API and,
// on success, records a locally owned copy with a fresh client-generated
// id. The server acknowledgement is not trusted as source of truth: the
// remote API does not actually persist created products, the local store
// does.
func (s *Service) Create(ctx context.Context, form validation.ProductForm) (models.Product, error) {
	price, err := validation.ValidateProductForm(form)
	if err != nil {
		return models.Product{}, err
	}

	req := pkgapi.CreateProductRequest{
		Title:       form.Title,
		Description: form.Description,
		Price:       price,
		Category:    form.Category,
		Image:       form.Image,
	}
	if _, err := s.apiClient.CreateProduct(ctx, req); err != nil {
		return models.Product{}, err
	}

	// Миллисекундный timestamp как id: уникален в пределах клиента
	p := models.Product{
		ID:          models.ID(strconv.FormatInt(s.now().UnixMilli(), 10)),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
	}

	if err := s.local.Add(ctx, p); err != nil {
		return models.Product{}, err
	}

	return p, nil
}

// Refresh drops the cached product list and categories, forcing the next
// read to hit the network.
func (s *Service) Refresh() {
	s.cache.Invalidate(productsCacheKey)
	s.cache.Invalidate(categoriesCacheKey)
}

func (s *Service) remoteProducts(ctx context.Context) ([]models.Product, error) {
	value, err := s.cache.GetOrFetch(ctx, productsCacheKey, productsStaleAfter, func(ctx context.Context) (any, error) {
		return s.apiClient.ListProducts(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	list, ok := value.([]models.Product)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type for products")
	}
	return list, nil
}

package catalog

import (
	"fmt"
	"sort"

	"github.com/iudanet/storefront/internal/models"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 10

// SortOrder задает сортировку по цене
type SortOrder string

const (
	SortNone SortOrder = "none" // порядок слияния сохраняется как есть
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder validates a user-supplied sort value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case SortNone, SortAsc, SortDesc:
		return SortOrder(s), nil
	case "":
		return SortNone, nil
	default:
		return "", fmt.Errorf("invalid sort order %q (expected none, asc or desc)", s)
	}
}

// Query describes one catalog view request: an exact category filter
// ("all" or empty means no filter), a price sort and a page number.
type Query struct {
	Category string
	Sort     SortOrder
	Page     int
}

// View is one page of the filtered, sorted, merged catalog.
type View struct {
	Items      []models.Product
	Page       int // запрошенная страница после clamping
	TotalPages int
	Total      int // размер всей выборки до пагинации
}

// Merge combines locally created products with the remote catalog into
// one deduplicated list. Local products go first, keeping their
// newest-first order; a remote product whose id is already taken by a
// local one is silently dropped: the local copy wins, this is policy,
// not a defect.
func Merge(local, remote []models.Product) []models.Product {
	merged := make([]models.Product, 0, len(local)+len(remote))
	seen := make(map[models.ID]bool, len(local))

	for _, p := range local {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
	}
	for _, p := range remote {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		merged = append(merged, p)
	}

	return merged
}

// Apply runs the filter, sort and pagination pipeline over a merged
// product list. The requested page is clamped into [1, totalPages], so
// an out-of-range page is never observable downstream.
func (q Query) Apply(items []models.Product) View {
	out := items

	// Фильтр категории: точное, регистрозависимое сравнение
	if q.Category != "" && q.Category != "all" {
		filtered := make([]models.Product, 0, len(out))
		for _, p := range out {
			if p.Category == q.Category {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	// Сортировка по цене. Стабильная: при равных ценах сохраняется
	// относительный порядок до сортировки. SortNone не трогает порядок
	// слияния вообще.
	switch q.Sort {
	case SortAsc:
		out = sortedByPrice(out, false)
	case SortDesc:
		out = sortedByPrice(out, true)
	}

	total := len(out)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := min(start+PageSize, total)
	if start > total {
		start = total
	}

	return View{
		Items:      out[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// sortedByPrice возвращает отсортированную копию, не трогая вход
func sortedByPrice(items []models.Product, desc bool) []models.Product {
	out := make([]models.Product, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].Price > out[j].Price
		}
		return out[i].Price < out[j].Price
	})

	return out
}

package catalog

import (
	"strings"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// Filters holds the independent listing constraints. An empty value means
// "no constraint", never "must be empty".
type Filters struct {
	League string // league id, exact match
	Brand  string // brand id, exact match
	Model  string // model id, exact match
	Query  string // free text, case-insensitive substring on name or description
}

// FilterProducts returns the products satisfying every constraint: category
// slug membership (slugs == nil means match everything) AND each non-empty
// filter. Input order is preserved; no sorting happens here.
func FilterProducts(products []models.Product, slugs []string, f Filters) []models.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if slugs != nil && !containsSlug(slugs, p.Category) {
			continue
		}
		if f.League != "" && p.League != f.League {
			continue
		}
		if f.Brand != "" && p.BrandID != f.Brand {
			continue
		}
		if f.Model != "" && p.ModelID != f.Model {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func containsSlug(slugs []string, slug string) bool {
	for _, s := range slugs {
		if s == slug {
			return true
		}
	}
	return false
}

// matchesQuery expects query to be lowercased already.
func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query)
}

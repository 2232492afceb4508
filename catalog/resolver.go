// Package catalog holds the storefront's in-memory catalog logic: category
// slug resolution, listing filters and the product recommendation lists.
// Everything here is a pure function over already-fetched snapshots — no
// I/O, no errors. Missing data degrades to empty or literal matches.
package catalog

import "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"

// ResolveCategorySlugs computes the set of product-category slugs a listing
// query should accept.
//
// A selected subcategory always wins and is matched exactly as a leaf, even
// when a category is also selected. A selected category expands to itself
// plus its direct children — one level only, grandchildren are never
// included. A category slug that doesn't resolve to an entity is still
// matched literally. With neither selected, nil is returned, meaning no
// category constraint at all.
func ResolveCategorySlugs(categories []models.Category, category, subcategory string) []string {
	if subcategory != "" {
		return []string{subcategory}
	}
	if category == "" {
		return nil
	}

	var parent *models.Category
	for i := range categories {
		if categories[i].Slug == category {
			parent = &categories[i]
			break
		}
	}

	slugs := []string{category}
	if parent == nil {
		return slugs
	}
	for i := range categories {
		if categories[i].ParentID != nil && *categories[i].ParentID == parent.ID {
			slugs = append(slugs, categories[i].Slug)
		}
	}
	return slugs
}

package catalog

import (
	"sort"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// MaxSuggestions caps both recommendation lists on the product page.
const MaxSuggestions = 4

// Category slugs with hand-authored cross-sell adjacency.
const (
	CategoryFootwear    = "chuteiras"
	CategoryJerseys     = "camisas"
	CategoryAccessories = "acessorios"
)

// Similarity weights, one per attribute axis. Additive; a candidate
// matching every axis scores the sum.
const (
	weightCategory        = 5
	weightBrand           = 4
	weightModel           = 3
	weightLeague          = 2
	weightAutomotiveBrand = 4
	weightAutomotiveModel = 3
)

// complementaryCategories is the fixed cross-sell adjacency table. Footwear
// pulls accessories, jerseys pull footwear and accessories, and everything
// else — including every automotive category — pulls jerseys. The automotive
// fallthrough is long-standing storefront behavior and is kept on purpose.
func complementaryCategories(category string) []string {
	switch category {
	case CategoryFootwear:
		return []string{CategoryAccessories}
	case CategoryJerseys:
		return []string{CategoryFootwear, CategoryAccessories}
	default:
		return []string{CategoryJerseys}
	}
}

// Complementary returns up to MaxSuggestions "goes well with this" products
// for the viewed product, drawn from the adjacency table's categories in
// catalog order. No scoring, no randomization.
func Complementary(viewed models.Product, products []models.Product) []models.Product {
	targets := complementaryCategories(viewed.Category)

	out := make([]models.Product, 0, MaxSuggestions)
	for _, p := range products {
		if !containsSlug(targets, p.Category) {
			continue
		}
		out = append(out, p)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// similarityScore accumulates the attribute-match weights between the
// viewed product and a candidate. Optional attributes contribute only when
// present on both sides; absent never equals absent.
func similarityScore(viewed, candidate models.Product) int {
	score := 0
	if candidate.Category == viewed.Category {
		score += weightCategory
	}
	if viewed.BrandID != "" && candidate.BrandID == viewed.BrandID {
		score += weightBrand
	}
	if viewed.ModelID != "" && candidate.ModelID == viewed.ModelID {
		score += weightModel
	}
	if viewed.League != "" && candidate.League == viewed.League {
		score += weightLeague
	}
	if viewed.Automotive.Brand != "" && candidate.Automotive.Brand == viewed.Automotive.Brand {
		score += weightAutomotiveBrand
	}
	if viewed.Automotive.Model != "" && candidate.Automotive.Model == viewed.Automotive.Model {
		score += weightAutomotiveModel
	}
	return score
}

// Related returns up to MaxSuggestions products ranked by descending
// similarity to the viewed product. The viewed product itself is excluded
// by id, zero-score candidates are dropped entirely, and ties keep catalog
// order (the sort must be stable for deterministic output).
func Related(viewed models.Product, products []models.Product) []models.Product {
	type scored struct {
		product models.Product
		score   int
	}

	candidates := make([]scored, 0, len(products))
	for _, p := range products {
		if p.ID == viewed.ID {
			continue
		}
		if s := similarityScore(viewed, p); s > 0 {
			candidates = append(candidates, scored{product: p, score: s})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	out := make([]models.Product, len(candidates))
	for i, c := range candidates {
		out[i] = c.product
	}
	return out
}

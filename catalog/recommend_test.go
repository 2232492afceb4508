package catalog

import (
	"testing"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func TestComplementary_AdjacencyTable(t *testing.T) {
	catalogProducts := []models.Product{
		newProduct("camisa-1", CategoryJerseys),
		newProduct("chuteira-1", CategoryFootwear),
		newProduct("meiao-1", CategoryAccessories),
		newProduct("filtro-oleo", "motor"),
	}

	tests := []struct {
		name           string
		viewedCategory string
		wantCategories map[string]bool
	}{
		{
			name:           "footwear pulls accessories only",
			viewedCategory: CategoryFootwear,
			wantCategories: map[string]bool{CategoryAccessories: true},
		},
		{
			name:           "jerseys pull footwear and accessories",
			viewedCategory: CategoryJerseys,
			wantCategories: map[string]bool{CategoryFootwear: true, CategoryAccessories: true},
		},
		{
			name:           "automotive category falls through to jerseys",
			viewedCategory: "motor",
			wantCategories: map[string]bool{CategoryJerseys: true},
		},
		{
			name:           "accessories fall through to jerseys",
			viewedCategory: CategoryAccessories,
			wantCategories: map[string]bool{CategoryJerseys: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viewed := newProduct("viewed", tt.viewedCategory)
			got := Complementary(viewed, catalogProducts)
			if len(got) == 0 {
				t.Fatal("expected at least one complementary product")
			}
			for _, p := range got {
				if !tt.wantCategories[p.Category] {
					t.Errorf("product %s has category %s, outside allowed set %v",
						p.Slug, p.Category, tt.wantCategories)
				}
			}
		})
	}
}

func TestComplementary_TakesFirstFourInCatalogOrder(t *testing.T) {
	viewed := newProduct("viewed", CategoryFootwear)
	var catalogProducts []models.Product
	for _, slug := range []string{"a1", "a2", "a3", "a4", "a5", "a6"} {
		catalogProducts = append(catalogProducts, newProduct(slug, CategoryAccessories))
	}

	got := Complementary(viewed, catalogProducts)
	want := []string{"a1", "a2", "a3", "a4"}
	if len(got) != MaxSuggestions {
		t.Fatalf("expected %d products, got %d", MaxSuggestions, len(got))
	}
	for i := range want {
		if got[i].Slug != want[i] {
			t.Fatalf("catalog order not kept: got %v, want %v", slugsOf(got), want)
		}
	}
}

func TestComplementary_EmptyCatalog(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	if got := Complementary(viewed, nil); len(got) != 0 {
		t.Fatalf("empty catalog must produce empty result, got %d", len(got))
	}
}

func TestRelated_ZeroScoreExcluded(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	viewed.BrandID = "nike"
	viewed.League = "brasileirao"

	unrelated := newProduct("unrelated", "motor")
	unrelated.BrandID = "bosch"
	unrelated.League = ""

	got := Related(viewed, []models.Product{viewed, unrelated})
	if len(got) != 0 {
		t.Fatalf("candidate sharing no attribute must be excluded, got %v", slugsOf(got))
	}
}

func TestRelated_SelfExcluded(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)

	twin := newProduct("twin", CategoryJerseys)

	got := Related(viewed, []models.Product{viewed, twin})
	for _, p := range got {
		if p.ID == viewed.ID {
			t.Fatal("viewed product must never appear in its own related list")
		}
	}
	if len(got) != 1 || got[0].Slug != "twin" {
		t.Fatalf("got %v, want [twin]", slugsOf(got))
	}
}

func TestRelated_StableRanking(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	viewed.League = "brasileirao"

	// scores: x=5 (category), y=5 (category), z=2 (league only), zero=0
	x := newProduct("x", CategoryJerseys)
	y := newProduct("y", CategoryJerseys)
	z := newProduct("z", CategoryFootwear)
	z.League = "brasileirao"
	zero := newProduct("zero", "motor")

	got := Related(viewed, []models.Product{x, y, z, zero})
	want := []string{"x", "y", "z"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", slugsOf(got), want)
	}
	for i := range want {
		if got[i].Slug != want[i] {
			t.Fatalf("ranking not stable: got %v, want %v", slugsOf(got), want)
		}
	}
}

func TestRelated_TruncatesToFourHighestScoring(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	viewed.BrandID = "nike"

	var catalogProducts []models.Product
	// four strong candidates: category (+5) and brand (+4)
	for _, slug := range []string{"s1", "s2", "s3", "s4"} {
		p := newProduct(slug, CategoryJerseys)
		p.BrandID = "nike"
		catalogProducts = append(catalogProducts, p)
	}
	// six weaker candidates: category only (+5)
	for _, slug := range []string{"w1", "w2", "w3", "w4", "w5", "w6"} {
		catalogProducts = append(catalogProducts, newProduct(slug, CategoryJerseys))
	}

	got := Related(viewed, catalogProducts)
	if len(got) != MaxSuggestions {
		t.Fatalf("expected exactly %d results, got %d", MaxSuggestions, len(got))
	}
	want := []string{"s1", "s2", "s3", "s4"}
	for i := range want {
		if got[i].Slug != want[i] {
			t.Fatalf("got %v, want the four highest-scoring %v", slugsOf(got), want)
		}
	}
}

func TestRelated_WeightsAccumulate(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	viewed.BrandID = "nike"
	viewed.ModelID = "vapor"
	viewed.League = "brasileirao"

	full := newProduct("full", CategoryJerseys)
	full.BrandID = "nike"
	full.ModelID = "vapor"
	full.League = "brasileirao"

	if got := similarityScore(viewed, full); got != 14 {
		t.Fatalf("full sports match: score %d, want 14", got)
	}

	brandOnly := newProduct("brand-only", CategoryFootwear)
	brandOnly.BrandID = "nike"
	if got := similarityScore(viewed, brandOnly); got != 4 {
		t.Fatalf("brand-only match: score %d, want 4", got)
	}
}

func TestRelated_AutomotiveFreeTextFallback(t *testing.T) {
	viewed := newProduct("viewed", "motor")
	viewed.Automotive = models.AutomotiveFields{Brand: "Bosch", Model: "Gol G5"}

	match := newProduct("match", "freios")
	match.Automotive = models.AutomotiveFields{Brand: "Bosch", Model: "Gol G5"}

	// brand +4 and model +3, different category
	if got := similarityScore(viewed, match); got != 7 {
		t.Fatalf("automotive fields match: score %d, want 7", got)
	}
}

func TestRelated_AbsentFieldsNeverMatch(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)

	candidate := newProduct("candidate", CategoryFootwear)
	// both sides have empty brand/model/league/automotive fields

	if got := similarityScore(viewed, candidate); got != 0 {
		t.Fatalf("absent attributes must not contribute, got score %d", got)
	}
}

func TestRelated_EmptyCatalog(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	if got := Related(viewed, nil); len(got) != 0 {
		t.Fatalf("empty catalog must produce empty result, got %d", len(got))
	}
}

func TestRelated_FewerThanFourWhenInsufficient(t *testing.T) {
	viewed := newProduct("viewed", CategoryJerseys)
	only := newProduct("only", CategoryJerseys)

	got := Related(viewed, []models.Product{viewed, only})
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

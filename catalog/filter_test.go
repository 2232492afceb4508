package catalog

import (
	"testing"

	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func newProduct(slug, category string) models.Product {
	return models.Product{
		ID:       uuid.Must(uuid.NewV7()),
		Slug:     slug,
		Name:     slug,
		Category: category,
		Module:   models.ModuleSports,
		Active:   true,
	}
}

func slugsOf(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Slug
	}
	return out
}

func TestFilterProducts_NilSlugsMatchesEverything(t *testing.T) {
	products := []models.Product{
		newProduct("p1", "camisas"),
		newProduct("p2", "motor"),
	}

	got := FilterProducts(products, nil, Filters{})
	if len(got) != 2 {
		t.Fatalf("expected all products, got %d", len(got))
	}
}

func TestFilterProducts_CategoryMembership(t *testing.T) {
	products := []models.Product{
		newProduct("p1", "camisas"),
		newProduct("p2", "chuteiras"),
		newProduct("p3", "motor"),
	}

	got := FilterProducts(products, []string{"camisas", "chuteiras"}, Filters{})
	want := []string{"p1", "p2"}
	if len(got) != 2 || got[0].Slug != want[0] || got[1].Slug != want[1] {
		t.Fatalf("got %v, want %v", slugsOf(got), want)
	}
}

func TestFilterProducts_CaseInsensitiveTextSearch(t *testing.T) {
	p := newProduct("camisa-azul", "camisas")
	p.Name = "Camisa Azul"
	p.Description = "Camisa oficial azul"

	got := FilterProducts([]models.Product{p}, nil, Filters{Query: "CAMISA"})
	if len(got) != 1 {
		t.Fatal("query CAMISA must match product named Camisa Azul")
	}

	got = FilterProducts([]models.Product{p}, nil, Filters{Query: "vermelha"})
	if len(got) != 0 {
		t.Fatal("query vermelha must not match")
	}
}

func TestFilterProducts_TextSearchMatchesDescription(t *testing.T) {
	p := newProduct("kit-pastilha", "freios")
	p.Name = "Kit Pastilha"
	p.Description = "Pastilha de freio dianteira cerâmica"

	got := FilterProducts([]models.Product{p}, nil, Filters{Query: "CERÂMICA"})
	if len(got) != 1 {
		t.Fatal("query must match on description, case-insensitively")
	}
}

// Conjunction: combined filters must equal the intersection of each filter
// applied independently.
func TestFilterProducts_Conjunction(t *testing.T) {
	p1 := newProduct("p1", "camisas")
	p1.League = "brasileirao"
	p1.BrandID = "nike"
	p1.ModelID = "vapor"
	p1.Name = "Camisa Flamengo"

	p2 := newProduct("p2", "camisas")
	p2.League = "brasileirao"
	p2.BrandID = "adidas"
	p2.Name = "Camisa Palmeiras"

	p3 := newProduct("p3", "chuteiras")
	p3.BrandID = "nike"
	p3.ModelID = "vapor"
	p3.Name = "Chuteira Vapor"

	products := []models.Product{p1, p2, p3}
	slugs := []string{"camisas"}
	f := Filters{League: "brasileirao", Brand: "nike", Model: "vapor", Query: "camisa"}

	combined := FilterProducts(products, slugs, f)

	inCombined := make(map[string]bool)
	for _, p := range combined {
		inCombined[p.Slug] = true
	}

	independent := [][]models.Product{
		FilterProducts(products, slugs, Filters{}),
		FilterProducts(products, nil, Filters{League: f.League}),
		FilterProducts(products, nil, Filters{Brand: f.Brand}),
		FilterProducts(products, nil, Filters{Model: f.Model}),
		FilterProducts(products, nil, Filters{Query: f.Query}),
	}

	// intersection of the independent result sets
	counts := make(map[string]int)
	for _, res := range independent {
		for _, p := range res {
			counts[p.Slug]++
		}
	}
	for slug, n := range counts {
		if n == len(independent) && !inCombined[slug] {
			t.Errorf("product %s is in every independent result but missing from combined", slug)
		}
	}
	for slug := range inCombined {
		if counts[slug] != len(independent) {
			t.Errorf("product %s is in combined but not in every independent result", slug)
		}
	}

	if len(combined) != 1 || combined[0].Slug != "p1" {
		t.Fatalf("combined filters: got %v, want [p1]", slugsOf(combined))
	}
}

func TestFilterProducts_EmptyFilterIsNoConstraint(t *testing.T) {
	p := newProduct("p1", "camisas") // no league, no brand, no model

	got := FilterProducts([]models.Product{p}, nil, Filters{})
	if len(got) != 1 {
		t.Fatal("a product with absent attributes must pass empty filters")
	}
}

func TestFilterProducts_PreservesInputOrder(t *testing.T) {
	products := []models.Product{
		newProduct("z", "camisas"),
		newProduct("a", "camisas"),
		newProduct("m", "camisas"),
	}

	got := FilterProducts(products, []string{"camisas"}, Filters{})
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i].Slug != want[i] {
			t.Fatalf("order not preserved: got %v, want %v", slugsOf(got), want)
		}
	}
}

func TestFilterProducts_EmptyCatalog(t *testing.T) {
	got := FilterProducts(nil, []string{"camisas"}, Filters{Query: "camisa"})
	if len(got) != 0 {
		t.Fatalf("empty catalog must produce empty result, got %d", len(got))
	}
}

package catalog_cache

import (
	"testing"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	InvalidateAll()

	products := []models.Product{{Slug: "chuteira-predator-24"}}
	categories := []models.Category{{Slug: "chuteiras"}}
	SetSnapshot(models.ModuleSports, products, categories)

	gotProducts, gotCategories, ok := GetSnapshot(models.ModuleSports)
	if !ok {
		t.Fatal("fresh snapshot not returned")
	}
	if len(gotProducts) != 1 || gotProducts[0].Slug != "chuteira-predator-24" {
		t.Fatalf("products: got %+v", gotProducts)
	}
	if len(gotCategories) != 1 || gotCategories[0].Slug != "chuteiras" {
		t.Fatalf("categories: got %+v", gotCategories)
	}
}

func TestSnapshotsAreModuleScoped(t *testing.T) {
	InvalidateAll()

	SetSnapshot(models.ModuleSports, []models.Product{{Slug: "s"}}, nil)

	if _, _, ok := GetSnapshot(models.ModuleAutomotive); ok {
		t.Fatal("automotive must not see the sports snapshot")
	}
}

func TestInvalidate(t *testing.T) {
	InvalidateAll()

	SetSnapshot(models.ModuleSports, []models.Product{{Slug: "s"}}, nil)
	SetSnapshot(models.ModuleAutomotive, []models.Product{{Slug: "a"}}, nil)

	Invalidate(models.ModuleSports)

	if _, _, ok := GetSnapshot(models.ModuleSports); ok {
		t.Fatal("sports snapshot should be gone")
	}
	if _, _, ok := GetSnapshot(models.ModuleAutomotive); !ok {
		t.Fatal("automotive snapshot should survive a sports invalidation")
	}
}

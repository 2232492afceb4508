package filter_controller

import (
	"testing"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func TestPriceRange(t *testing.T) {
	products := []models.Product{
		{Price: 349.90},
		{Price: 49.90},
		{Price: 699.90},
	}

	pr := priceRange(products)
	if pr == nil {
		t.Fatal("got nil price range")
	}
	if pr.Min != 49.90 || pr.Max != 699.90 {
		t.Fatalf("got min=%.2f max=%.2f, want 49.90/699.90", pr.Min, pr.Max)
	}
}

func TestPriceRange_NoProducts(t *testing.T) {
	if pr := priceRange(nil); pr != nil {
		t.Fatalf("empty catalog: got %+v, want nil", pr)
	}
}

func TestAvailability(t *testing.T) {
	products := []models.Product{
		{Variants: models.VariantsList{{Size: "42", Stock: 3}}},
		{Variants: models.VariantsList{{Size: "M", Stock: 0}}},
		{Variants: models.VariantsList{}},
	}

	data := availability(products)
	if data.InStock != 1 || data.OutOfStock != 2 {
		t.Fatalf("got in=%d out=%d, want 1/2", data.InStock, data.OutOfStock)
	}
}

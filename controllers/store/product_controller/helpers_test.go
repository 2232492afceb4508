package product_controller

import (
	"testing"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func makeProducts(n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		products[i].Name = "p"
	}
	return products
}

func TestPaginateProducts_FullPages(t *testing.T) {
	products := makeProducts(25)

	page, meta := paginateProducts(products, 1, 12)
	if len(page) != 12 {
		t.Fatalf("page 1: got %d products, want 12", len(page))
	}
	if meta.Total != 25 || meta.TotalPages != 3 {
		t.Fatalf("meta: got total=%d pages=%d, want 25/3", meta.Total, meta.TotalPages)
	}
}

func TestPaginateProducts_LastPartialPage(t *testing.T) {
	products := makeProducts(25)

	page, _ := paginateProducts(products, 3, 12)
	if len(page) != 1 {
		t.Fatalf("page 3: got %d products, want 1", len(page))
	}
}

func TestPaginateProducts_PageBeyondEnd(t *testing.T) {
	products := makeProducts(5)

	page, meta := paginateProducts(products, 10, 12)
	if len(page) != 0 {
		t.Fatalf("page past end: got %d products, want 0", len(page))
	}
	if meta.Page != 10 {
		t.Fatalf("meta keeps the requested page: got %d", meta.Page)
	}
}

func TestPaginateProducts_Empty(t *testing.T) {
	page, meta := paginateProducts(nil, 1, 12)
	if len(page) != 0 || meta.Total != 0 || meta.TotalPages != 0 {
		t.Fatalf("empty list: got len=%d total=%d pages=%d", len(page), meta.Total, meta.TotalPages)
	}
}

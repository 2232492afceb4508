package category_controller

import (
	"testing"

	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func category(slug string, parent *models.Category) models.Category {
	c := models.Category{
		ID:     uuid.Must(uuid.NewV7()),
		Slug:   slug,
		Name:   slug,
		Module: models.ModuleSports,
		Active: true,
	}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	return c
}

func productIn(slug string) models.Product {
	return models.Product{Category: slug}
}

func TestBuildCategoryTree_ParentCountIncludesChildren(t *testing.T) {
	chuteiras := category("chuteiras", nil)
	campo := category("chuteiras-campo", &chuteiras)
	society := category("chuteiras-society", &chuteiras)
	camisas := category("camisas", nil)

	products := []models.Product{
		productIn("chuteiras"),
		productIn("chuteiras-campo"),
		productIn("chuteiras-campo"),
		productIn("chuteiras-society"),
		productIn("camisas"),
	}

	tree := BuildCategoryTree(
		[]models.Category{chuteiras, campo, society, camisas},
		products,
	)

	if len(tree) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(tree))
	}

	var chuteirasNode *models.StorefrontCategory
	for i := range tree {
		if tree[i].Slug == "chuteiras" {
			chuteirasNode = &tree[i]
		}
	}
	if chuteirasNode == nil {
		t.Fatal("chuteiras missing from tree")
	}

	// 1 direct + 2 campo + 1 society
	if chuteirasNode.ProductCount != 4 {
		t.Fatalf("chuteiras count: got %d, want 4", chuteirasNode.ProductCount)
	}
	if len(chuteirasNode.Subcategories) != 2 {
		t.Fatalf("chuteiras children: got %d, want 2", len(chuteirasNode.Subcategories))
	}
	for _, sub := range chuteirasNode.Subcategories {
		if sub.Slug == "chuteiras-campo" && sub.ProductCount != 2 {
			t.Fatalf("campo count: got %d, want 2", sub.ProductCount)
		}
	}
}

func TestBuildCategoryTree_DanglingProductSlugIgnored(t *testing.T) {
	camisas := category("camisas", nil)

	tree := BuildCategoryTree(
		[]models.Category{camisas},
		[]models.Product{productIn("deleted-category")},
	)

	if len(tree) != 1 {
		t.Fatalf("got %d nodes, want 1", len(tree))
	}
	if tree[0].ProductCount != 0 {
		t.Fatalf("camisas count: got %d, want 0", tree[0].ProductCount)
	}
}

func TestBuildCategoryTree_Empty(t *testing.T) {
	tree := BuildCategoryTree(nil, nil)
	if tree == nil || len(tree) != 0 {
		t.Fatalf("empty input: got %v, want empty non-nil slice", tree)
	}
}

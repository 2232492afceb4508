package catalog

import (
	"reflect"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

func newCategory(slug string, parent *models.Category) models.Category {
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

// buildTree returns A (parent) -> B, C (children of A) -> D (child of B).
func buildTree() []models.Category {
	a := newCategory("a", nil)
	b := newCategory("b", &a)
	c := newCategory("c", &a)
	d := newCategory("d", &b)
	return []models.Category{a, b, c, d}
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func TestResolveCategorySlugs_OneLevelDeep(t *testing.T) {
	cats := buildTree()

	got := ResolveCategorySlugs(cats, "a", "")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(sortedCopy(got), want) {
		t.Fatalf("selecting a: got %v, want %v", got, want)
	}
	for _, slug := range got {
		if slug == "d" {
			t.Fatal("grandchild d must never be included when selecting a")
		}
	}
}

func TestResolveCategorySlugs_SubcategoryPrecedence(t *testing.T) {
	cats := buildTree()

	got := ResolveCategorySlugs(cats, "a", "c")
	if !reflect.DeepEqual(got, []string{"c"}) {
		t.Fatalf("category=a subcategory=c: got %v, want [c]", got)
	}
}

func TestResolveCategorySlugs_SubcategoryIsLeafExact(t *testing.T) {
	cats := buildTree()

	// b has a child d, but subcategory selection never expands.
	got := ResolveCategorySlugs(cats, "", "b")
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Fatalf("subcategory=b: got %v, want [b]", got)
	}
}

func TestResolveCategorySlugs_UnknownCategoryMatchedLiterally(t *testing.T) {
	cats := buildTree()

	got := ResolveCategorySlugs(cats, "nonexistent", "")
	if !reflect.DeepEqual(got, []string{"nonexistent"}) {
		t.Fatalf("unknown category: got %v, want literal [nonexistent]", got)
	}
}

func TestResolveCategorySlugs_NoSelectionMatchesEverything(t *testing.T) {
	cats := buildTree()

	if got := ResolveCategorySlugs(cats, "", ""); got != nil {
		t.Fatalf("no selection: got %v, want nil (no constraint)", got)
	}
}

func TestResolveCategorySlugs_EmptyCategoryList(t *testing.T) {
	got := ResolveCategorySlugs(nil, "a", "")
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("empty list: got %v, want literal [a]", got)
	}
}

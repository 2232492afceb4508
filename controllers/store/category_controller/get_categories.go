package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	store_product "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/product_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetStorefrontCategories godoc
// @Summary List storefront categories
// @Description Returns the category tree of one module with per-category product counts. Parent counts include their direct subcategories.
// @Tags Store - Categories
// @Produce json
// @Param module query string false "Store module" Enums(sports, automotive) default(sports)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetStorefrontCategories(c *gin.Context) {
	module, ok := store_product.ParseModule(c)
	if !ok {
		return
	}

	products, categories, err := store_product.LoadModuleCatalog(module)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog"))
		return
	}

	tree := BuildCategoryTree(categories, products)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}

// BuildCategoryTree assembles parents with their direct children and counts
// products per slug. A parent's count covers itself plus its children, the
// same set the listing filter would match.
func BuildCategoryTree(categories []models.Category, products []models.Product) []models.StorefrontCategory {
	countBySlug := make(map[string]int, len(categories))
	for _, p := range products {
		countBySlug[p.Category]++
	}

	tree := make([]models.StorefrontCategory, 0)
	for _, parent := range categories {
		if parent.ParentID != nil {
			continue
		}

		node := models.StorefrontCategory{
			ID:           parent.ID,
			Slug:         parent.Slug,
			Name:         parent.Name,
			ProductCount: countBySlug[parent.Slug],
		}

		for _, child := range categories {
			if child.ParentID == nil || *child.ParentID != parent.ID {
				continue
			}
			node.Subcategories = append(node.Subcategories, models.StorefrontCategory{
				ID:           child.ID,
				Slug:         child.Slug,
				Name:         child.Name,
				ProductCount: countBySlug[child.Slug],
			})
			node.ProductCount += countBySlug[child.Slug]
		}

		tree = append(tree, node)
	}

	return tree
}

package product_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/catalog"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description List the active products of one module with category, league, brand, model and text filters applied conjunctively
// @Tags Store - Products
// @Produce json
// @Param module query string false "Store module" Enums(sports, automotive) default(sports)
// @Param category query string false "Category slug (expands to its direct subcategories)"
// @Param subcategory query string false "Subcategory slug (exact match, overrides category)"
// @Param league query string false "League id"
// @Param brand query string false "Brand id"
// @Param model query string false "Model id"
// @Param q query string false "Free text search over name and description"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	module, ok := ParseModule(c)
	if !ok {
		return
	}
	page, limit := parsePagination(c)

	products, categories, err := LoadModuleCatalog(module)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog"))
		return
	}

	slugs := catalog.ResolveCategorySlugs(categories, c.Query("category"), c.Query("subcategory"))

	filtered := catalog.FilterProducts(products, slugs, catalog.Filters{
		League: c.Query("league"),
		Brand:  c.Query("brand"),
		Model:  c.Query("model"),
		Query:  c.Query("q"),
	})

	pageItems, meta := paginateProducts(filtered, page, limit)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", toProductCards(pageItems), meta))
}

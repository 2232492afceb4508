package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/catalog"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetStorefrontProductBySlug godoc
// @Summary Get a storefront product
// @Description Fetch one product by slug with its related and complementary recommendation lists (at most 4 each)
// @Tags Store - Products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{slug} [get]
func GetStorefrontProductBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		Where("slug = ? AND active = ?", slug, true).
		First(&product).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			log.Printf("[store.products] failed to fetch %s: %v", slug, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Recommendations degrade to empty lists if the catalog cannot be
	// loaded; the product page must still render.
	related := make([]models.StorefrontProductResponse, 0)
	complementary := make([]models.StorefrontProductResponse, 0)

	products, _, err := LoadModuleCatalog(product.Module)
	if err != nil {
		log.Printf("[store.products] recommendations unavailable for %s: %v", slug, err)
	} else {
		related = toProductCards(catalog.Related(product, products))
		complementary = toProductCards(catalog.Complementary(product, products))
	}

	go incrementProductViews(product.ID)

	detail := models.StorefrontProductDetail{
		Product:       product,
		Related:       related,
		Complementary: complementary,
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}

package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalog_cache "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/cache"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product. Home sections referencing its id simply stop showing it.
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.Gorm.WithContext(ctx).
		First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if err := config.Gorm.WithContext(ctx).Delete(&product).Error; err != nil {
		log.Printf("[cms.products] failed to delete %s: %v", product.ID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}

	catalog_cache.Invalidate(product.Module)
	log.Printf("[cms.products] deleted: %s (%s)", product.Slug, product.ID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", nil))
}

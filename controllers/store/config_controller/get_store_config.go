package config_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	store_product "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/product_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetStoreConfig godoc
// @Summary Get storefront configuration
// @Description Returns the public store configuration of one module: store name, announcement bar, banners and the WhatsApp contact number
// @Tags Store - Config
// @Produce json
// @Param module query string false "Store module" Enums(sports, automotive) default(sports)
// @Success 200 {object} models.ApiResponse{data=models.StoreConfig}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/config [get]
func GetStoreConfig(c *gin.Context) {
	module, ok := store_product.ParseModule(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cfg models.StoreConfig
	if err := config.Gorm.WithContext(ctx).
		Where("module = ?", module).
		First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store is not configured"))
		} else {
			log.Printf("[store.config] failed to fetch config: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store config fetched successfully", cfg))
}

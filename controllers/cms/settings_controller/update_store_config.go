package settings_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UpdateStoreConfig godoc
// @Summary Update store configuration
// @Description Partially update the store configuration of one module, creating the row on first write
// @Tags CMS - Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param module path string true "Store module" Enums(sports, automotive)
// @Param config body models.UpdateStoreConfigRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.StoreConfig}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/config/{module} [patch]
func UpdateStoreConfig(c *gin.Context) {
	module := c.Param("module")
	if !models.ValidModule(module) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
		return
	}

	var req models.UpdateStoreConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cfg models.StoreConfig
	err := config.Gorm.WithContext(ctx).
		Where("module = ?", module).
		First(&cfg).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	// First write creates the config row
	if err == gorm.ErrRecordNotFound {
		cfg = models.StoreConfig{Module: module, Banners: models.BannerList{}}
	}

	if req.StoreName != nil {
		cfg.StoreName = *req.StoreName
	}
	if req.WhatsAppNumber != nil {
		cfg.WhatsAppNumber = *req.WhatsAppNumber
	}
	if req.Announcement != nil {
		cfg.Announcement = *req.Announcement
	}
	if req.Banners != nil {
		cfg.Banners = models.BannerList(*req.Banners)
	}

	if cfg.StoreName == "" || cfg.WhatsAppNumber == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "store_name and whatsapp_number are required"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Save(&cfg).Error; err != nil {
		log.Printf("[cms.settings] failed to save config for %s: %v", module, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save store config"))
		return
	}

	log.Printf("[cms.settings] store config updated: module=%s", module)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Store config updated successfully", cfg))
}

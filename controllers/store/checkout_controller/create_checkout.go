package checkout_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// CreateCheckout godoc
// @Summary Hand off a cart to WhatsApp
// @Description Renders the client-side cart as a WhatsApp message and returns the wa.me deep link for the module's store number. Nothing is persisted.
// @Tags Store - Checkout
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Cart contents"
// @Success 200 {object} models.ApiResponse{data=models.CheckoutResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Store not configured"
// @Failure 500 {object} models.ApiResponse
// @Router /store/checkout [post]
func CreateCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var cfg models.StoreConfig
	if err := config.Gorm.WithContext(ctx).
		Where("module = ?", req.Module).
		First(&cfg).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Store is not configured"))
		} else {
			log.Printf("[store.checkout] failed to fetch config: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	message, total := services.BuildCheckoutMessage(cfg.StoreName, req)

	link, err := services.BuildWhatsAppLink(cfg.WhatsAppNumber, message)
	if err != nil {
		log.Printf("[store.checkout] bad whatsapp number for module %s: %v", req.Module, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Store WhatsApp number is not configured correctly"))
		return
	}

	log.Printf("[store.checkout] cart handed off: module=%s items=%d total=%.2f", req.Module, len(req.Items), total)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Checkout link created", models.CheckoutResponse{
		URL:   link,
		Total: total,
	}))
}

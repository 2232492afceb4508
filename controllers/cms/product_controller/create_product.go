package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/cache"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the media upload service used by product handlers.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// CreateProduct godoc
// @Summary Create a product
// @Description Create a product with Cloudinary media URLs. Category, league, brand and model references are stored as-is and never validated against their tables.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Duplicate slug"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Media.Primary.URL == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Primary image URL is required"))
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := models.Product{
		Slug:        req.Slug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		League:      req.League,
		BrandID:     req.BrandID,
		ModelID:     req.ModelID,
		Automotive:  req.Automotive,
		Price:       req.Price,
		Media:       req.Media,
		Variants:    models.VariantsList(req.Variants),
		Module:      req.Module,
		Active:      active,
		Views:       0,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("slug = ?", req.Slug).
		Count(&count).Error; err != nil {
		log.Printf("[cms.products] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A product with this slug already exists"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[cms.products] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product: "+err.Error()))
		return
	}

	catalog_cache.Invalidate(product.Module)
	log.Printf("[cms.products] created: %s (%s)", product.Slug, product.ID)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}

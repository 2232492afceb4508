package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// UploadProductMedia godoc
// @Summary Upload product images
// @Description Upload one or more images to Cloudinary and return their secure URLs. The product itself is created or updated separately with these URLs.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param images formData file true "Image files"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/media [post]
func UploadProductMedia(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Media upload is not configured"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form: "+err.Error()))
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No images provided"))
		return
	}
	if len(files) > 10 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At most 10 images per upload"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	urls, err := cloudinaryService.UploadMultipleImages(ctx, files, "petrocino/products")
	if err != nil {
		log.Printf("[cms.products] upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{"urls": urls}))
}

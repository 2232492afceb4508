package section_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	store_product "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/product_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetHomeSections godoc
// @Summary List home page sections
// @Description Returns the active curated sections of one module in position order, each with its product ids resolved to product cards. Ids pointing at missing or inactive products are silently skipped.
// @Tags Store - Sections
// @Produce json
// @Param module query string false "Store module" Enums(sports, automotive) default(sports)
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/sections [get]
func GetHomeSections(c *gin.Context) {
	module, ok := store_product.ParseModule(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sections := make([]models.HomeSection, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Order("position ASC").
		Find(&sections).Error; err != nil {
		log.Printf("[store.sections] failed to fetch sections: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch sections"))
		return
	}

	products, _, err := store_product.LoadModuleCatalog(module)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog"))
		return
	}

	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	responses := make([]models.HomeSectionResponse, 0, len(sections))
	for _, section := range sections {
		resp := models.HomeSectionResponse{
			ID:       section.ID,
			Title:    section.Title,
			Position: section.Position,
			Products: make([]models.StorefrontProductResponse, 0, len(section.ProductIDs)),
		}
		for _, id := range section.ProductIDs {
			if p, found := byID[id]; found {
				resp.Products = append(resp.Products, models.NewStorefrontProductResponse(p))
			}
		}
		responses = append(responses, resp)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sections fetched successfully", responses))
}

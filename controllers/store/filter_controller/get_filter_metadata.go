package filter_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	store_category "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/category_controller"
	store_product "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/product_controller"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// GetFilterMetadata godoc
// @Summary Get storefront filter metadata
// @Description Returns everything the listing filter UI needs for one module: category tree, brand/model/league options, price range and availability counts
// @Tags Store - Filters
// @Produce json
// @Param module query string false "Store module" Enums(sports, automotive) default(sports)
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	module, ok := store_product.ParseModule(c)
	if !ok {
		return
	}

	products, categories, err := store_product.LoadModuleCatalog(module)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load catalog"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	metadata := models.FilterMetadata{
		Categories:   store_category.BuildCategoryTree(categories, products),
		Brands:       make([]models.FilterOption, 0),
		Models:       make([]models.FilterOption, 0),
		Leagues:      make([]models.FilterOption, 0),
		PriceRange:   priceRange(products),
		Availability: availability(products),
	}

	var brands []models.Brand
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Order("name ASC").
		Find(&brands).Error; err != nil {
		log.Printf("[store.filters] failed to fetch brands: %v", err)
	}
	for _, b := range brands {
		metadata.Brands = append(metadata.Brands, models.FilterOption{Label: b.Name, Value: b.ID.String()})
	}

	var productModels []models.ProductModel
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		log.Printf("[store.filters] failed to fetch models: %v", err)
	}
	for _, m := range productModels {
		metadata.Models = append(metadata.Models, models.FilterOption{Label: m.Name, Value: m.ID.String()})
	}

	var leagues []models.League
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Order("name ASC").
		Find(&leagues).Error; err != nil {
		log.Printf("[store.filters] failed to fetch leagues: %v", err)
	}
	for _, l := range leagues {
		metadata.Leagues = append(metadata.Leagues, models.FilterOption{Label: l.Name, Value: l.ID.String()})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}

func priceRange(products []models.Product) *models.PriceRange {
	if len(products) == 0 {
		return nil
	}
	pr := &models.PriceRange{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}
	return pr
}

func availability(products []models.Product) *models.AvailabilityData {
	data := &models.AvailabilityData{}
	for i := range products {
		if products[i].InStock() {
			data.InStock++
		} else {
			data.OutOfStock++
		}
	}
	return data
}

package product_controller

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/cache"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// ParseModule resolves the module query param. Missing means sports; an
// unknown value is a client error.
func ParseModule(c *gin.Context) (string, bool) {
	module := c.DefaultQuery("module", models.ModuleSports)
	if !models.ValidModule(module) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid module: "+module))
		return "", false
	}
	return module, true
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// ─────────────────────────────────────────────────────────────
// Catalog snapshot loader
// ─────────────────────────────────────────────────────────────

// LoadModuleCatalog returns the active products and categories of one
// module, newest products first. Served from the snapshot cache when fresh;
// otherwise fetched wholesale and cached.
func LoadModuleCatalog(module string) ([]models.Product, []models.Category, error) {
	if products, categories, ok := catalog_cache.GetSnapshot(module); ok {
		return products, categories, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products := make([]models.Product, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, nil, err
	}

	categories := make([]models.Category, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("module = ? AND active = ?", module, true).
		Find(&categories).Error; err != nil {
		return nil, nil, err
	}

	catalog_cache.SetSnapshot(module, products, categories)
	log.Printf("[store.catalog] snapshot refreshed: module=%s products=%d categories=%d",
		module, len(products), len(categories))

	return products, categories, nil
}

// paginateProducts slices one page out of the filtered list and builds the
// pagination meta.
func paginateProducts(products []models.Product, page, limit int) ([]models.Product, *models.Pagination) {
	total := len(products)
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	return products[start:end], meta
}

func toProductCards(products []models.Product) []models.StorefrontProductResponse {
	cards := make([]models.StorefrontProductResponse, 0, len(products))
	for _, p := range products {
		cards = append(cards, models.NewStorefrontProductResponse(p))
	}
	return cards
}

// incrementProductViews bumps the view counter without blocking the request.
func incrementProductViews(id uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := config.Gorm.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("[store.products] failed to increment views for %s: %v", id, err)
	}
}

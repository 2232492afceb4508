package store_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/category_controller"
	store_checkout "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/checkout_controller"
	store_config "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/config_controller"
	store_filter "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/filter_controller"
	store_product "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/product_controller"
	store_question "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/question_controller"
	store_section "github.com/joaquimpetrocino/ecommerce-petrocino-sub001/controllers/store/section_controller"
)

// SetupStorefrontRoutes registers the public storefront API. Everything here
// is anonymous; the module query param selects the sports or automotive shop.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)           // List with filters
		products.GET("/:slug", store_product.GetStorefrontProductBySlug) // Single product + recommendations
	}

	// Category tree with product counts
	store.GET("/categories", store_category.GetStorefrontCategories)

	// Home page sections
	store.GET("/sections", store_section.GetHomeSections)

	// Store configuration (branding, contact, banners)
	store.GET("/config", store_config.GetStoreConfig)

	// Filter metadata for the listing sidebar
	store.GET("/filters/metadata", store_filter.GetFilterMetadata)

	// WhatsApp checkout hand-off
	store.POST("/checkout", store_checkout.CreateCheckout)

	// Customer product questions
	store.POST("/questions", store_question.CreateQuestion)
}

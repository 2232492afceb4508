package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/config"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/models"
	"github.com/joaquimpetrocino/ecommerce-petrocino-sub001/services"
)

// ════════════════════════════════════════════════════════════
// Configuration Maps
// ════════════════════════════════════════════════════════════

// pathToResourceType maps URL path segments to resource types
var pathToResourceType = map[string]string{
	"categories": models.ResourceTypeCategory,
	"products":   models.ResourceTypeProduct,
	"brands":     models.ResourceTypeBrand,
	"models":     models.ResourceTypeModel,
	"leagues":    models.ResourceTypeLeague,
	"sections":   models.ResourceTypeSection,
	"config":     models.ResourceTypeStoreConfig,
	"questions":  models.ResourceTypeQuestion,
	"admins":     models.ResourceTypeAdmin,
}

// resourceTypeToNameField maps resource types to their display field
var resourceTypeToNameField = map[string]string{
	models.ResourceTypeCategory:    "slug",
	models.ResourceTypeProduct:     "name",
	models.ResourceTypeBrand:       "name",
	models.ResourceTypeModel:       "name",
	models.ResourceTypeLeague:      "name",
	models.ResourceTypeSection:     "title",
	models.ResourceTypeStoreConfig: "module",
	models.ResourceTypeQuestion:    "customer_name",
	models.ResourceTypeAdmin:       "email",
}

// methodToActionVerb maps HTTP methods to action verbs
var methodToActionVerb = map[string]string{
	"POST":   "created",
	"PATCH":  "updated",
	"PUT":    "updated",
	"DELETE": "deleted",
}

// ════════════════════════════════════════════════════════════
// Activity Logging Middleware
// ════════════════════════════════════════════════════════════

// ActivityLoggingMiddleware logs admin mutations automatically.
// Must be used AFTER AdminAuthMiddleware (which sets adminID and adminEmail).
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only mutations are logged
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		adminIDRaw, adminIDExists := c.Get("adminID")
		adminEmailRaw, adminEmailExists := c.Get("adminEmail")

		if !adminIDExists || !adminEmailExists {
			log.Printf("[activity-logging] warning: admin info not in context")
			c.Next()
			return
		}

		adminID := uuid.UUID{}
		if id, ok := adminIDRaw.(uuid.UUID); ok {
			adminID = id
		} else if idStr, ok := adminIDRaw.(string); ok {
			parsedID, err := uuid.Parse(idStr)
			if err != nil {
				log.Printf("[activity-logging] failed to parse admin ID: %v", err)
				c.Next()
				return
			}
			adminID = parsedID
		}

		adminEmail := adminEmailRaw.(string)

		resourceType := extractResourceType(c.Request.URL.Path)
		if resourceType == "" {
			log.Printf("[activity-logging] could not determine resource type from path: %s", c.Request.URL.Path)
			c.Next()
			return
		}

		resourceID := c.Param("id")
		if resourceID == "" {
			// Creates have no :id; the store config route keys by module
			resourceID = c.Param("module")
		}

		actionVerb := methodToActionVerb[c.Request.Method]
		if actionVerb == "" {
			log.Printf("[activity-logging] unknown HTTP method: %s", c.Request.Method)
			c.Next()
			return
		}

		// Full action name, e.g. "created_product", "updated_store_config"
		action := actionVerb + "_" + resourceType

		// "Before" snapshot only makes sense for updates and deletes
		var beforeObject interface{}
		if c.Request.Method != "POST" && resourceID != "" {
			beforeObject = fetchResourceFromDB(resourceType, resourceID)
		}

		resourceName := extractResourceName(resourceType, beforeObject)

		c.Next()

		statusCode := c.Writer.Status()
		isSuccess := statusCode >= 200 && statusCode < 300

		if isSuccess {
			var afterObject interface{}
			if resourceID != "" {
				afterObject = fetchResourceFromDB(resourceType, resourceID)
			}

			updatedResourceName := extractResourceName(resourceType, afterObject)
			if updatedResourceName == "" {
				updatedResourceName = resourceName
			}

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: updatedResourceName,
				Changes:      services.CreateChanges(beforeObject, afterObject),
				Status:       models.StatusSuccess,
				Context:      c,
			})

			log.Printf("[activity-logging] success: %s by %s", action, adminEmail)
		} else {
			errorMsg := "Request failed with status " + http.StatusText(statusCode)

			services.LogActivity(services.LogActivityRequest{
				AdminID:      adminID,
				AdminEmail:   adminEmail,
				Action:       action,
				ResourceType: resourceType,
				ResourceID:   resourceID,
				ResourceName: resourceName,
				Status:       models.StatusFailed,
				ErrorMessage: errorMsg,
				Context:      c,
			})

			log.Printf("[activity-logging] failed: %s by %s - status %d", action, adminEmail, statusCode)
		}
	}
}

// ════════════════════════════════════════════════════════════
// Helper Functions
// ════════════════════════════════════════════════════════════

// extractResourceType extracts the resource type from a URL path,
// e.g. "/api/v1/admin/brands/123" → "brand"
func extractResourceType(path string) string {
	parts := strings.Split(path, "/")

	// Walk backwards: the resource segment is the last non-ID part,
	// e.g. ["", "api", "v1", "admin", "brands", "<uuid>"]
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" && !isIDParam(parts[i]) {
			if resourceType, exists := pathToResourceType[parts[i]]; exists {
				return resourceType
			}
			singular := strings.TrimSuffix(parts[i], "s")
			if resourceType, exists := pathToResourceType[singular]; exists {
				return resourceType
			}
		}
	}

	return ""
}

// isIDParam checks if a path segment is an ID parameter
func isIDParam(segment string) bool {
	if segment == ":id" || segment == "" {
		return true
	}
	if _, err := uuid.Parse(segment); err == nil {
		return true
	}
	return false
}

// fetchResourceFromDB loads the current row for before/after snapshots
func fetchResourceFromDB(resourceType, resourceID string) interface{} {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	switch resourceType {
	case models.ResourceTypeProduct:
		var product models.Product
		if err := config.Gorm.WithContext(ctx).First(&product, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch product %s: %v", resourceID, err)
			return nil
		}
		return product

	case models.ResourceTypeCategory:
		var category models.Category
		if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch category %s: %v", resourceID, err)
			return nil
		}
		return category

	case models.ResourceTypeBrand:
		var brand models.Brand
		if err := config.Gorm.WithContext(ctx).First(&brand, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch brand %s: %v", resourceID, err)
			return nil
		}
		return brand

	case models.ResourceTypeModel:
		var productModel models.ProductModel
		if err := config.Gorm.WithContext(ctx).First(&productModel, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch model %s: %v", resourceID, err)
			return nil
		}
		return productModel

	case models.ResourceTypeLeague:
		var league models.League
		if err := config.Gorm.WithContext(ctx).First(&league, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch league %s: %v", resourceID, err)
			return nil
		}
		return league

	case models.ResourceTypeSection:
		var section models.HomeSection
		if err := config.Gorm.WithContext(ctx).First(&section, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch section %s: %v", resourceID, err)
			return nil
		}
		return section

	case models.ResourceTypeStoreConfig:
		// Store config is addressed by module, not by row id
		var cfg models.StoreConfig
		if err := config.Gorm.WithContext(ctx).First(&cfg, "module = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch store config %s: %v", resourceID, err)
			return nil
		}
		return cfg

	case models.ResourceTypeQuestion:
		var question models.Question
		if err := config.Gorm.WithContext(ctx).First(&question, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch question %s: %v", resourceID, err)
			return nil
		}
		return question

	case models.ResourceTypeAdmin:
		var admin models.Admin
		if err := config.Gorm.WithContext(ctx).First(&admin, "id = ?", resourceID).Error; err != nil {
			log.Printf("[activity-logging] failed to fetch admin %s: %v", resourceID, err)
			return nil
		}
		return admin

	default:
		log.Printf("[activity-logging] unknown resource type: %s", resourceType)
		return nil
	}
}

// extractResourceName extracts the display name from a resource object
func extractResourceName(resourceType string, obj interface{}) string {
	if obj == nil {
		return ""
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return ""
	}

	var resourceMap map[string]interface{}
	if err := json.Unmarshal(data, &resourceMap); err != nil {
		return ""
	}

	fieldName := resourceTypeToNameField[resourceType]
	if fieldName == "" {
		return ""
	}

	if value, exists := resourceMap[fieldName]; exists {
		return toString(value)
	}

	return ""
}

// toString converts any value to string
func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

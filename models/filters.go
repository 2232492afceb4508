package models

// FilterMetadata represents all filter data for the storefront listing UI
// of one module.
type FilterMetadata struct {
	Categories   []StorefrontCategory `json:"categories"`
	Brands       []FilterOption       `json:"brands"`
	Models       []FilterOption       `json:"models"`
	Leagues      []FilterOption       `json:"leagues"`
	PriceRange   *PriceRange          `json:"price_range"`
	Availability *AvailabilityData    `json:"availability"`
}

// FilterOption represents a single selectable filter value
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
}

// PriceRange represents the minimum and maximum price in the module
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

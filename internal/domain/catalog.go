package domain

// Item is a material that recipes consume or produce.
type Item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`

	// TopographicOrder sorts items in summaries. Lower values are upstream
	// raw materials, higher values are downstream products.
	TopographicOrder int `json:"topographic_order"`
}

// Machine is a building that runs recipes.
type Machine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`

	// BasePowerConsumption is the MW drawn at 100% clock speed
	BasePowerConsumption float64 `json:"base_power_consumption"`
	// BasePowerProduction is the MW generated at 100% clock speed
	BasePowerProduction float64 `json:"base_power_production"`
}

// IsGenerator reports whether the machine produces more power than it draws.
func (m Machine) IsGenerator() bool {
	return m.BasePowerProduction > m.BasePowerConsumption
}

// Catalog identifier prefixes
const (
	ItemIDPrefix    = "item_"
	MachineIDPrefix = "machine_"
	RecipeIDPrefix  = "recipe_"
)

package production

import "github.com/osse101/FactoryPlanner_Go/internal/domain"

// InstancePower holds the power figures of one recipe instance
type InstancePower struct {
	Index       int     `json:"index"`
	RecipeID    string  `json:"recipe_id"`
	RecipeName  string  `json:"recipe_name"`
	Production  float64 `json:"power_production"`
	Consumption float64 `json:"power_consumption"`
}

// LineSummary is everything a caller needs to render a production line
type LineSummary struct {
	Items                 []ItemSummary   `json:"items"`
	Power                 []InstancePower `json:"power"`
	TotalPowerProduction  float64         `json:"total_power_production"`
	TotalPowerConsumption float64         `json:"total_power_consumption"`
	NetPower              float64         `json:"net_power"`
}

// SummarizeLine summarizes items and computes per-instance power. Power
// entries keep the instance order, including zero-machine instances.
func (e *Engine) SummarizeLine(instances []domain.RecipeInstance) LineSummary {
	summary := LineSummary{
		Items: e.Summarize(instances),
		Power: make([]InstancePower, 0, len(instances)),
	}

	for i, ri := range instances {
		p := InstancePower{
			Index:       i,
			RecipeID:    ri.ID,
			RecipeName:  ri.Name,
			Production:  PowerProduction(ri),
			Consumption: PowerConsumption(ri),
		}
		summary.Power = append(summary.Power, p)
		summary.TotalPowerProduction += p.Production
		summary.TotalPowerConsumption += p.Consumption
	}
	summary.NetPower = summary.TotalPowerProduction - summary.TotalPowerConsumption

	return summary
}

// Item returns the summary of a single item, if present
func (s LineSummary) Item(itemID string) (ItemSummary, bool) {
	for _, is := range s.Items {
		if is.Item.ID == itemID {
			return is, true
		}
	}
	return ItemSummary{}, false
}

// Deficits returns the items the line consumes more of than it produces
func (s LineSummary) Deficits() []ItemSummary {
	var out []ItemSummary
	for _, is := range s.Items {
		if is.NetProduction() < 0 {
			out = append(out, is)
		}
	}
	return out
}

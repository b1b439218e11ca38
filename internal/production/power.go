package production

import (
	"math"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// PowerConsumptionExponent is the game's overclocking rule: doubling the
// clock speed multiplies power draw by 2.5 (log2(2.5)).
const PowerConsumptionExponent = 1.321928

// PowerProduction returns the MW generated by the instance. It scales
// linearly with clock speed.
func PowerProduction(ri domain.RecipeInstance) float64 {
	if ri.MachineCount == 0 {
		return 0
	}
	perMachine := ri.Machine.BasePowerProduction * clockFactor(ri)
	return perMachine * float64(ri.MachineCount)
}

// PowerConsumption returns the MW drawn by the instance, using the
// non-linear overclocking curve.
func PowerConsumption(ri domain.RecipeInstance) float64 {
	if ri.MachineCount == 0 {
		return 0
	}
	perMachine := ri.Machine.BasePowerConsumption * math.Pow(clockFactor(ri), PowerConsumptionExponent)
	return perMachine * float64(ri.MachineCount)
}

func clockFactor(ri domain.RecipeInstance) float64 {
	return ri.ClockSpeed / 100
}

// ComputeProduction sums the instance's output rate for a single item
func ComputeProduction(ri domain.RecipeInstance, itemID string) float64 {
	return sumItemRate(ri.Outputs, itemID) * float64(ri.MachineCount)
}

// ComputeConsumption sums the instance's input rate for a single item
func ComputeConsumption(ri domain.RecipeInstance, itemID string) float64 {
	return sumItemRate(ri.Inputs, itemID) * float64(ri.MachineCount)
}

func sumItemRate(components []domain.RecipeComponent, itemID string) float64 {
	var total float64
	for _, c := range components {
		if c.IsItem() && c.Item == itemID {
			total += c.Rate
		}
	}
	return total
}

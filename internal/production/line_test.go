package production

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func TestSummarizeLine(t *testing.T) {
	engine := NewEngine(testItems)

	summary := engine.SummarizeLine([]domain.RecipeInstance{
		instance(biomassPowerRecipe(), 100, 1),
		instance(ironIngotRecipe(), 100, 2),
		instance(ironPlateRecipe(), 100, 0),
	})

	require.Len(t, summary.Power, 3)
	assert.Equal(t, "recipe_biomass_power", summary.Power[0].RecipeID)
	assert.InDelta(t, 30.0, summary.Power[0].Production, 1e-9)
	assert.InDelta(t, 8.0, summary.Power[1].Consumption, 1e-9)
	assert.Equal(t, 2, summary.Power[2].Index)
	assert.Zero(t, summary.Power[2].Consumption)

	assert.InDelta(t, 30.0, summary.TotalPowerProduction, 1e-9)
	assert.InDelta(t, 8.0, summary.TotalPowerConsumption, 1e-9)
	assert.InDelta(t, 22.0, summary.NetPower, 1e-9)

	ingot, ok := summary.Item("item_iron_ingot")
	require.True(t, ok)
	assert.InDelta(t, 60.0, ingot.NetProduction(), 1e-9)

	_, ok = summary.Item("item_iron_plate")
	assert.False(t, ok)

	deficits := summary.Deficits()
	assert.Equal(t, []string{"item_iron_ore", "item_biomass"}, ids(deficits))
}

func TestItemSummary_JSON(t *testing.T) {
	s := ItemSummary{Item: testItems["item_iron_ore"], GrossProduction: 10, Consumption: 25}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.InDelta(t, -15.0, raw["net_production"], 1e-9)

	var decoded ItemSummary
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, s, decoded)
}

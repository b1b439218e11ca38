package production

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

type itemMap map[string]domain.Item

func (m itemMap) Item(id string) (domain.Item, bool) {
	item, ok := m[id]
	return item, ok
}

var testItems = itemMap{
	"item_iron_ore":   {ID: "item_iron_ore", Name: "Iron Ore", TopographicOrder: 0},
	"item_copper_ore": {ID: "item_copper_ore", Name: "Copper Ore", TopographicOrder: 0},
	"item_iron_ingot": {ID: "item_iron_ingot", Name: "Iron Ingot", TopographicOrder: 1},
	"item_iron_plate": {ID: "item_iron_plate", Name: "Iron Plate", TopographicOrder: 2},
	"item_iron_rod":   {ID: "item_iron_rod", Name: "Iron Rod", TopographicOrder: 2},
	"item_biomass":    {ID: "item_biomass", Name: "Biomass", TopographicOrder: 1},
}

var (
	smelter     = domain.Machine{ID: "machine_smelter", Name: "Smelter", BasePowerConsumption: 4}
	constructor = domain.Machine{ID: "machine_constructor", Name: "Constructor", BasePowerConsumption: 4}
	burner      = domain.Machine{ID: "machine_biomass_burner", Name: "Biomass Burner", BasePowerProduction: 30}
)

func ironIngotRecipe() domain.Recipe {
	return domain.Recipe{
		ID:      "recipe_iron_ingot",
		Name:    "Iron Ingot",
		Machine: smelter,
		Inputs:  []domain.RecipeComponent{domain.ItemComponent("item_iron_ore", 30), domain.PowerComponent(4)},
		Outputs: []domain.RecipeComponent{domain.ItemComponent("item_iron_ingot", 30)},
	}
}

func ironPlateRecipe() domain.Recipe {
	return domain.Recipe{
		ID:      "recipe_iron_plate",
		Name:    "Iron Plate",
		Machine: constructor,
		Inputs:  []domain.RecipeComponent{domain.ItemComponent("item_iron_ingot", 30), domain.PowerComponent(4)},
		Outputs: []domain.RecipeComponent{domain.ItemComponent("item_iron_plate", 20)},
	}
}

func ironRodRecipe() domain.Recipe {
	return domain.Recipe{
		ID:      "recipe_iron_rod",
		Name:    "Iron Rod",
		Machine: constructor,
		Inputs:  []domain.RecipeComponent{domain.ItemComponent("item_iron_ingot", 15), domain.PowerComponent(4)},
		Outputs: []domain.RecipeComponent{domain.ItemComponent("item_iron_rod", 15)},
	}
}

func biomassPowerRecipe() domain.Recipe {
	return domain.Recipe{
		ID:      "recipe_biomass_power",
		Name:    "Biomass Power",
		Machine: burner,
		Inputs:  []domain.RecipeComponent{domain.ItemComponent("item_biomass", 18)},
		Outputs: []domain.RecipeComponent{domain.PowerComponent(30)},
	}
}

func instance(r domain.Recipe, clock float64, machines int) domain.RecipeInstance {
	ri := domain.NewRecipeInstance(r)
	ri.ClockSpeed = clock
	ri.MachineCount = machines
	return ri
}

func ids(summaries []ItemSummary) []string {
	out := make([]string, len(summaries))
	for i, s := range summaries {
		out[i] = s.Item.ID
	}
	return out
}

func TestSummarize_IronIngot(t *testing.T) {
	engine := NewEngine(testItems)

	result := engine.Summarize([]domain.RecipeInstance{instance(ironIngotRecipe(), 100, 2)})

	require.Len(t, result, 2)
	assert.Equal(t, "item_iron_ore", result[0].Item.ID)
	assert.InDelta(t, 0.0, result[0].GrossProduction, 1e-9)
	assert.InDelta(t, 60.0, result[0].Consumption, 1e-9)
	assert.InDelta(t, -60.0, result[0].NetProduction(), 1e-9)

	assert.Equal(t, "item_iron_ingot", result[1].Item.ID)
	assert.InDelta(t, 60.0, result[1].GrossProduction, 1e-9)
	assert.InDelta(t, 0.0, result[1].Consumption, 1e-9)
	assert.InDelta(t, 60.0, result[1].NetProduction(), 1e-9)
}

func TestSummarize_ChainedIronPlate(t *testing.T) {
	engine := NewEngine(testItems)

	result := engine.Summarize([]domain.RecipeInstance{
		instance(ironIngotRecipe(), 100, 2),
		instance(ironPlateRecipe(), 100, 2),
	})

	want := []ItemSummary{
		{Item: testItems["item_iron_ore"], Consumption: 60},
		{Item: testItems["item_iron_ingot"], GrossProduction: 60, Consumption: 60},
		{Item: testItems["item_iron_plate"], GrossProduction: 40},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 0.0, result[1].NetProduction(), 1e-9)
}

func TestSummarize_Idempotent(t *testing.T) {
	engine := NewEngine(testItems)
	instances := []domain.RecipeInstance{
		instance(ironIngotRecipe(), 150, 3),
		instance(ironPlateRecipe(), 75, 2),
		instance(ironRodRecipe(), 100, 1),
	}

	first := engine.Summarize(instances)
	second := engine.Summarize(instances)

	assert.Equal(t, first, second)
}

func TestSummarize_PermutationInvariant(t *testing.T) {
	engine := NewEngine(testItems)
	a := instance(ironIngotRecipe(), 100, 4)
	b := instance(ironPlateRecipe(), 100, 2)
	c := instance(ironRodRecipe(), 100, 3)

	want := engine.Summarize([]domain.RecipeInstance{a, b, c})
	permutations := [][]domain.RecipeInstance{
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}
	for _, p := range permutations {
		assert.Equal(t, want, engine.Summarize(p))
	}
}

func TestSummarize_ZeroMachineInstances(t *testing.T) {
	engine := NewEngine(testItems)
	base := []domain.RecipeInstance{instance(ironIngotRecipe(), 100, 2)}
	idle := instance(ironPlateRecipe(), 100, 0)

	withIdle := engine.Summarize(append(append([]domain.RecipeInstance{}, base...), idle))

	assert.Equal(t, engine.Summarize(base), withIdle)
	assert.NotContains(t, ids(withIdle), "item_iron_plate")
	assert.Zero(t, PowerProduction(idle))
	assert.Zero(t, PowerConsumption(idle))
}

func TestSummarize_TopographicOrder(t *testing.T) {
	engine := NewEngine(testItems)

	// plates first, ore last in instance order
	result := engine.Summarize([]domain.RecipeInstance{
		instance(ironPlateRecipe(), 100, 1),
		instance(ironRodRecipe(), 100, 1),
		instance(ironIngotRecipe(), 100, 1),
	})

	assert.Equal(t, []string{"item_iron_ore", "item_iron_ingot", "item_iron_plate", "item_iron_rod"}, ids(result))
}

func TestSummarize_TiesOrderedByItemID(t *testing.T) {
	engine := NewEngine(testItems)

	// rods are encountered before plates; both have order 2
	result := engine.Summarize([]domain.RecipeInstance{
		instance(ironRodRecipe(), 100, 1),
		instance(ironPlateRecipe(), 100, 1),
	})

	assert.Equal(t, []string{"item_iron_ingot", "item_iron_plate", "item_iron_rod"}, ids(result))
}

func TestSummarize_OmitsUntouchedItemsAndPower(t *testing.T) {
	engine := NewEngine(testItems)

	result := engine.Summarize([]domain.RecipeInstance{
		instance(ironIngotRecipe(), 100, 1),
		instance(biomassPowerRecipe(), 100, 1),
	})

	assert.ElementsMatch(t, []string{"item_iron_ore", "item_iron_ingot", "item_biomass"}, ids(result))
	assert.NotContains(t, ids(result), "item_copper_ore")
}

func TestSummarize_Empty(t *testing.T) {
	engine := NewEngine(testItems)
	assert.Empty(t, engine.Summarize(nil))
}

func TestSummarize_DoesNotMutateInput(t *testing.T) {
	engine := NewEngine(testItems)
	instances := []domain.RecipeInstance{
		instance(ironPlateRecipe(), 100, 1),
		instance(ironIngotRecipe(), 100, 1),
	}
	before := []domain.RecipeInstance{instances[0], instances[1]}

	engine.Summarize(instances)

	assert.Equal(t, before, instances)
}

func TestSummarize_UnknownItemPanics(t *testing.T) {
	engine := NewEngine(itemMap{})
	assert.Panics(t, func() {
		engine.Summarize([]domain.RecipeInstance{instance(ironIngotRecipe(), 100, 1)})
	})
}

func TestPowerProduction(t *testing.T) {
	tests := []struct {
		name     string
		clock    float64
		machines int
		want     float64
	}{
		{"base", 100, 1, 30},
		{"double clock", 200, 1, 60},
		{"underclocked", 50, 2, 30},
		{"no machines", 100, 0, 0},
		{"zero clock", 0, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PowerProduction(instance(biomassPowerRecipe(), tt.clock, tt.machines))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPowerProduction_LinearInClock(t *testing.T) {
	at100 := PowerProduction(instance(biomassPowerRecipe(), 100, 3))
	at200 := PowerProduction(instance(biomassPowerRecipe(), 200, 3))
	assert.Equal(t, 2*at100, at200)
}

func TestPowerProduction_ConsumerProducesNothing(t *testing.T) {
	assert.Zero(t, PowerProduction(instance(ironIngotRecipe(), 100, 5)))
}

func TestPowerConsumption(t *testing.T) {
	t.Run("base clock", func(t *testing.T) {
		assert.InDelta(t, 8.0, PowerConsumption(instance(ironIngotRecipe(), 100, 2)), 1e-9)
	})

	t.Run("double clock follows the overclock curve", func(t *testing.T) {
		got := PowerConsumption(instance(ironIngotRecipe(), 200, 2))
		want := 4 * math.Pow(2, 1.321928) * 2
		assert.InDelta(t, want, got, 1e-9)
		// 2.5x the 100% draw
		assert.InDelta(t, 20.0, got, 0.01)
	})

	t.Run("no machines", func(t *testing.T) {
		assert.Zero(t, PowerConsumption(instance(ironIngotRecipe(), 250, 0)))
	})

	t.Run("zero clock", func(t *testing.T) {
		assert.Zero(t, PowerConsumption(instance(ironIngotRecipe(), 0, 2)))
	})

	t.Run("generator draws nothing", func(t *testing.T) {
		assert.Zero(t, PowerConsumption(instance(biomassPowerRecipe(), 100, 2)))
	})
}

func TestComputeProductionAndConsumption(t *testing.T) {
	ri := instance(ironPlateRecipe(), 100, 3)

	assert.InDelta(t, 60.0, ComputeProduction(ri, "item_iron_plate"), 1e-9)
	assert.InDelta(t, 90.0, ComputeConsumption(ri, "item_iron_ingot"), 1e-9)

	// the helpers read their own side only
	assert.Zero(t, ComputeProduction(ri, "item_iron_ingot"))
	assert.Zero(t, ComputeConsumption(ri, "item_iron_plate"))
	assert.Zero(t, ComputeProduction(ri, "item_copper_ore"))
}

func TestItemSummary_Merge(t *testing.T) {
	a := ItemSummary{Item: testItems["item_iron_ingot"], GrossProduction: 30, Consumption: 10}
	a.Merge(ItemSummary{Item: testItems["item_iron_ingot"], GrossProduction: 5, Consumption: 25})

	assert.InDelta(t, 35.0, a.GrossProduction, 1e-9)
	assert.InDelta(t, 35.0, a.Consumption, 1e-9)
	assert.InDelta(t, 0.0, a.NetProduction(), 1e-9)

	assert.Panics(t, func() {
		a.Merge(ItemSummary{Item: testItems["item_iron_ore"]})
	})
}

func TestMerge(t *testing.T) {
	engine := NewEngine(testItems)
	smelting := engine.Summarize([]domain.RecipeInstance{instance(ironIngotRecipe(), 100, 2)})
	plating := engine.Summarize([]domain.RecipeInstance{instance(ironPlateRecipe(), 100, 2)})

	merged := Merge(plating, smelting)

	whole := engine.Summarize([]domain.RecipeInstance{
		instance(ironIngotRecipe(), 100, 2),
		instance(ironPlateRecipe(), 100, 2),
	})
	assert.Equal(t, whole, merged)
}

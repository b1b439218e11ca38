package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

func TestLoadDefault(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Items())
	assert.NotEmpty(t, c.Machines())
	assert.NotEmpty(t, c.Recipes())

	t.Run("smelter recipe draws machine power", func(t *testing.T) {
		r, ok := c.Recipe("recipe_iron_ingot")
		require.True(t, ok)
		assert.Equal(t, "machine_smelter", r.Machine.ID)
		assert.Equal(t, []domain.RecipeComponent{
			domain.PowerComponent(4),
			domain.ItemComponent("item_iron_ore", 30),
		}, r.Inputs)
		assert.Equal(t, []domain.RecipeComponent{domain.ItemComponent("item_iron_ingot", 30)}, r.Outputs)
	})

	t.Run("constructor and assembler power", func(t *testing.T) {
		plate, ok := c.Recipe("recipe_iron_plate")
		require.True(t, ok)
		assert.Equal(t, domain.PowerComponent(4), plate.Inputs[0])

		rip, ok := c.Recipe("recipe_reinforced_iron_plate")
		require.True(t, ok)
		assert.Equal(t, domain.PowerComponent(15), rip.Inputs[0])
		assert.Len(t, rip.ItemInputs(), 2)
	})

	t.Run("generator outputs power", func(t *testing.T) {
		burn, ok := c.Recipe("recipe_biomass_power")
		require.True(t, ok)
		assert.Equal(t, []domain.RecipeComponent{domain.PowerComponent(30)}, burn.Outputs)
	})

	t.Run("topographic orders", func(t *testing.T) {
		ore, _ := c.Item("item_iron_ore")
		plate, _ := c.Item("item_iron_plate")
		casing, _ := c.Item("item_aluminum_casing")
		assert.Equal(t, 0, ore.TopographicOrder)
		assert.Equal(t, 2, plate.TopographicOrder)
		assert.Equal(t, 6, casing.TopographicOrder)
	})

	t.Run("every recipe item resolves", func(t *testing.T) {
		for _, r := range c.Recipes() {
			for _, comp := range append(r.ItemInputs(), r.ItemOutputs()...) {
				_, ok := c.Item(comp.Item)
				assert.True(t, ok, "recipe %s references %s", r.ID, comp.Item)
			}
		}
	})
}

func TestFindRecipes(t *testing.T) {
	c, err := LoadDefault()
	require.NoError(t, err)

	screws := c.FindRecipes(RecipeFilter{Produces: "item_screw"})
	var ids []string
	for _, r := range screws {
		ids = append(ids, r.ID)
	}
	assert.Contains(t, ids, "recipe_screw")
	assert.Contains(t, ids, "recipe_cast_screw")

	standard := c.FindRecipes(RecipeFilter{Produces: "item_screw", ExcludeAlternates: true})
	require.Len(t, standard, 1)
	assert.Equal(t, "recipe_screw", standard[0].ID)

	for _, r := range c.FindRecipes(RecipeFilter{MachineID: "machine_smelter"}) {
		assert.Equal(t, "machine_smelter", r.Machine.ID)
	}

	for _, r := range c.FindRecipes(RecipeFilter{Consumes: "item_iron_ingot"}) {
		assert.NotEmpty(t, r.ItemInputs())
	}
}

const (
	validItems    = `{"items":[{"id":"item_iron_ore","name":"Iron Ore","topographic_order":0},{"id":"item_iron_ingot","name":"Iron Ingot","topographic_order":1}]}`
	validMachines = `{"machines":[{"id":"machine_smelter","name":"Smelter","base_power_consumption":4,"base_power_production":0}]}`
	validRecipes  = `{"recipes":[{"id":"recipe_iron_ingot","name":"Iron Ingot","machine":"machine_smelter","inputs":[{"item":"item_iron_ore","rate":30}],"outputs":[{"item":"item_iron_ingot","rate":30}]}]}`
)

func catalogFS(items, machines, recipes string) fstest.MapFS {
	return fstest.MapFS{
		ItemsFileName:    {Data: []byte(items)},
		MachinesFileName: {Data: []byte(machines)},
		RecipesFileName:  {Data: []byte(recipes)},
	}
}

func TestLoader_LoadFS(t *testing.T) {
	tests := []struct {
		name     string
		fsys     fstest.MapFS
		errorMsg string
		wantErr  error
	}{
		{name: "valid", fsys: catalogFS(validItems, validMachines, validRecipes)},
		{
			name:     "missing file",
			fsys:     fstest.MapFS{ItemsFileName: {Data: []byte(validItems)}},
			errorMsg: "failed to read machines.json",
		},
		{
			name:     "schema violation",
			fsys:     catalogFS(`{"items":[{"id":"iron_ore","name":"Iron Ore","topographic_order":0}]}`, validMachines, validRecipes),
			errorMsg: "schema validation failed for items.json",
		},
		{
			name: "negative rate rejected by schema",
			fsys: catalogFS(validItems, validMachines,
				`{"recipes":[{"id":"recipe_iron_ingot","name":"Iron Ingot","machine":"machine_smelter","inputs":[{"item":"item_iron_ore","rate":-1}],"outputs":[]}]}`),
			errorMsg: "schema validation failed for recipes.json",
		},
		{
			name: "unknown machine",
			fsys: catalogFS(validItems, validMachines,
				`{"recipes":[{"id":"recipe_iron_ingot","name":"Iron Ingot","machine":"machine_foundry","inputs":[],"outputs":[{"item":"item_iron_ingot","rate":30}]}]}`),
			wantErr: ErrUnknownMachine,
		},
		{
			name: "unknown item",
			fsys: catalogFS(validItems, validMachines,
				`{"recipes":[{"id":"recipe_iron_ingot","name":"Iron Ingot","machine":"machine_smelter","inputs":[],"outputs":[{"item":"item_gold","rate":30}]}]}`),
			wantErr: ErrUnknownItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLoader().LoadFS(tt.fsys)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errorMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			default:
				require.NoError(t, err)
				assert.Len(t, c.Recipes(), 1)
			}
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ItemsFileName), []byte(validItems), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MachinesFileName), []byte(validMachines), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, RecipesFileName), []byte(validRecipes), 0o644))

	c, err := NewLoader().Load(dir)
	require.NoError(t, err)

	r, ok := c.Recipe("recipe_iron_ingot")
	require.True(t, ok)
	assert.Equal(t, domain.PowerComponent(4), r.Inputs[0])
}

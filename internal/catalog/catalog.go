package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// Catalog construction errors
var (
	ErrUnknownMachine = errors.New(ErrMsgUnknownMachine)
	ErrUnknownItem    = errors.New(ErrMsgUnknownItem)
	ErrDuplicateID    = errors.New(ErrMsgDuplicateID)
	ErrInvalidID      = errors.New(ErrMsgInvalidID)
	ErrInvalidRate    = errors.New(ErrMsgInvalidRate)
	ErrPowerMismatch  = errors.New(ErrMsgPowerMismatch)
	ErrInvalidConfig  = errors.New(ErrMsgInvalidConfig)
)

// Catalog is the immutable set of items, machines and recipes a planner
// works with. It is built once at startup and shared by pointer; none of
// its methods mutate it, so it is safe for concurrent use.
type Catalog struct {
	items    map[string]domain.Item
	machines map[string]domain.Machine
	recipes  map[string]domain.Recipe

	itemIDs    []string
	machineIDs []string
	recipeIDs  []string
}

// New validates the given definitions and builds a Catalog. Recipe machines
// are resolved by ID against machines, so a recipe only needs Machine.ID set.
func New(items []domain.Item, machines []domain.Machine, recipes []domain.Recipe) (*Catalog, error) {
	c := &Catalog{
		items:    make(map[string]domain.Item, len(items)),
		machines: make(map[string]domain.Machine, len(machines)),
		recipes:  make(map[string]domain.Recipe, len(recipes)),
	}

	for _, item := range items {
		if err := checkID(item.ID, domain.ItemIDPrefix); err != nil {
			return nil, err
		}
		if _, dup := c.items[item.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicate, ErrDuplicateID, item.ID)
		}
		c.items[item.ID] = item
		c.itemIDs = append(c.itemIDs, item.ID)
	}

	for _, m := range machines {
		if err := checkID(m.ID, domain.MachineIDPrefix); err != nil {
			return nil, err
		}
		if _, dup := c.machines[m.ID]; dup {
			return nil, fmt.Errorf(ErrFmtDuplicate, ErrDuplicateID, m.ID)
		}
		c.machines[m.ID] = m
		c.machineIDs = append(c.machineIDs, m.ID)
	}

	for _, r := range recipes {
		resolved, err := c.resolveRecipe(r)
		if err != nil {
			return nil, err
		}
		c.recipes[r.ID] = resolved
		c.recipeIDs = append(c.recipeIDs, r.ID)
	}

	sort.Strings(c.itemIDs)
	sort.Strings(c.machineIDs)
	sort.Strings(c.recipeIDs)

	return c, nil
}

func checkID(id, prefix string) error {
	if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
		return fmt.Errorf(ErrFmtIDPrefix, ErrInvalidID, id, prefix)
	}
	return nil
}

func (c *Catalog) resolveRecipe(r domain.Recipe) (domain.Recipe, error) {
	if err := checkID(r.ID, domain.RecipeIDPrefix); err != nil {
		return domain.Recipe{}, err
	}
	if _, dup := c.recipes[r.ID]; dup {
		return domain.Recipe{}, fmt.Errorf(ErrFmtDuplicate, ErrDuplicateID, r.ID)
	}
	if r.Machine.ID == "" {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipeNoMachine, ErrInvalidConfig, r.ID)
	}

	machine, ok := c.machines[r.Machine.ID]
	if !ok {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipeMachine, ErrUnknownMachine, r.ID, r.Machine.ID)
	}
	r.Machine = machine

	if len(r.ItemInputs()) == 0 && len(r.ItemOutputs()) == 0 {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipeNoProducts, ErrInvalidConfig, r.ID)
	}

	var powerIn, powerOut float64
	for _, comp := range r.Inputs {
		switch comp.Kind {
		case domain.ComponentKindItem:
			if err := c.checkFlow(r.ID, comp); err != nil {
				return domain.Recipe{}, err
			}
		case domain.ComponentKindPower:
			powerIn += comp.Amount
		default:
			return domain.Recipe{}, fmt.Errorf("%w: recipe %q: %q", domain.ErrUnknownComponentKind, r.ID, comp.Kind)
		}
	}
	for _, comp := range r.Outputs {
		switch comp.Kind {
		case domain.ComponentKindItem:
			if err := c.checkFlow(r.ID, comp); err != nil {
				return domain.Recipe{}, err
			}
		case domain.ComponentKindPower:
			powerOut += comp.Amount
		default:
			return domain.Recipe{}, fmt.Errorf("%w: recipe %q: %q", domain.ErrUnknownComponentKind, r.ID, comp.Kind)
		}
	}

	// Power components describe the machine, so they must agree with it.
	if powerIn != machine.BasePowerConsumption {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipePower, ErrPowerMismatch, r.ID, "consumes", powerIn, machine.ID, "consumes", machine.BasePowerConsumption)
	}
	if powerOut != machine.BasePowerProduction {
		return domain.Recipe{}, fmt.Errorf(ErrFmtRecipePower, ErrPowerMismatch, r.ID, "produces", powerOut, machine.ID, "produces", machine.BasePowerProduction)
	}

	r.Inputs = append([]domain.RecipeComponent(nil), r.Inputs...)
	r.Outputs = append([]domain.RecipeComponent(nil), r.Outputs...)
	return r, nil
}

func (c *Catalog) checkFlow(recipeID string, comp domain.RecipeComponent) error {
	if _, ok := c.items[comp.Item]; !ok {
		return fmt.Errorf(ErrFmtRecipeItem, ErrUnknownItem, recipeID, comp.Item)
	}
	if !(comp.Rate > 0) {
		return fmt.Errorf(ErrFmtRecipeRate, ErrInvalidRate, recipeID, comp.Rate, comp.Item)
	}
	return nil
}

// Item looks up an item by ID
func (c *Catalog) Item(id string) (domain.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Machine looks up a machine by ID
func (c *Catalog) Machine(id string) (domain.Machine, bool) {
	m, ok := c.machines[id]
	return m, ok
}

// Recipe looks up a recipe by ID. The returned recipe has its own
// component slices and may be modified by the caller.
func (c *Catalog) Recipe(id string) (domain.Recipe, bool) {
	r, ok := c.recipes[id]
	if !ok {
		return domain.Recipe{}, false
	}
	return cloneRecipe(r), true
}

// Items returns all items sorted by ID
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, 0, len(c.itemIDs))
	for _, id := range c.itemIDs {
		out = append(out, c.items[id])
	}
	return out
}

// Machines returns all machines sorted by ID
func (c *Catalog) Machines() []domain.Machine {
	out := make([]domain.Machine, 0, len(c.machineIDs))
	for _, id := range c.machineIDs {
		out = append(out, c.machines[id])
	}
	return out
}

// Recipes returns all recipes sorted by ID
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, 0, len(c.recipeIDs))
	for _, id := range c.recipeIDs {
		out = append(out, cloneRecipe(c.recipes[id]))
	}
	return out
}

// RecipeFilter narrows Recipes. Empty fields match everything.
type RecipeFilter struct {
	MachineID string
	Produces  string
	Consumes  string

	ExcludeAlternates bool
}

// FindRecipes returns the recipes matching filter, sorted by ID
func (c *Catalog) FindRecipes(filter RecipeFilter) []domain.Recipe {
	var out []domain.Recipe
	for _, id := range c.recipeIDs {
		r := c.recipes[id]
		if filter.MachineID != "" && r.Machine.ID != filter.MachineID {
			continue
		}
		if filter.ExcludeAlternates && r.Alternate {
			continue
		}
		if filter.Produces != "" && !hasItem(r.Outputs, filter.Produces) {
			continue
		}
		if filter.Consumes != "" && !hasItem(r.Inputs, filter.Consumes) {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	return out
}

func hasItem(components []domain.RecipeComponent, itemID string) bool {
	for _, comp := range components {
		if comp.IsItem() && comp.Item == itemID {
			return true
		}
	}
	return false
}

func cloneRecipe(r domain.Recipe) domain.Recipe {
	r.Inputs = append([]domain.RecipeComponent(nil), r.Inputs...)
	r.Outputs = append([]domain.RecipeComponent(nil), r.Outputs...)
	return r
}

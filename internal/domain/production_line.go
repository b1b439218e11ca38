package domain

import (
	"fmt"
	"math"
)

// Recipe instance parameter bounds
const (
	// MaxClockSpeed is the highest clock speed a machine can be overclocked to.
	// Clock speeds must be strictly greater than zero.
	MaxClockSpeed       = 250.0
	DefaultClockSpeed   = 100.0
	DefaultMachineCount = 1
)

// RecipeInstance is a recipe placed in a production line, running on
// MachineCount machines at ClockSpeed percent. It serializes flat: the
// recipe's static fields sit next to clock_speed and machine_count.
type RecipeInstance struct {
	Recipe

	ClockSpeed   float64 `json:"clock_speed"`
	MachineCount int     `json:"machine_count"`
}

// NewRecipeInstance binds a recipe with the default clock speed and one machine.
func NewRecipeInstance(recipe Recipe) RecipeInstance {
	return RecipeInstance{
		Recipe:       recipe,
		ClockSpeed:   DefaultClockSpeed,
		MachineCount: DefaultMachineCount,
	}
}

// SetClockSpeed validates and applies a new clock speed
func (ri *RecipeInstance) SetClockSpeed(clockSpeed float64) error {
	if err := ValidateClockSpeed(clockSpeed); err != nil {
		return err
	}
	ri.ClockSpeed = clockSpeed
	return nil
}

// SetMachineCount validates and applies a new machine count
func (ri *RecipeInstance) SetMachineCount(count int) error {
	if err := ValidateMachineCount(count); err != nil {
		return err
	}
	ri.MachineCount = count
	return nil
}

// Validate checks both runtime parameters
func (ri RecipeInstance) Validate() error {
	if err := ValidateClockSpeed(ri.ClockSpeed); err != nil {
		return err
	}
	return ValidateMachineCount(ri.MachineCount)
}

// ValidateClockSpeed accepts clock speeds in (0, MaxClockSpeed]
func ValidateClockSpeed(clockSpeed float64) error {
	if math.IsNaN(clockSpeed) || clockSpeed <= 0 || clockSpeed > MaxClockSpeed {
		return fmt.Errorf("%w: %v (must be in (0, %v])", ErrInvalidClockSpeed, clockSpeed, MaxClockSpeed)
	}
	return nil
}

// ValidateMachineCount accepts any non-negative count
func ValidateMachineCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidMachineCount, count)
	}
	return nil
}

// ProductionLine is a named, ordered list of recipe instances.
type ProductionLine struct {
	Name string `json:"name"`

	// Slug is a url-friendly key derived from Name at creation time.
	Slug string `json:"slug"`

	Recipes []RecipeInstance `json:"recipes"`
}

// Clone returns a deep copy so callers can mutate without touching shared state
func (l ProductionLine) Clone() ProductionLine {
	out := ProductionLine{Name: l.Name, Slug: l.Slug}
	out.Recipes = make([]RecipeInstance, len(l.Recipes))
	for i, ri := range l.Recipes {
		ri.Inputs = append([]RecipeComponent(nil), ri.Inputs...)
		ri.Outputs = append([]RecipeComponent(nil), ri.Outputs...)
		out.Recipes[i] = ri
	}
	return out
}

// CheckIndex reports ErrInstanceNotFound when index is out of range
func (l ProductionLine) CheckIndex(index int) error {
	if index < 0 || index >= len(l.Recipes) {
		return fmt.Errorf("%w: index %d (line %q has %d recipes)", ErrInstanceNotFound, index, l.Slug, len(l.Recipes))
	}
	return nil
}

// LineInfo is the listing view of a production line
type LineInfo struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	RecipeCount int    `json:"recipe_count"`
}

// Info returns the listing view of the line
func (l ProductionLine) Info() LineInfo {
	return LineInfo{Name: l.Name, Slug: l.Slug, RecipeCount: len(l.Recipes)}
}

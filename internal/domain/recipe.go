package domain

import (
	"encoding/json"
	"fmt"
)

// ComponentKind discriminates the variants of RecipeComponent
type ComponentKind string

const (
	ComponentKindItem  ComponentKind = "item"
	ComponentKindPower ComponentKind = "power"
)

// RecipeComponent is one input or output of a recipe. It is either an item
// flow (Item + Rate) or a power flow (Amount), selected by Kind.
type RecipeComponent struct {
	Kind ComponentKind

	// Item and Rate are set for item components. Rate is items per minute
	// for a single machine at 100% clock speed.
	Item string
	Rate float64

	// Amount is set for power components, in MW for a single machine at 100%.
	Amount float64
}

// ItemComponent builds an item flow component.
func ItemComponent(itemID string, rate float64) RecipeComponent {
	return RecipeComponent{Kind: ComponentKindItem, Item: itemID, Rate: rate}
}

// PowerComponent builds a power flow component.
func PowerComponent(amount float64) RecipeComponent {
	return RecipeComponent{Kind: ComponentKindPower, Amount: amount}
}

// IsItem reports whether the component is an item flow
func (c RecipeComponent) IsItem() bool { return c.Kind == ComponentKindItem }

// IsPower reports whether the component is a power flow
func (c RecipeComponent) IsPower() bool { return c.Kind == ComponentKindPower }

type itemComponentJSON struct {
	Type ComponentKind `json:"type"`
	Item string        `json:"item"`
	Rate float64       `json:"rate"`
}

type powerComponentJSON struct {
	Type   ComponentKind `json:"type"`
	Amount float64       `json:"amount"`
}

// MarshalJSON encodes the component as {"type":"item",...} or {"type":"power",...}
func (c RecipeComponent) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case ComponentKindItem:
		return json.Marshal(itemComponentJSON{Type: c.Kind, Item: c.Item, Rate: c.Rate})
	case ComponentKindPower:
		return json.Marshal(powerComponentJSON{Type: c.Kind, Amount: c.Amount})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponentKind, c.Kind)
	}
}

// UnmarshalJSON decodes a tagged component and rejects unknown tags
func (c *RecipeComponent) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type ComponentKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case ComponentKindItem:
		var v itemComponentJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = ItemComponent(v.Item, v.Rate)
	case ComponentKindPower:
		var v powerComponentJSON
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = PowerComponent(v.Amount)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownComponentKind, probe.Type)
	}
	return nil
}

// Recipe converts inputs into outputs on a single machine.
type Recipe struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Alternate bool    `json:"alternate"`
	Machine   Machine `json:"machine"`

	// Inputs include the power drawn by the machine, Outputs the power it
	// generates (for generator recipes).
	Inputs  []RecipeComponent `json:"inputs"`
	Outputs []RecipeComponent `json:"outputs"`
}

// ItemInputs returns only the item components of Inputs
func (r Recipe) ItemInputs() []RecipeComponent {
	return filterItems(r.Inputs)
}

// ItemOutputs returns only the item components of Outputs
func (r Recipe) ItemOutputs() []RecipeComponent {
	return filterItems(r.Outputs)
}

func filterItems(components []RecipeComponent) []RecipeComponent {
	items := make([]RecipeComponent, 0, len(components))
	for _, c := range components {
		if c.IsItem() {
			items = append(items, c)
		}
	}
	return items
}

package production

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/osse101/FactoryPlanner_Go/internal/domain"
)

// ItemLookup resolves item identifiers. *catalog.Catalog satisfies it.
type ItemLookup interface {
	Item(id string) (domain.Item, bool)
}

// ItemSummary accumulates the flow of a single item across instances.
type ItemSummary struct {
	Item            domain.Item
	GrossProduction float64
	Consumption     float64
}

// NetProduction is production minus consumption. Negative means the line
// needs the item supplied from elsewhere.
func (s ItemSummary) NetProduction() float64 {
	return s.GrossProduction - s.Consumption
}

// Merge adds other into s. Both summaries must describe the same item;
// anything else is a programming error and panics.
func (s *ItemSummary) Merge(other ItemSummary) {
	if s.Item.ID != other.Item.ID {
		panic(fmt.Sprintf("production: merging summaries of different items %q and %q", s.Item.ID, other.Item.ID))
	}
	s.GrossProduction += other.GrossProduction
	s.Consumption += other.Consumption
}

type itemSummaryJSON struct {
	Item            domain.Item `json:"item"`
	GrossProduction float64     `json:"gross_production"`
	Consumption     float64     `json:"consumption"`
	NetProduction   float64     `json:"net_production"`
}

// MarshalJSON includes the derived net_production
func (s ItemSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemSummaryJSON{
		Item:            s.Item,
		GrossProduction: s.GrossProduction,
		Consumption:     s.Consumption,
		NetProduction:   s.NetProduction(),
	})
}

// UnmarshalJSON ignores net_production, which is always derived
func (s *ItemSummary) UnmarshalJSON(data []byte) error {
	var v itemSummaryJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = ItemSummary{Item: v.Item, GrossProduction: v.GrossProduction, Consumption: v.Consumption}
	return nil
}

// Engine folds recipe instances into item summaries. It holds no state
// besides the item lookup and is safe for concurrent use.
type Engine struct {
	items ItemLookup
}

// NewEngine creates an engine resolving items through lookup
func NewEngine(lookup ItemLookup) *Engine {
	return &Engine{items: lookup}
}

// ledger is the scratch accumulator of a single Summarize call.
type ledger struct {
	byItem map[string]*ItemSummary
	order  []string
	items  ItemLookup
}

func newLedger(items ItemLookup) *ledger {
	return &ledger{byItem: make(map[string]*ItemSummary), items: items}
}

func (l *ledger) entry(itemID string) *ItemSummary {
	if s, ok := l.byItem[itemID]; ok {
		return s
	}
	item, ok := l.items.Item(itemID)
	if !ok {
		// Catalog validation guarantees every recipe component resolves.
		panic(fmt.Sprintf("production: item %q is not in the catalog", itemID))
	}
	s := &ItemSummary{Item: item}
	l.byItem[itemID] = s
	l.order = append(l.order, itemID)
	return s
}

func (l *ledger) add(ri domain.RecipeInstance) {
	machines := float64(ri.MachineCount)
	for _, out := range ri.Outputs {
		switch out.Kind {
		case domain.ComponentKindItem:
			l.entry(out.Item).GrossProduction += out.Rate * machines
		case domain.ComponentKindPower:
			// summarized per instance, see SummarizeLine
		}
	}
	for _, in := range ri.Inputs {
		switch in.Kind {
		case domain.ComponentKindItem:
			l.entry(in.Item).Consumption += in.Rate * machines
		case domain.ComponentKindPower:
		}
	}
}

func (l *ledger) summaries() []ItemSummary {
	out := make([]ItemSummary, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.byItem[id])
	}
	sortByTopography(out)
	return out
}

// sortByTopography orders upstream items first. Equal orders fall back to
// the item id so the result does not depend on instance order.
func sortByTopography(summaries []ItemSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].Item, summaries[j].Item
		if a.TopographicOrder != b.TopographicOrder {
			return a.TopographicOrder < b.TopographicOrder
		}
		return a.ID < b.ID
	})
}

// Summarize returns one ItemSummary per item produced or consumed by the
// instances, sorted by topographic order. Ties are ordered by item id, not
// encounter order, so the result does not depend on instance order.
// Instances with no machines are skipped. The input slice is never modified.
func (e *Engine) Summarize(instances []domain.RecipeInstance) []ItemSummary {
	l := newLedger(e.items)
	for _, ri := range instances {
		if ri.MachineCount == 0 {
			continue
		}
		l.add(ri)
	}
	return l.summaries()
}

// Merge combines partial summaries (for example of sub-lines) by item.
// The result is sorted by topographic order.
func Merge(parts ...[]ItemSummary) []ItemSummary {
	byItem := make(map[string]int)
	var out []ItemSummary
	for _, part := range parts {
		for _, s := range part {
			if i, ok := byItem[s.Item.ID]; ok {
				out[i].Merge(s)
				continue
			}
			byItem[s.Item.ID] = len(out)
			out = append(out, s)
		}
	}
	sortByTopography(out)
	return out
}

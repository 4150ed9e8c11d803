package pricing

import (
	"fmt"
	"sort"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

// Line is one feature's contribution to a quote.
type Line struct {
	Feature      string            `json:"feature"`
	Tier         catalog.TierName  `json:"tier,omitempty"`
	Count        int               `json:"count"`
	Inclusion    catalog.Inclusion `json:"inclusion"`
	UnitPrice    catalog.Money     `json:"unit_price"`
	DefaultPrice catalog.Money     `json:"default_price,omitempty"`
	Amount       catalog.Money     `json:"amount"`
	Removed      bool              `json:"removed,omitempty"`
	Skipped      string            `json:"skipped,omitempty"`
}

type Quote struct {
	BusinessType string        `json:"business_type"`
	BasePrice    catalog.Money `json:"base_price"`
	Lines        []Line        `json:"lines"`
	Total        catalog.Money `json:"total"`
	// BelowBase is set when downgrades or removals of bundled features
	// pushed the total under the base price.
	BelowBase bool `json:"below_base"`
}

// Calculate prices a state against a business type. Selections that match a
// bundled default cost nothing, other bundled selections are priced as the
// signed difference to the default tier, and add-ons are priced in full.
// Countable features multiply by their page count.
func Calculate(cat *catalog.Catalog, bt *catalog.BusinessType, s State) Quote {
	q := Quote{
		BusinessType: bt.Key,
		BasePrice:    bt.BasePrice,
		Total:        bt.BasePrice,
	}

	for feature, tier := range s.Selections {
		line := Line{Feature: feature, Inclusion: bt.InclusionFor(feature)}
		if tier == nil {
			line.Removed = true
			q.Lines = append(q.Lines, line)
			continue
		}
		line.Tier = *tier

		f, ok := cat.Feature(feature)
		if !ok {
			line.Skipped = "unknown feature"
			q.Lines = append(q.Lines, line)
			continue
		}
		chosen, ok := f.Tier(*tier)
		if !ok {
			line.Skipped = "unknown tier"
			q.Lines = append(q.Lines, line)
			continue
		}

		line.Count = 1
		if f.Countable {
			if n, ok := s.PageCounts[feature]; ok {
				line.Count = n
			}
		}
		line.UnitPrice = chosen.Price

		switch line.Inclusion.Kind {
		case catalog.Bundled:
			def, ok := f.Tier(line.Inclusion.DefaultTier)
			if !ok {
				line.Skipped = "unknown default tier"
				q.Lines = append(q.Lines, line)
				continue
			}
			line.DefaultPrice = def.Price
			if chosen.Name != def.Name {
				line.Amount = (chosen.Price - def.Price) * catalog.Money(line.Count)
			}
		default:
			line.Amount = chosen.Price * catalog.Money(line.Count)
		}

		q.Total += line.Amount
		q.Lines = append(q.Lines, line)
	}

	order := cat.FeatureOrder()
	sort.Slice(q.Lines, func(i, j int) bool {
		oi, iok := order[q.Lines[i].Feature]
		oj, jok := order[q.Lines[j].Feature]
		switch {
		case iok && jok:
			return oi < oj
		case iok != jok:
			return iok
		default:
			return q.Lines[i].Feature < q.Lines[j].Feature
		}
	})

	q.BelowBase = q.Total < q.BasePrice
	return q
}

// Total is Calculate reduced to the final amount.
func Total(cat *catalog.Catalog, bt *catalog.BusinessType, s State) catalog.Money {
	return Calculate(cat, bt, s).Total
}

// CalculateState looks up the state's business type and prices it.
func CalculateState(cat *catalog.Catalog, s State) (Quote, error) {
	bt, ok := cat.BusinessType(s.BusinessType)
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownBusinessType, s.BusinessType)
	}
	return Calculate(cat, bt, s), nil
}

package viewmodel

import (
	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
	"github.com/ManuelReschke/StudioSite/internal/pkg/pricing"
)

type BusinessTypeOption struct {
	Key         string
	Name        string
	Description string
	BasePrice   string
	Timeline    string
	Selected    bool
}

type TierOption struct {
	Name        catalog.TierName
	Description string
	Price       string
	Selected    bool
	IsDefault   bool
}

type FeatureRow struct {
	Name        string
	Description string
	Countable   bool
	MinCount    int
	Bundled     bool
	DefaultTier catalog.TierName
	Selected    catalog.TierName
	Removed     bool
	Tiers       []TierOption
	Pages       []string
	Amount      string
}

type GroupRows struct {
	Name     string
	Features []FeatureRow
}

type QuoteLine struct {
	Feature string
	Tier    catalog.TierName
	Count   int
	Amount  string
	Removed bool
}

type QuoteSummary struct {
	BusinessType string
	BasePrice    string
	Total        string
	BelowBase    bool
	Lines        []QuoteLine
}

// Pricing is the calculator page.
type Pricing struct {
	BusinessTypes []BusinessTypeOption
	Groups        []GroupRows
	Quote         QuoteSummary
}

// NewQuoteSummary formats a quote for display. Lines that neither cost
// nor save anything and were not removed are left out.
func NewQuoteSummary(cat *catalog.Catalog, bt *catalog.BusinessType, q pricing.Quote) QuoteSummary {
	sum := QuoteSummary{
		BusinessType: bt.Name,
		BasePrice:    cat.Format(q.BasePrice),
		Total:        cat.Format(q.Total),
		BelowBase:    q.BelowBase,
	}
	for _, l := range q.Lines {
		if l.Amount == 0 && !l.Removed {
			continue
		}
		sum.Lines = append(sum.Lines, QuoteLine{
			Feature: l.Feature,
			Tier:    l.Tier,
			Count:   l.Count,
			Amount:  cat.Format(l.Amount),
			Removed: l.Removed,
		})
	}
	return sum
}

func NewPricing(cat *catalog.Catalog, state pricing.State, q pricing.Quote) Pricing {
	bt, _ := cat.BusinessType(state.BusinessType)

	page := Pricing{}
	for _, b := range cat.BusinessTypes {
		page.BusinessTypes = append(page.BusinessTypes, BusinessTypeOption{
			Key:         b.Key,
			Name:        b.Name,
			Description: b.Description,
			BasePrice:   cat.Format(b.BasePrice),
			Timeline:    b.Timeline,
			Selected:    b.Key == state.BusinessType,
		})
	}

	amounts := make(map[string]catalog.Money, len(q.Lines))
	for _, l := range q.Lines {
		amounts[l.Feature] = l.Amount
	}

	for _, g := range cat.Groups {
		rows := GroupRows{Name: g.Name}
		for _, f := range g.Features {
			inc := bt.InclusionFor(f.Name)
			row := FeatureRow{
				Name:        f.Name,
				Description: f.Description,
				Countable:   f.Countable,
				MinCount:    f.MinCount,
				Bundled:     inc.Kind == catalog.Bundled,
				DefaultTier: inc.DefaultTier,
				Pages:       state.PageNames[f.Name],
				Amount:      cat.Format(amounts[f.Name]),
			}
			tier, selected := state.Selected(f.Name)
			if selected {
				row.Selected = tier
			}
			if sel, ok := state.Selections[f.Name]; ok && sel == nil {
				row.Removed = true
			}
			for _, t := range f.Tiers {
				row.Tiers = append(row.Tiers, TierOption{
					Name:        t.Name,
					Description: t.Description,
					Price:       cat.Format(t.Price),
					Selected:    selected && t.Name == tier,
					IsDefault:   t.Name == inc.DefaultTier,
				})
			}
			rows.Features = append(rows.Features, row)
		}
		page.Groups = append(page.Groups, rows)
	}

	page.Quote = NewQuoteSummary(cat, bt, q)
	return page
}

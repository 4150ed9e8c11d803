package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Money is an amount in minor units of the catalog currency.
type Money int64

type TierName string

const (
	TierBasic    TierName = "Basic"
	TierStandard TierName = "Standard"
	TierAdvanced TierName = "Advanced"
)

// TierNames lists the tiers in display order.
var TierNames = []TierName{TierBasic, TierStandard, TierAdvanced}

func (t TierName) Valid() bool {
	switch t {
	case TierBasic, TierStandard, TierAdvanced:
		return true
	default:
		return false
	}
}

type FeatureTier struct {
	Name        TierName `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Price       Money    `json:"price" yaml:"price"`
}

type Feature struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description" yaml:"description"`
	Tiers       []FeatureTier `json:"tiers" yaml:"tiers"`
	Countable   bool          `json:"countable" yaml:"countable"`
	MinCount    int           `json:"min_count" yaml:"min_count"`
}

// Tier returns the tier with the given name.
func (f *Feature) Tier(name TierName) (*FeatureTier, bool) {
	for i := range f.Tiers {
		if f.Tiers[i].Name == name {
			return &f.Tiers[i], true
		}
	}
	return nil, false
}

// FeatureGroup only groups features for display.
type FeatureGroup struct {
	Name     string    `json:"name" yaml:"name"`
	Features []Feature `json:"features" yaml:"features"`
}

type PageConfig struct {
	Count int      `json:"count" yaml:"count"`
	Names []string `json:"names" yaml:"names"`
}

type DefaultPageConfig struct {
	Static  PageConfig `json:"static" yaml:"static"`
	Dynamic PageConfig `json:"dynamic" yaml:"dynamic"`
}

// BusinessType is a preset: a base price plus the feature tiers that price already covers.
type BusinessType struct {
	Key          string              `json:"key" yaml:"key"`
	Name         string              `json:"name" yaml:"name"`
	Description  string              `json:"description" yaml:"description"`
	BasePrice    Money               `json:"base_price" yaml:"base_price"`
	Timeline     string              `json:"timeline" yaml:"timeline"`
	DefaultPages DefaultPageConfig   `json:"default_pages" yaml:"default_pages"`
	Defaults     map[string]TierName `json:"defaults" yaml:"defaults"`
}

type InclusionKind string

const (
	AddOn   InclusionKind = "add_on"
	Bundled InclusionKind = "bundled"
)

// Inclusion tells how a feature relates to a business type's base price.
// DefaultTier is only set for Bundled.
type Inclusion struct {
	Kind        InclusionKind `json:"kind"`
	DefaultTier TierName      `json:"default_tier,omitempty"`
}

// InclusionFor returns Bundled with the default tier when the base price
// already covers the feature, AddOn otherwise.
func (b *BusinessType) InclusionFor(feature string) Inclusion {
	if tier, ok := b.Defaults[feature]; ok {
		return Inclusion{Kind: Bundled, DefaultTier: tier}
	}
	return Inclusion{Kind: AddOn}
}

type Catalog struct {
	Currency      string         `json:"currency" yaml:"currency"`
	Groups        []FeatureGroup `json:"groups" yaml:"groups"`
	BusinessTypes []BusinessType `json:"business_types" yaml:"business_types"`
}

// Feature looks a feature up by name across all groups.
func (c *Catalog) Feature(name string) (*Feature, bool) {
	for gi := range c.Groups {
		for fi := range c.Groups[gi].Features {
			if c.Groups[gi].Features[fi].Name == name {
				return &c.Groups[gi].Features[fi], true
			}
		}
	}
	return nil, false
}

func (c *Catalog) BusinessType(key string) (*BusinessType, bool) {
	for i := range c.BusinessTypes {
		if c.BusinessTypes[i].Key == key {
			return &c.BusinessTypes[i], true
		}
	}
	return nil, false
}

// FeatureOrder maps every feature name to its position in catalog order.
func (c *Catalog) FeatureOrder() map[string]int {
	order := make(map[string]int)
	for _, g := range c.Groups {
		for _, f := range g.Features {
			order[f.Name] = len(order)
		}
	}
	return order
}

// Validate checks the catalog for consistency and reports every violation at once.
func (c *Catalog) Validate() error {
	var errs []error

	seen := make(map[string]bool)
	for _, g := range c.Groups {
		for _, f := range g.Features {
			if seen[f.Name] {
				errs = append(errs, fmt.Errorf("feature %q defined more than once", f.Name))
			}
			seen[f.Name] = true

			if f.MinCount < 0 {
				errs = append(errs, fmt.Errorf("feature %q: min count %d is negative", f.Name, f.MinCount))
			}

			tiers := make(map[TierName]bool)
			for _, t := range f.Tiers {
				if !t.Name.Valid() {
					errs = append(errs, fmt.Errorf("feature %q: unknown tier %q", f.Name, t.Name))
					continue
				}
				if tiers[t.Name] {
					errs = append(errs, fmt.Errorf("feature %q: duplicate tier %q", f.Name, t.Name))
				}
				tiers[t.Name] = true
			}
			for _, name := range TierNames {
				if !tiers[name] {
					errs = append(errs, fmt.Errorf("feature %q: missing tier %q", f.Name, name))
				}
			}
		}
	}

	keys := make(map[string]bool)
	for _, bt := range c.BusinessTypes {
		if bt.Key == "" {
			errs = append(errs, errors.New("business type without key"))
		}
		if keys[bt.Key] {
			errs = append(errs, fmt.Errorf("business type %q defined more than once", bt.Key))
		}
		keys[bt.Key] = true

		for feature, tier := range bt.Defaults {
			f, ok := c.Feature(feature)
			if !ok {
				errs = append(errs, fmt.Errorf("business type %q: default for unknown feature %q", bt.Key, feature))
				continue
			}
			if _, ok := f.Tier(tier); !ok {
				errs = append(errs, fmt.Errorf("business type %q: feature %q has no tier %q", bt.Key, feature, tier))
			}
		}
		for _, pc := range []struct {
			label string
			cfg   PageConfig
		}{{"static", bt.DefaultPages.Static}, {"dynamic", bt.DefaultPages.Dynamic}} {
			if pc.cfg.Count != len(pc.cfg.Names) {
				errs = append(errs, fmt.Errorf("business type %q: %s page count %d does not match %d names",
					bt.Key, pc.label, pc.cfg.Count, len(pc.cfg.Names)))
			}
		}
	}

	return errors.Join(errs...)
}

// Format renders an amount with two decimals and the catalog currency.
func (c *Catalog) Format(m Money) string {
	return FormatMoney(c.Currency, m)
}

func FormatMoney(currency string, m Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	whole := int64(m) / 100
	cents := int64(m) % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return fmt.Sprintf("%s%s %s.%02d", sign, currency, b.String(), cents)
}

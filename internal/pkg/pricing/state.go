package pricing

import (
	"errors"
	"fmt"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

var (
	ErrUnknownBusinessType = errors.New("unknown business type")
	ErrUnknownFeature      = errors.New("unknown feature")
	ErrUnknownTier         = errors.New("unknown tier")
	ErrNotCountable        = errors.New("feature is not countable")
	ErrPageIndex           = errors.New("page index out of range")
	ErrBelowMinCount       = errors.New("page count below minimum")
)

// State is the calculator selection for one visitor.
// A nil entry in Selections means the feature was explicitly removed.
type State struct {
	BusinessType string                       `json:"business_type"`
	Selections   map[string]*catalog.TierName `json:"selections"`
	PageCounts   map[string]int               `json:"page_counts"`
	PageNames    map[string][]string          `json:"page_names"`
}

// NewState returns the state a business type starts from: its default tiers and page lists.
func NewState(cat *catalog.Catalog, businessType string) (State, error) {
	bt, ok := cat.BusinessType(businessType)
	if !ok {
		return State{}, fmt.Errorf("%w: %q", ErrUnknownBusinessType, businessType)
	}

	s := State{
		BusinessType: bt.Key,
		Selections:   make(map[string]*catalog.TierName, len(bt.Defaults)),
		PageCounts:   make(map[string]int, 2),
		PageNames:    make(map[string][]string, 2),
	}
	for feature, tier := range bt.Defaults {
		s.Selections[feature] = tierPtr(tier)
	}

	s.PageNames[catalog.StaticPage] = append([]string{}, bt.DefaultPages.Static.Names...)
	s.PageCounts[catalog.StaticPage] = bt.DefaultPages.Static.Count
	s.PageNames[catalog.DynamicPage] = append([]string{}, bt.DefaultPages.Dynamic.Names...)
	s.PageCounts[catalog.DynamicPage] = bt.DefaultPages.Dynamic.Count

	return s, nil
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := State{
		BusinessType: s.BusinessType,
		Selections:   make(map[string]*catalog.TierName, len(s.Selections)),
		PageCounts:   make(map[string]int, len(s.PageCounts)),
		PageNames:    make(map[string][]string, len(s.PageNames)),
	}
	for k, v := range s.Selections {
		if v == nil {
			out.Selections[k] = nil
			continue
		}
		out.Selections[k] = tierPtr(*v)
	}
	for k, v := range s.PageCounts {
		out.PageCounts[k] = v
	}
	for k, v := range s.PageNames {
		out.PageNames[k] = append([]string{}, v...)
	}
	return out
}

// Selected returns the chosen tier for a feature, if any.
func (s State) Selected(feature string) (catalog.TierName, bool) {
	t, ok := s.Selections[feature]
	if !ok || t == nil {
		return "", false
	}
	return *t, true
}

// Normalize makes page counts mirror page name lists, which is what clients
// posting a full state are expected to rely on.
func (s State) Normalize() State {
	out := s.Clone()
	for feature, names := range out.PageNames {
		out.PageCounts[feature] = len(names)
	}
	return out
}

func tierPtr(t catalog.TierName) *catalog.TierName {
	return &t
}

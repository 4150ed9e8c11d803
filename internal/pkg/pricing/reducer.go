package pricing

import (
	"fmt"
	"strings"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

// Action is one user edit of the calculator state.
type Action interface {
	apply(cat *catalog.Catalog, s State) (State, error)
}

// Reduce applies an action to a copy of the state. On error the input state
// is returned unchanged.
func Reduce(cat *catalog.Catalog, s State, a Action) (State, error) {
	next, err := a.apply(cat, s.Clone())
	if err != nil {
		return s, err
	}
	return next, nil
}

// SelectBusinessType discards every customisation and starts over from the
// business type's defaults.
type SelectBusinessType struct {
	Key string
}

func (a SelectBusinessType) apply(cat *catalog.Catalog, _ State) (State, error) {
	return NewState(cat, a.Key)
}

type SelectTier struct {
	Feature string
	Tier    catalog.TierName
}

func (a SelectTier) apply(cat *catalog.Catalog, s State) (State, error) {
	f, ok := cat.Feature(a.Feature)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownFeature, a.Feature)
	}
	if _, ok := f.Tier(a.Tier); !ok {
		return s, fmt.Errorf("%w: %q on %q", ErrUnknownTier, a.Tier, a.Feature)
	}
	s.Selections[a.Feature] = tierPtr(a.Tier)
	return s, nil
}

// ClearTier removes a feature from the quote, bundled baseline included.
type ClearTier struct {
	Feature string
}

func (a ClearTier) apply(cat *catalog.Catalog, s State) (State, error) {
	if _, ok := cat.Feature(a.Feature); !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownFeature, a.Feature)
	}
	s.Selections[a.Feature] = nil
	return s, nil
}

// SetPageNames replaces the page list; the count follows the list length.
type SetPageNames struct {
	Feature string
	Names   []string
}

func (a SetPageNames) apply(cat *catalog.Catalog, s State) (State, error) {
	f, err := countableFeature(cat, a.Feature)
	if err != nil {
		return s, err
	}
	if len(a.Names) < f.MinCount {
		return s, fmt.Errorf("%w: %q needs at least %d", ErrBelowMinCount, a.Feature, f.MinCount)
	}
	setPages(s, a.Feature, append([]string{}, a.Names...))
	return s, nil
}

// AddPage appends a page. A blank name becomes "Page N".
type AddPage struct {
	Feature string
	Name    string
}

func (a AddPage) apply(cat *catalog.Catalog, s State) (State, error) {
	if _, err := countableFeature(cat, a.Feature); err != nil {
		return s, err
	}
	names := s.PageNames[a.Feature]
	name := strings.TrimSpace(a.Name)
	if name == "" {
		name = fmt.Sprintf("Page %d", len(names)+1)
	}
	setPages(s, a.Feature, append(names, name))
	return s, nil
}

type RemovePage struct {
	Feature string
	Index   int
}

func (a RemovePage) apply(cat *catalog.Catalog, s State) (State, error) {
	f, err := countableFeature(cat, a.Feature)
	if err != nil {
		return s, err
	}
	names := s.PageNames[a.Feature]
	if a.Index < 0 || a.Index >= len(names) {
		return s, fmt.Errorf("%w: %d of %d", ErrPageIndex, a.Index, len(names))
	}
	if len(names)-1 < f.MinCount {
		return s, fmt.Errorf("%w: %q needs at least %d", ErrBelowMinCount, a.Feature, f.MinCount)
	}
	setPages(s, a.Feature, append(names[:a.Index:a.Index], names[a.Index+1:]...))
	return s, nil
}

type RenamePage struct {
	Feature string
	Index   int
	Name    string
}

func (a RenamePage) apply(cat *catalog.Catalog, s State) (State, error) {
	if _, err := countableFeature(cat, a.Feature); err != nil {
		return s, err
	}
	names := s.PageNames[a.Feature]
	if a.Index < 0 || a.Index >= len(names) {
		return s, fmt.Errorf("%w: %d of %d", ErrPageIndex, a.Index, len(names))
	}
	if name := strings.TrimSpace(a.Name); name != "" {
		names[a.Index] = name
	}
	return s, nil
}

func countableFeature(cat *catalog.Catalog, name string) (*catalog.Feature, error) {
	f, ok := cat.Feature(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	if !f.Countable {
		return nil, fmt.Errorf("%w: %q", ErrNotCountable, name)
	}
	return f, nil
}

func setPages(s State, feature string, names []string) {
	s.PageNames[feature] = names
	s.PageCounts[feature] = len(names)
}

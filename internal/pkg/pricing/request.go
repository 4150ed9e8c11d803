package pricing

import (
	"errors"
	"fmt"

	"github.com/ManuelReschke/StudioSite/internal/pkg/catalog"
)

var ErrUnknownAction = errors.New("unknown action")

// Action type names used on the wire.
const (
	ActionSelectBusinessType = "select_business_type"
	ActionSelectTier         = "select_tier"
	ActionClearTier          = "clear_tier"
	ActionSetPageNames       = "set_page_names"
	ActionAddPage            = "add_page"
	ActionRemovePage         = "remove_page"
	ActionRenamePage         = "rename_page"
)

// ActionRequest is the JSON and form shape of an Action.
type ActionRequest struct {
	Type    string           `json:"type" form:"type"`
	Key     string           `json:"key,omitempty" form:"key"`
	Feature string           `json:"feature,omitempty" form:"feature"`
	Tier    catalog.TierName `json:"tier,omitempty" form:"tier"`
	Name    string           `json:"name,omitempty" form:"name"`
	Index   int              `json:"index,omitempty" form:"index"`
	Names   []string         `json:"names,omitempty" form:"names"`
}

func (r ActionRequest) Action() (Action, error) {
	switch r.Type {
	case ActionSelectBusinessType:
		return SelectBusinessType{Key: r.Key}, nil
	case ActionSelectTier:
		return SelectTier{Feature: r.Feature, Tier: r.Tier}, nil
	case ActionClearTier:
		return ClearTier{Feature: r.Feature}, nil
	case ActionSetPageNames:
		return SetPageNames{Feature: r.Feature, Names: r.Names}, nil
	case ActionAddPage:
		return AddPage{Feature: r.Feature, Name: r.Name}, nil
	case ActionRemovePage:
		return RemovePage{Feature: r.Feature, Index: r.Index}, nil
	case ActionRenamePage:
		return RenamePage{Feature: r.Feature, Index: r.Index, Name: r.Name}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, r.Type)
	}
}

// ReduceAll applies the requests in order. The first failing one stops the
// run; its position is part of the error and the input state is returned.
func ReduceAll(cat *catalog.Catalog, s State, reqs []ActionRequest) (State, error) {
	next := s
	for i, r := range reqs {
		a, err := r.Action()
		if err != nil {
			return s, fmt.Errorf("action %d: %w", i, err)
		}
		if next, err = Reduce(cat, next, a); err != nil {
			return s, fmt.Errorf("action %d (%s): %w", i, r.Type, err)
		}
	}
	return next, nil
}

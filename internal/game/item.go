package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item represents an object that can appear in a location or a
// player's inventory.
type Item struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ExamineText  string        `json:"examine_text,omitempty"` // falls back to Description
	Takeable     bool          `json:"takeable,omitempty"`
	Interactions []Interaction `json:"interactions,omitempty"`
}

// Interaction is a content-defined outcome for using this item on a
// target item. The engine only checks visibility preconditions; what
// actually happens is entirely data.
type Interaction struct {
	Target    string `json:"target"`             // item id this can be used on
	Narration string `json:"narration"`          // text describing the outcome
	Consumes  bool   `json:"consumes,omitempty"` // the used item is spent
	Yields    string `json:"yields,omitempty"`   // item id placed in the player's inventory
}

// Examine returns the detail text shown when a player examines the item.
func (i *Item) Examine() string {
	if i.ExamineText != "" {
		return i.ExamineText
	}
	return i.Description
}

// Validate satisfies storage.ValidatingSpec.
func (i *Item) Validate() error {
	el := errors.NewErrorList()

	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}

	seen := map[string]bool{}
	for n, in := range i.Interactions {
		if in.Target == "" {
			el.Add(fmt.Errorf("interaction %d: target is required", n))
			continue
		}
		if in.Narration == "" {
			el.Add(fmt.Errorf("interaction %d: narration is required", n))
		}
		if seen[in.Target] {
			el.Add(fmt.Errorf("interaction %d: duplicate target %s", n, in.Target))
		}
		seen[in.Target] = true
	}

	return el.Err()
}

// InteractionWith returns the interaction defined for the given target
// item, or nil if none exists.
func (i *Item) InteractionWith(target string) *Interaction {
	for n := range i.Interactions {
		if i.Interactions[n].Target == target {
			return &i.Interactions[n]
		}
	}
	return nil
}

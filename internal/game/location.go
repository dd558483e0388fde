package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Location represents a place in the world graph.
type Location struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Exits       map[string]string `json:"exits,omitempty"` // direction -> location id
	Items       []string          `json:"items,omitempty"` // item ids initially present
}

// Validate satisfies storage.ValidatingSpec. Cross-reference checks
// (exit destinations, item ids) happen when the Registry is built.
func (l *Location) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("location name is required"))
	}
	if l.Description == "" {
		el.Add(fmt.Errorf("description is required"))
	}

	for dir, dest := range l.Exits {
		if dir == "" {
			el.Add(fmt.Errorf("exit direction must not be empty"))
		}
		if dest == "" {
			el.Add(fmt.Errorf("exit %s: location id is required", dir))
		}
	}

	seen := map[string]bool{}
	for _, itemId := range l.Items {
		if itemId == "" {
			el.Add(fmt.Errorf("item id must not be empty"))
			continue
		}
		if seen[itemId] {
			el.Add(fmt.Errorf("item %s listed twice", itemId))
		}
		seen[itemId] = true
	}

	return el.Err()
}

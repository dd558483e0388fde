package game

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// Registry is the immutable catalog of locations and items. It is
// built once at startup and shared read-only by every session; a
// malformed world (dangling exit, unknown item reference, an item
// placed in two locations) aborts startup rather than surfacing as a
// runtime error.
type Registry struct {
	locations storage.Storer[*Location]
	items     storage.Storer[*Item]
}

func NewRegistry(locations storage.Storer[*Location], items storage.Storer[*Item]) (*Registry, error) {
	r := &Registry{
		locations: locations,
		items:     items,
	}

	err := r.validateReferences()
	if err != nil {
		return nil, fmt.Errorf("validating world content: %w", err)
	}

	return r, nil
}

func (r *Registry) validateReferences() error {
	el := errors.NewErrorList()

	placed := map[string]string{} // item id -> location id
	for locId, loc := range r.locations.GetAll() {
		for dir, dest := range loc.Exits {
			if r.locations.Get(dest) == nil {
				el.Add(fmt.Errorf("location %s: exit %s references unknown location %s", locId, dir, dest))
			}
		}

		for _, itemId := range loc.Items {
			if r.items.Get(itemId) == nil {
				el.Add(fmt.Errorf("location %s: unknown item %s", locId, itemId))
				continue
			}
			if other, ok := placed[itemId]; ok {
				el.Add(fmt.Errorf("item %s placed in both %s and %s", itemId, other, locId))
				continue
			}
			placed[itemId] = locId
		}
	}

	for itemId, item := range r.items.GetAll() {
		for _, in := range item.Interactions {
			if r.items.Get(in.Target) == nil {
				el.Add(fmt.Errorf("item %s: interaction references unknown target %s", itemId, in.Target))
			}
			if in.Yields != "" && r.items.Get(in.Yields) == nil {
				el.Add(fmt.Errorf("item %s: interaction yields unknown item %s", itemId, in.Yields))
			}
		}
	}

	return el.Err()
}

// Location returns the location definition for id.
func (r *Registry) Location(id storage.Identifier) (*Location, error) {
	loc := r.locations.Get(id.String())
	if loc == nil {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, id)
	}
	return loc, nil
}

// Item returns the item definition for id.
func (r *Registry) Item(id storage.Identifier) (*Item, error) {
	item := r.items.Get(id.String())
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return item, nil
}

// InitialContainers returns the starting container for every item in
// the catalog: the location that lists it, or none for items only
// reachable through interaction yields.
func (r *Registry) InitialContainers() map[storage.Identifier]Container {
	containers := map[storage.Identifier]Container{}
	for itemId := range r.items.GetAll() {
		containers[storage.Identifier(itemId)] = Container{}
	}
	for locId, loc := range r.locations.GetAll() {
		for _, itemId := range loc.Items {
			containers[storage.Identifier(itemId)] = LocationContainer(storage.Identifier(locId))
		}
	}
	return containers
}

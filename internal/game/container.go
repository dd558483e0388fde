package game

import "github.com/pixil98/go-adventure/internal/storage"

// ContainerKind tags the kind of thing currently holding an item.
type ContainerKind int

const (
	// ContainerNone marks an item that is not placed anywhere yet
	// (e.g. only reachable through an interaction yield) or that has
	// been consumed.
	ContainerNone ContainerKind = iota
	ContainerLocation
	ContainerPlayer
)

// Container identifies the single holder of an item. An item has
// exactly one container at any time; transitions happen only through
// GameState mutations, so an item can never be in a location and an
// inventory at once.
type Container struct {
	Kind ContainerKind
	Id   storage.Identifier
}

func LocationContainer(id storage.Identifier) Container {
	return Container{Kind: ContainerLocation, Id: id}
}

func PlayerContainer(id storage.Identifier) Container {
	return Container{Kind: ContainerPlayer, Id: id}
}

// At reports whether the container is the given location.
func (c Container) At(locationId storage.Identifier) bool {
	return c.Kind == ContainerLocation && c.Id == locationId
}

// HeldBy reports whether the container is the given player's inventory.
func (c Container) HeldBy(playerId storage.Identifier) bool {
	return c.Kind == ContainerPlayer && c.Id == playerId
}

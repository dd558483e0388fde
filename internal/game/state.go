package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pixil98/go-adventure/internal/storage"
)

// GameState is the single source of truth for all mutable game state:
// per-player sessions and the current container of every item. All
// access goes through its methods; one lock serializes mutation so
// concurrent commands cannot corrupt inventory or containment
// invariants (two takes of the same item cannot both succeed).
type GameState struct {
	mu       sync.Mutex
	registry *Registry
	start    storage.Identifier

	players    map[storage.Identifier]*PlayerState
	containers map[storage.Identifier]Container
}

// NewGameState creates a GameState over an immutable registry with
// item containment seeded from the registry's initial placement.
func NewGameState(registry *Registry, start storage.Identifier) (*GameState, error) {
	_, err := registry.Location(start)
	if err != nil {
		return nil, fmt.Errorf("start location: %w", err)
	}

	return &GameState{
		registry:   registry,
		start:      start,
		players:    make(map[storage.Identifier]*PlayerState),
		containers: registry.InitialContainers(),
	}, nil
}

// PlayerState holds one player's session: where they are, what they
// carry, and everywhere they have been. It is owned exclusively by
// the GameState that created it.
type PlayerState struct {
	Id       storage.Identifier
	Location storage.Identifier

	inventory  map[storage.Identifier]bool
	discovered map[storage.Identifier]bool
}

// PlayerSnapshot is the externally visible form of a session.
// Inventory and discovered locations are sorted so repeated snapshots
// of the same session compare equal.
type PlayerSnapshot struct {
	Id                  string   `json:"id"`
	CurrentLocation     string   `json:"currentLocation"`
	Inventory           []string `json:"inventory"`
	DiscoveredLocations []string `json:"discoveredLocations"`
}

// LookView is the engine's answer to look and move: the location the
// player ends up seeing and the items present there, in the order the
// location declares them.
type LookView struct {
	Location LocationSummary
	Items    []ItemSummary
	Exits    []string // sorted directions
}

// UseOutcome describes the content-defined effect of using an item on
// a target.
type UseOutcome struct {
	Narration string
	Consumed  bool
	Yield     *ItemSummary
}

// InitializePlayer creates a session for playerId if one does not
// exist, seeded at the start location with an empty inventory and
// only the start location discovered. Idempotent.
func (g *GameState) InitializePlayer(playerId storage.Identifier) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.getOrCreate(playerId)
}

// Player returns the session for playerId without creating one.
// Reads that should not spawn sessions use this; command handlers go
// through getOrCreate so a first command from an unknown player still
// succeeds.
func (g *GameState) Player(playerId storage.Identifier) (*PlayerSnapshot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.players[playerId]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerId)
	}
	return p.snapshot(), nil
}

// GetPlayerState returns the session for playerId, creating it on
// first contact.
func (g *GameState) GetPlayerState(playerId storage.Identifier) *PlayerSnapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.getOrCreate(playerId).snapshot()
}

// ItemsAt lists the items whose current container is the given
// location, in the order the location declares them.
func (g *GameState) ItemsAt(locationId storage.Identifier) ([]ItemSummary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	view, err := g.lookAt(locationId)
	if err != nil {
		return nil, err
	}
	return view.Items, nil
}

// Look describes the player's current location and marks it
// discovered.
func (g *GameState) Look(playerId storage.Identifier) (*LookView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.getOrCreate(playerId)
	p.discovered[p.Location] = true

	return g.lookAt(p.Location)
}

// Examine returns the full examine text of an item, provided the item
// is visible to the player: present at their location or carried.
func (g *GameState) Examine(playerId, itemId storage.Identifier) (*ItemSummary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.getOrCreate(playerId)

	item, err := g.registry.Item(itemId)
	if err != nil {
		return nil, err
	}

	c := g.containers[itemId]
	if !c.At(p.Location) && !c.HeldBy(playerId) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotVisible, itemId)
	}

	return &ItemSummary{
		Id:          itemId.String(),
		Name:        item.Name,
		Description: item.Examine(),
		Takeable:    item.Takeable,
	}, nil
}

// Move follows an exit from the player's current location. On success
// the destination becomes the current location, is marked discovered,
// and a look-equivalent view of it is returned. An unknown direction
// leaves the session untouched.
func (g *GameState) Move(playerId storage.Identifier, direction string) (*LookView, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.getOrCreate(playerId)

	loc, err := g.registry.Location(p.Location)
	if err != nil {
		return nil, err
	}

	dest, ok := loc.Exits[direction]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchExit, direction)
	}

	// Destination existence is a load-time invariant of the registry.
	p.Location = storage.Identifier(dest)
	p.discovered[p.Location] = true

	return g.lookAt(p.Location)
}

// Take moves a takeable item from the player's current location into
// their inventory. The transfer is atomic: the item is never in both
// places, and a concurrent second take fails with ErrItemNotVisible.
func (g *GameState) Take(playerId, itemId storage.Identifier) (*ItemSummary, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.getOrCreate(playerId)

	item, err := g.registry.Item(itemId)
	if err != nil {
		return nil, err
	}

	if !g.containers[itemId].At(p.Location) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotVisible, itemId)
	}
	if !item.Takeable {
		return nil, fmt.Errorf("%w: %s", ErrItemNotTakeable, itemId)
	}

	g.containers[itemId] = PlayerContainer(playerId)
	p.inventory[itemId] = true

	return &ItemSummary{
		Id:          itemId.String(),
		Name:        item.Name,
		Description: item.Description,
		Takeable:    item.Takeable,
	}, nil
}

// Use applies the content-defined interaction of itemId on targetId.
// The engine checks visibility of both and then follows the outcome
// data: consume the used item, yield an item into the inventory. A
// pairing with no defined interaction fails with ErrNoEffect and no
// state change.
func (g *GameState) Use(playerId, itemId, targetId storage.Identifier) (*UseOutcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.getOrCreate(playerId)

	item, err := g.registry.Item(itemId)
	if err != nil {
		return nil, err
	}
	if c := g.containers[itemId]; !c.At(p.Location) && !c.HeldBy(playerId) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotVisible, itemId)
	}

	if _, err := g.registry.Item(targetId); err != nil {
		return nil, err
	}
	if c := g.containers[targetId]; !c.At(p.Location) && !c.HeldBy(playerId) {
		return nil, fmt.Errorf("%w: %s", ErrItemNotVisible, targetId)
	}

	in := item.InteractionWith(targetId.String())
	if in == nil {
		return nil, fmt.Errorf("%w: %s on %s", ErrNoEffect, itemId, targetId)
	}

	outcome := &UseOutcome{
		Narration: in.Narration,
		Consumed:  in.Consumes,
	}

	if in.Consumes {
		g.containers[itemId] = Container{}
		delete(p.inventory, itemId)
	}

	if in.Yields != "" {
		yieldId := storage.Identifier(in.Yields)
		// Yield existence is a load-time invariant of the registry.
		yield, _ := g.registry.Item(yieldId)
		g.containers[yieldId] = PlayerContainer(playerId)
		p.inventory[yieldId] = true
		outcome.Yield = &ItemSummary{
			Id:          yieldId.String(),
			Name:        yield.Name,
			Description: yield.Description,
			Takeable:    yield.Takeable,
		}
	}

	return outcome, nil
}

// getOrCreate must be called with the lock held.
func (g *GameState) getOrCreate(playerId storage.Identifier) *PlayerState {
	if p, ok := g.players[playerId]; ok {
		return p
	}

	p := &PlayerState{
		Id:         playerId,
		Location:   g.start,
		inventory:  map[storage.Identifier]bool{},
		discovered: map[storage.Identifier]bool{g.start: true},
	}
	g.players[playerId] = p
	return p
}

// lookAt must be called with the lock held.
func (g *GameState) lookAt(locationId storage.Identifier) (*LookView, error) {
	loc, err := g.registry.Location(locationId)
	if err != nil {
		return nil, err
	}

	view := &LookView{
		Location: LocationSummary{
			Id:          locationId.String(),
			Name:        loc.Name,
			Description: loc.Description,
		},
	}

	// Declaration order in the location keeps item listings stable.
	for _, itemId := range loc.Items {
		if !g.containers[storage.Identifier(itemId)].At(locationId) {
			continue
		}
		item, err := g.registry.Item(storage.Identifier(itemId))
		if err != nil {
			return nil, err
		}
		view.Items = append(view.Items, ItemSummary{
			Id:          itemId,
			Name:        item.Name,
			Description: item.Description,
			Takeable:    item.Takeable,
		})
	}

	for dir := range loc.Exits {
		view.Exits = append(view.Exits, dir)
	}
	sort.Strings(view.Exits)

	return view, nil
}

func (p *PlayerState) snapshot() *PlayerSnapshot {
	s := &PlayerSnapshot{
		Id:                  p.Id.String(),
		CurrentLocation:     p.Location.String(),
		Inventory:           make([]string, 0, len(p.inventory)),
		DiscoveredLocations: make([]string, 0, len(p.discovered)),
	}
	for id := range p.inventory {
		s.Inventory = append(s.Inventory, id.String())
	}
	for id := range p.discovered {
		s.DiscoveredLocations = append(s.DiscoveredLocations, id.String())
	}
	sort.Strings(s.Inventory)
	sort.Strings(s.DiscoveredLocations)
	return s
}

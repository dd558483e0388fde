package commands

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

// mapStore is an in-memory Storer for tests.
type mapStore[T interface{ Validate() error }] map[string]T

func (s mapStore[T]) Get(id string) T {
	return s[id]
}

func (s mapStore[T]) GetAll() map[string]T {
	return s
}

// capturingPublisher records every published message.
type capturingPublisher struct {
	subjects []string
	payloads [][]byte
}

func (p *capturingPublisher) Publish(subject string, data []byte) error {
	p.subjects = append(p.subjects, subject)
	p.payloads = append(p.payloads, data)
	return nil
}

func testHandler(t *testing.T) (*Handler, *capturingPublisher) {
	t.Helper()

	locations := mapStore[*game.Location]{
		"library": {
			Name:        "Ancient Library",
			Description: "Dusty shelves climb into the dark.",
			Exits:       map[string]string{"north": "study"},
			Items:       []string{"silver_key", "oak_desk"},
		},
		"study": {
			Name:        "Cramped Study",
			Description: "Papers everywhere, and a heavy chest.",
			Exits:       map[string]string{"south": "library"},
			Items:       []string{"locked_chest"},
		},
	}
	items := mapStore[*game.Item]{
		"silver_key": {
			Name:        "Silver Key",
			Description: "A small tarnished key.",
			ExamineText: "The bow is engraved with a coiled serpent.",
			Takeable:    true,
			Interactions: []game.Interaction{
				{
					Target:    "locked_chest",
					Narration: "The lock clicks open.",
					Consumes:  true,
					Yields:    "gold_coin",
				},
			},
		},
		"oak_desk": {
			Name:        "Oak Desk",
			Description: "Far too heavy to move.",
		},
		"locked_chest": {
			Name:        "Locked Chest",
			Description: "Iron-banded, with a small keyhole.",
		},
		"gold_coin": {
			Name:        "Gold Coin",
			Description: "It glints even in the gloom.",
			Takeable:    true,
		},
	}

	registry, err := game.NewRegistry(locations, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, err := game.NewGameState(registry, "library")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pub := &capturingPublisher{}
	return NewHandler(state, pub), pub
}

func TestHandler_Exec_InvalidInput(t *testing.T) {
	tests := map[string]struct {
		playerId string
		command  string
		args     Args
		expMsg   string
	}{
		"empty player id":   {command: "look", expMsg: "A player id is required."},
		"unknown command":   {playerId: "p1", command: "dance", expMsg: "Unknown command: dance"},
		"examine no item":   {playerId: "p1", command: "examine", expMsg: "Examine what?"},
		"move no direction": {playerId: "p1", command: "move", expMsg: "Move where?"},
		"take no item":      {playerId: "p1", command: "take", expMsg: "Take what?"},
		"use no target":     {playerId: "p1", command: "use", args: Args{Item: "silver_key"}, expMsg: "Use what on what?"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, _ := testHandler(t)

			res := h.Exec(context.Background(), tt.playerId, tt.command, tt.args)
			testutil.AssertEqual(t, "success", res.Success, false)
			testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeInvalidInput)
			testutil.AssertEqual(t, "message", res.Message, tt.expMsg)
			if res.Hint == "" {
				t.Error("expected a non-empty hint")
			}
		})
	}
}

func TestHandler_Look(t *testing.T) {
	h, _ := testHandler(t)

	res := h.Exec(context.Background(), "p1", "look", Args{})
	testutil.AssertEqual(t, "success", res.Success, true)
	testutil.AssertEqual(t, "location name", res.Location.Name, "Ancient Library")
	testutil.AssertEqual(t, "item count", len(res.Items), 2)
	testutil.AssertEqual(t, "first item", res.Items[0].Id, "silver_key")

	if !strings.Contains(res.Narration, "Ancient Library") {
		t.Errorf("narration missing location name: %q", res.Narration)
	}
	if !strings.Contains(res.Narration, "Silver Key and Oak Desk") {
		t.Errorf("narration missing item listing: %q", res.Narration)
	}
	if !strings.Contains(res.Narration, "Exits: north.") {
		t.Errorf("narration missing exits: %q", res.Narration)
	}
	// The takeable key wins the hint
	testutil.AssertEqual(t, "hint", res.Hint, "The Silver Key looks useful - try taking it.")
}

func TestHandler_Examine(t *testing.T) {
	h, _ := testHandler(t)
	ctx := context.Background()

	res := h.Exec(ctx, "p1", "examine", Args{Item: "silver_key"})
	testutil.AssertEqual(t, "success", res.Success, true)
	testutil.AssertEqual(t, "item count", len(res.Items), 1)
	testutil.AssertEqual(t, "item name", res.Items[0].Name, "Silver Key")
	testutil.AssertEqual(t, "examine text", res.Items[0].Description, "The bow is engraved with a coiled serpent.")

	res = h.Exec(ctx, "p1", "examine", Args{Item: "nonexistent_item"})
	testutil.AssertEqual(t, "success", res.Success, false)
	testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeNotFound)

	// Exists in the registry, but not reachable from here
	res = h.Exec(ctx, "p1", "examine", Args{Item: "gold_coin"})
	testutil.AssertEqual(t, "success", res.Success, false)
	testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeNotVisible)
	testutil.AssertEqual(t, "hint", res.Hint, "Look around first, or check your inventory.")
}

func TestHandler_Move(t *testing.T) {
	h, _ := testHandler(t)
	ctx := context.Background()

	res := h.Exec(ctx, "p1", "move", Args{Direction: "north"})
	testutil.AssertEqual(t, "success", res.Success, true)
	testutil.AssertEqual(t, "location name", res.Location.Name, "Cramped Study")
	testutil.AssertEqual(t, "item count", len(res.Items), 1)

	res = h.Exec(ctx, "p1", "move", Args{Direction: "west"})
	testutil.AssertEqual(t, "success", res.Success, false)
	testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeNoSuchExit)
	testutil.AssertEqual(t, "message", res.Message, "You can't go that way.")
}

func TestHandler_Take(t *testing.T) {
	h, _ := testHandler(t)
	ctx := context.Background()

	res := h.Exec(ctx, "p1", "take", Args{Item: "silver_key"})
	testutil.AssertEqual(t, "success", res.Success, true)
	testutil.AssertEqual(t, "narration", res.Narration, "You take the Silver Key.")

	res = h.Exec(ctx, "p1", "take", Args{Item: "silver_key"})
	testutil.AssertEqual(t, "second take fails", res.Success, false)
	testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeNotVisible)

	res = h.Exec(ctx, "p1", "take", Args{Item: "oak_desk"})
	testutil.AssertEqual(t, "not takeable", res.Error, game.ErrorCodeNotTakeable)
	testutil.AssertEqual(t, "hint", res.Hint, "Not everything can be carried. Try examining it instead.")
}

func TestHandler_Use(t *testing.T) {
	h, _ := testHandler(t)
	ctx := context.Background()

	h.Exec(ctx, "p1", "take", Args{Item: "silver_key"})
	h.Exec(ctx, "p1", "move", Args{Direction: "north"})

	res := h.Exec(ctx, "p1", "use", Args{Item: "silver_key", Target: "locked_chest"})
	testutil.AssertEqual(t, "success", res.Success, true)
	testutil.AssertEqual(t, "narration", res.Narration, "The lock clicks open. You now have the Gold Coin.")
	testutil.AssertEqual(t, "yield", res.Items[0].Id, "gold_coin")

	// No interaction defined for this pairing
	res = h.Exec(ctx, "p1", "use", Args{Item: "gold_coin", Target: "locked_chest"})
	testutil.AssertEqual(t, "success", res.Success, false)
	testutil.AssertEqual(t, "error", res.Error, game.ErrorCodeNoEffect)
}

func TestHandler_PublishesEvents(t *testing.T) {
	h, pub := testHandler(t)

	h.Exec(context.Background(), "p1", "look", Args{})

	testutil.AssertEqual(t, "publish count", len(pub.subjects), 2)
	testutil.AssertEqual(t, "player subject", pub.subjects[0], "player-p1")
	testutil.AssertEqual(t, "broadcast subject", pub.subjects[1], "events")

	var event Event
	if err := json.Unmarshal(pub.payloads[0], &event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "event player", event.Player, "p1")
	testutil.AssertEqual(t, "event command", event.Command, "look")
	testutil.AssertEqual(t, "event success", event.Success, true)
	if event.Id == "" {
		t.Error("expected a non-empty event id")
	}
}

func TestHandler_HintAlwaysPresent(t *testing.T) {
	h, _ := testHandler(t)
	ctx := context.Background()

	execs := []struct {
		command string
		args    Args
	}{
		{"look", Args{}},
		{"examine", Args{Item: "silver_key"}},
		{"examine", Args{Item: "oak_desk"}},
		{"examine", Args{Item: "bogus"}},
		{"move", Args{Direction: "north"}},
		{"move", Args{Direction: "nowhere"}},
		{"take", Args{Item: "locked_chest"}},
		{"use", Args{Item: "silver_key", Target: "oak_desk"}},
		{"dance", Args{}},
	}
	for _, e := range execs {
		res := h.Exec(ctx, "p1", e.command, e.args)
		if res.Hint == "" {
			t.Errorf("command %s %+v produced an empty hint", e.command, e.args)
		}
	}
}

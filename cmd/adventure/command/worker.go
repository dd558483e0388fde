package command

import (
	"context"
	"fmt"

	"github.com/pixil98/go-adventure/internal/api"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-adventure/internal/stories"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load world content into the registry
	registry, err := cfg.Storage.BuildRegistry()
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	state, err := game.NewGameState(registry, storage.Identifier(cfg.Engine.StartLocation))
	if err != nil {
		return nil, fmt.Errorf("creating game state: %w", err)
	}

	// Create the embedded nats server. Command events are published
	// through it once it has started.
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	handler := commands.NewHandler(state, natsServer)

	repo, err := stories.NewSQLiteRepository(context.Background(), cfg.Stories.Path)
	if err != nil {
		return nil, fmt.Errorf("opening story repository: %w", err)
	}

	relay, err := cfg.Relay.BuildRelayClient()
	if err != nil {
		return nil, fmt.Errorf("creating relay client: %w", err)
	}

	apiServer := api.NewServer(api.ServerOptions{
		Port:     cfg.Api.Port,
		Commands: handler,
		State:    state,
		Stories:  repo,
		Relay:    relay,
	})

	return service.WorkerList{
		"nats": natsServer,
		"api":  apiServer,
	}, nil
}

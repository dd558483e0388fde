package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/stories"
)

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front for the engine and the story routes. It
// runs as a service worker: Start blocks until the context is
// cancelled, then shuts the listener down.
type Server struct {
	server *http.Server
}

type ServerOptions struct {
	Port     uint16
	Commands *commands.Handler
	State    *game.GameState
	Stories  stories.Repository
	Relay    *RelayClient
}

func NewServer(opts ServerOptions) *Server {
	h := &handlers{
		commands: opts.Commands,
		state:    opts.State,
		stories:  opts.Stories,
		relay:    opts.Relay,
	}

	r := mux.NewRouter()
	r.HandleFunc("/players/{playerId}", h.initializePlayer).Methods(http.MethodPost)
	r.HandleFunc("/players/{playerId}", h.getPlayerState).Methods(http.MethodGet)
	r.HandleFunc("/players/{playerId}/commands/{command}", h.execCommand).Methods(http.MethodPost)
	r.HandleFunc("/stories", h.createStory).Methods(http.MethodPost)
	r.HandleFunc("/stories", h.listStories).Methods(http.MethodGet)
	r.HandleFunc("/stories/{storyId}", h.getStory).Methods(http.MethodGet)
	r.HandleFunc("/stories/{storyId}/status", h.setStoryStatus).Methods(http.MethodPut)
	r.HandleFunc("/stories/{storyId}/relay", h.relayOp("")).Methods(http.MethodPost)
	r.HandleFunc("/stories/{storyId}/relay/peek", h.relayOp("peek")).Methods(http.MethodPost)
	r.HandleFunc("/stories/{storyId}/relay/poll", h.relayOp("poll")).Methods(http.MethodPost)
	r.HandleFunc("/images", h.proxyImage).Methods(http.MethodGet)

	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", opts.Port),
			Handler: r,
		},
	}
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	slog.InfoContext(ctx, "api server listening", "addr", s.server.Addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("api server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/stories"
	"github.com/pixil98/go-adventure/internal/storage"
)

type handlers struct {
	commands *commands.Handler
	state    *game.GameState
	stories  stories.Repository
	relay    *RelayClient
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (h *handlers) initializePlayer(w http.ResponseWriter, r *http.Request) {
	playerId := mux.Vars(r)["playerId"]
	if playerId == "" {
		writeError(w, http.StatusBadRequest, "player id is required")
		return
	}

	h.state.InitializePlayer(storage.Identifier(playerId))
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) getPlayerState(w http.ResponseWriter, r *http.Request) {
	playerId := mux.Vars(r)["playerId"]
	if playerId == "" {
		writeError(w, http.StatusBadRequest, "player id is required")
		return
	}

	writeJSON(w, http.StatusOK, h.state.GetPlayerState(storage.Identifier(playerId)))
}

// execCommand runs a game command. Failed commands are still HTTP
// 200: they are game outcomes carried in the result body, not
// transport errors.
func (h *handlers) execCommand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var args commands.Args
	err := json.NewDecoder(r.Body).Decode(&args)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	res := h.commands.Exec(r.Context(), vars["playerId"], vars["command"], args)
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) createStory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	story, err := h.stories.CreateStory(r.Context(), req.Title)
	if err != nil {
		slog.ErrorContext(r.Context(), "creating story", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create story")
		return
	}

	writeJSON(w, http.StatusCreated, story)
}

func (h *handlers) listStories(w http.ResponseWriter, r *http.Request) {
	all, err := h.stories.ListStories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "listing stories", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list stories")
		return
	}
	if all == nil {
		all = []*stories.Story{}
	}

	writeJSON(w, http.StatusOK, all)
}

func (h *handlers) getStory(w http.ResponseWriter, r *http.Request) {
	story, err := h.stories.GetStory(r.Context(), mux.Vars(r)["storyId"])
	if err != nil {
		if errors.Is(err, stories.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "story not found")
			return
		}
		slog.ErrorContext(r.Context(), "getting story", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get story")
		return
	}

	writeJSON(w, http.StatusOK, story)
}

func (h *handlers) setStoryStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status stories.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	err := h.stories.SetStoryStatus(r.Context(), mux.Vars(r)["storyId"], req.Status)
	if err != nil {
		if errors.Is(err, stories.ErrStoryNotFound) {
			writeError(w, http.StatusNotFound, "story not found")
			return
		}
		slog.ErrorContext(r.Context(), "updating story", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update story")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

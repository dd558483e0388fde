package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// RelayClient forwards multiplayer session traffic to the hosted
// per-story session backend. The payloads are opaque; the routes only
// shuttle bytes and status codes.
type RelayClient struct {
	baseURL string
	client  *http.Client
}

func NewRelayClient(baseURL string, timeout time.Duration) *RelayClient {
	return &RelayClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Forward posts body to the backend's story endpoint. op is "" for a
// message send, or "peek"/"poll". The caller owns the response body.
func (c *RelayClient) Forward(ctx context.Context, storyId, op string, body io.Reader) (*http.Response, error) {
	url := fmt.Sprintf("%s/story/%s", c.baseURL, storyId)
	if op != "" {
		url = fmt.Sprintf("%s/%s", url, op)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("building relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forwarding to session backend: %w", err)
	}

	return resp, nil
}

func (h *handlers) relayOp(op string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storyId := mux.Vars(r)["storyId"]

		resp, err := h.relay.Forward(r.Context(), storyId, op, r.Body)
		if err != nil {
			slog.ErrorContext(r.Context(), "relaying to session backend", "story", storyId, "error", err)
			writeError(w, http.StatusBadGateway, "session backend unreachable")
			return
		}
		defer func() { _ = resp.Body.Close() }()

		if ct := resp.Header.Get("Content-Type"); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.WriteHeader(resp.StatusCode)
		if _, err := io.Copy(w, resp.Body); err != nil {
			slog.WarnContext(r.Context(), "copying relay response", "error", err)
		}
	}
}

package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// proxyImage fetches a remote scene image on behalf of the client so
// the browser never talks to the image host directly. Only https URLs
// serving image content are passed through.
func (h *handlers) proxyImage(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	target, err := url.Parse(raw)
	if err != nil || target.Scheme != "https" || target.Host == "" {
		writeError(w, http.StatusBadRequest, "url must be an absolute https url")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid url")
		return
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.ErrorContext(r.Context(), "fetching image", "url", target.String(), "error", err)
		writeError(w, http.StatusBadGateway, "image host unreachable")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		writeError(w, http.StatusBadGateway, "image host returned an error")
		return
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		writeError(w, http.StatusBadGateway, "target is not an image")
		return
	}

	w.Header().Set("Content-Type", ct)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.WarnContext(r.Context(), "copying image response", "error", err)
	}
}

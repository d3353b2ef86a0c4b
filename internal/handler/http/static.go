package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// static serves the game client application from the configured static
// directory. Requests for paths that do not map to an existing file fall
// back to the client entry document, so client-side routes resolve after a
// hard refresh.
func (h *Handler) static(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}

	// reject path traversal before touching the filesystem
	cleaned := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if strings.HasPrefix(cleaned, "..") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticDir, cleaned)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}

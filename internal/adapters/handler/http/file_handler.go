package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

// FileHandler serves stored profile photos and candidacy documents back by
// their opaque reference. The bytes are never interpreted here.
type FileHandler struct {
	files ports.FileStore
}

func NewFileHandler(files ports.FileStore) *FileHandler {
	return &FileHandler{files: files}
}

func (h *FileHandler) Serve(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	f, err := h.files.Open(r.Context(), ref)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	defer f.Close()

	if ct := mime.TypeByExtension(filepath.Ext(ref)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	io.Copy(w, f)
}

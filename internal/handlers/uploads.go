package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/md-rashed-zaman/bookinglite/internal/uploads"
)

const maxUploadBytes = 32 << 20

type UploadHandler struct {
	store *uploads.Store
}

func NewUploadHandler(store *uploads.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

type uploadFailure struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type uploadResponse struct {
	Message string          `json:"message"`
	Files   []string        `json:"files"`
	Failed  []uploadFailure `json:"failed,omitempty"`
}

// Upload stores every part of the "files" field independently and reports
// the stored names plus any per-file failures.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}
	if parts[0].Filename == "" {
		writeError(w, http.StatusBadRequest, "No selected file")
		return
	}

	stored := []string{}
	var failed []uploadFailure
	for _, part := range parts {
		f, err := part.Open()
		if err != nil {
			failed = append(failed, uploadFailure{Filename: part.Filename, Error: "unreadable file part"})
			continue
		}
		name, err := h.store.Save(part.Filename, f)
		_ = f.Close()
		if err != nil {
			reason := "failed to store file"
			if errors.Is(err, uploads.ErrInvalidFilename) {
				reason = "invalid filename"
			}
			failed = append(failed, uploadFailure{Filename: part.Filename, Error: reason})
			continue
		}
		stored = append(stored, name)
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Message: fmt.Sprintf("Successfully uploaded %d file(s)", len(stored)),
		Files:   stored,
		Failed:  failed,
	})
}

func (h *UploadHandler) Image(w http.ResponseWriter, r *http.Request) {
	p, err := h.store.Path(r.PathValue("filename"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Image not found")
		return
	}
	http.ServeFile(w, r, p)
}

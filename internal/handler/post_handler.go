package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Mohsin1016/post-blog-test/internal/service"
)

// allowedImageTypes limits cover uploads to browser-displayable images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// readPostForm parses the multipart body into a PostInput. The file part is
// optional; when absent, input.File stays nil.
func (h *Handlers) readPostForm(w http.ResponseWriter, r *http.Request) (service.PostInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("file too large (max %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "invalid multipart form", http.StatusBadRequest)
		}
		return service.PostInput{}, false
	}

	input := service.PostInput{
		Title:   r.FormValue("title"),
		Summary: r.FormValue("summary"),
		Content: r.FormValue("content"),
	}

	if input.Title == "" {
		WriteError(w, "title is required", http.StatusBadRequest)
		return service.PostInput{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return input, true
		}
		WriteError(w, "failed to read file", http.StatusBadRequest)
		return service.PostInput{}, false
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		file.Close()
		WriteError(w, "unsupported file type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return service.PostInput{}, false
	}

	input.File = &service.Upload{
		FileName: header.Filename,
		Size:     header.Size,
		Reader:   file,
	}

	return input, true
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	input, ok := h.readPostForm(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.Create(r.Context(), identity, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		WriteError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	input, ok := h.readPostForm(w, r)
	if !ok {
		return
	}

	postID := r.FormValue("id")
	if postID == "" {
		WriteError(w, "post id is required", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.Update(r.Context(), identity, postID, input)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListRecent(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetByID(r.Context(), postID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// photoTypes maps accepted sniffed photo content types to stored extensions.
var photoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

var pdfMagic = []byte("%PDF-")

// handlePhotoUpload accepts a raw image body, sniffs its type, and stores it
// in the data directory. The stored file name is recorded on the profile.
func (s *Server) handlePhotoUpload(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	contentType := http.DetectContentType(body)
	ext, ok := photoTypes[contentType]
	if !ok {
		apiError(w, http.StatusUnsupportedMediaType,
			"photo must be JPEG, PNG, or WebP, got "+contentType)
		return
	}

	name := "photo" + ext
	if !s.saveUpload(w, name, body) {
		return
	}
	if err := s.store.SetPhotoPath(name); err != nil {
		storeError(w, err)
		return
	}

	s.invalidatePage()
	respondJSON(w, http.StatusOK, map[string]string{"path": "/photo"})
}

// handleResumeUpload accepts a raw PDF body and stores it in the data
// directory.
func (s *Server) handleResumeUpload(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	if !bytes.HasPrefix(body, pdfMagic) {
		apiError(w, http.StatusUnsupportedMediaType, "resume must be a PDF")
		return
	}

	const name = "resume.pdf"
	if !s.saveUpload(w, name, body) {
		return
	}
	if err := s.store.SetResumePath(name); err != nil {
		storeError(w, err)
		return
	}

	s.invalidatePage()
	respondJSON(w, http.StatusOK, map[string]string{"path": "/resume"})
}

func (s *Server) handlePhoto(w http.ResponseWriter, r *http.Request) {
	s.serveUpload(w, r, s.store.Portfolio().Profile.PhotoPath, "")
}

func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	s.serveUpload(w, r, s.store.Portfolio().Profile.ResumePath, "application/pdf")
}

func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			apiError(w, http.StatusRequestEntityTooLarge, "upload exceeds size limit")
			return nil, false
		}
		apiError(w, http.StatusBadRequest, "could not read upload: "+err.Error())
		return nil, false
	}
	if len(body) == 0 {
		apiError(w, http.StatusBadRequest, "empty upload")
		return nil, false
	}
	return body, true
}

func (s *Server) saveUpload(w http.ResponseWriter, name string, body []byte) bool {
	if err := os.WriteFile(filepath.Join(s.cfg.DataDir, name), body, 0o644); err != nil {
		apiError(w, http.StatusInternalServerError, "could not store upload: "+err.Error())
		return false
	}
	return true
}

// serveUpload serves a stored upload by its recorded file name. Names are
// fixed by the upload handlers, so a bare Base check is enough to keep the
// path inside the data directory.
func (s *Server) serveUpload(w http.ResponseWriter, r *http.Request, name, contentType string) {
	if name == "" || name != filepath.Base(name) {
		http.NotFound(w, r)
		return
	}
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	http.ServeFile(w, r, filepath.Join(s.cfg.DataDir, name))
}

package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/foliokit/folio/internal/sanitize"
	"github.com/foliokit/folio/internal/store"
)

// entityHandlers bundles the store operations for one entity collection.
// desc is nil for entities without rich text.
type entityHandlers[T any] struct {
	add    func(T) (T, error)
	update func(T) (T, error)
	delete func(string) error
	setID  func(*T, string)
	desc   func(T) string
}

// registerEntityRoutes registers POST /api/{name}, PUT /api/{name}/{id}, and
// DELETE /api/{name}/{id} behind auth.
func registerEntityRoutes[T any](s *Server, name string, h entityHandlers[T]) {
	s.mux.HandleFunc("POST /api/"+name, s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		var in T
		if !decodeJSON(w, r, &in) {
			return
		}

		warnUnsafeDescription(name, h, in)
		out, err := h.add(in)
		if err != nil {
			storeError(w, err)
			return
		}

		s.invalidatePage()
		respondJSON(w, http.StatusCreated, out)
	}))

	s.mux.HandleFunc("PUT /api/"+name+"/{id}", s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		var in T
		if !decodeJSON(w, r, &in) {
			return
		}
		h.setID(&in, r.PathValue("id"))

		warnUnsafeDescription(name, h, in)
		out, err := h.update(in)
		if err != nil {
			storeError(w, err)
			return
		}

		s.invalidatePage()
		respondJSON(w, http.StatusOK, out)
	}))

	s.mux.HandleFunc("DELETE /api/"+name+"/{id}", s.requireAuth(func(w http.ResponseWriter, r *http.Request) {
		if err := h.delete(r.PathValue("id")); err != nil {
			storeError(w, err)
			return
		}

		s.invalidatePage()
		w.WriteHeader(http.StatusNoContent)
	}))
}

func (s *Server) handlePortfolioJSON(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.store.Portfolio())
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in store.Profile
	if !decodeJSON(w, r, &in) {
		return
	}

	out, err := s.store.UpdateProfile(in)
	if err != nil {
		storeError(w, err)
		return
	}

	s.invalidatePage()
	respondJSON(w, http.StatusOK, out)
}

// warnUnsafeDescription logs when an incoming description trips the danger
// classifier. Advisory only: the content is sanitized on write regardless.
func warnUnsafeDescription[T any](collection string, h entityHandlers[T], item T) {
	if h.desc == nil {
		return
	}
	if d := h.desc(item); !sanitize.IsSafeContent(d) {
		slog.Warn("incoming description contains active content, sanitizing",
			"collection", collection)
	}
}

func decodeJSON[T any](w http.ResponseWriter, r *http.Request, v *T) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		apiError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func apiError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		apiError(w, http.StatusNotFound, "no such entry")
		return
	}
	apiError(w, http.StatusInternalServerError, "could not save portfolio: "+err.Error())
}

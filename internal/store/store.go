// Package store persists the portfolio document as a JSON file and is the
// write-side gate for rich-text content: every description field passes
// through the sanitizer before it is stored, so nothing downstream ever
// renders unclean markup.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/foliokit/folio/internal/sanitize"
)

// ErrNotFound is returned for operations on an unknown entity ID.
var ErrNotFound = errors.New("store: not found")

const fileName = "portfolio.json"

// Store is a mutex-guarded JSON-file store for the portfolio document.
type Store struct {
	mu        sync.Mutex
	path      string
	sanitizer *sanitize.Sanitizer
	data      Portfolio
}

// Open loads the portfolio document from dir (creating dir if needed) and
// returns a store that sanitizes rich-text fields with s on every write.
func Open(dir string, s *sanitize.Sanitizer) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	st := &Store{
		path:      filepath.Join(dir, fileName),
		sanitizer: s,
	}

	raw, err := os.ReadFile(st.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return st, nil
	case err != nil:
		return nil, fmt.Errorf("read portfolio: %w", err)
	}

	if err := json.Unmarshal(raw, &st.data); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	return st, nil
}

// Portfolio returns a snapshot of the whole document.
func (s *Store) Portfolio() Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.data)
}

// UpdateProfile replaces the profile. Photo and resume paths are managed by
// the upload handlers and preserved across profile updates.
func (s *Store) UpdateProfile(p Profile) (Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.PhotoPath = s.data.Profile.PhotoPath
	p.ResumePath = s.data.Profile.ResumePath
	s.data.Profile = p
	return p, s.save()
}

// SetPhotoPath records the stored photo file, keeping the rest of the profile.
func (s *Store) SetPhotoPath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Profile.PhotoPath = path
	return s.save()
}

// SetResumePath records the stored resume file, keeping the rest of the profile.
func (s *Store) SetResumePath(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Profile.ResumePath = path
	return s.save()
}

// AddExperience sanitizes the description, assigns an ID, and appends.
func (s *Store) AddExperience(e Experience) (Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	e.Description = s.sanitizer.Sanitize(e.Description)
	s.data.Experience = append(s.data.Experience, e)
	return e, s.save()
}

// UpdateExperience replaces an entry by ID.
func (s *Store) UpdateExperience(e Experience) (Experience, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Description = s.sanitizer.Sanitize(e.Description)
	items, ok := replace(s.data.Experience, e)
	if !ok {
		return Experience{}, ErrNotFound
	}
	s.data.Experience = items
	return e, s.save()
}

// DeleteExperience removes an entry by ID.
func (s *Store) DeleteExperience(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Experience, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Experience = items
	return s.save()
}

// AddProject sanitizes the description, assigns an ID, and appends.
func (s *Store) AddProject(p Project) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.Description = s.sanitizer.Sanitize(p.Description)
	s.data.Projects = append(s.data.Projects, p)
	return p, s.save()
}

// UpdateProject replaces an entry by ID.
func (s *Store) UpdateProject(p Project) (Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.Description = s.sanitizer.Sanitize(p.Description)
	items, ok := replace(s.data.Projects, p)
	if !ok {
		return Project{}, ErrNotFound
	}
	s.data.Projects = items
	return p, s.save()
}

// DeleteProject removes an entry by ID.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Projects, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Projects = items
	return s.save()
}

// AddSkill assigns an ID and appends. Skills carry no rich text.
func (s *Store) AddSkill(sk Skill) (Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sk.ID = uuid.NewString()
	s.data.Skills = append(s.data.Skills, sk)
	return sk, s.save()
}

// UpdateSkill replaces an entry by ID.
func (s *Store) UpdateSkill(sk Skill) (Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := replace(s.data.Skills, sk)
	if !ok {
		return Skill{}, ErrNotFound
	}
	s.data.Skills = items
	return sk, s.save()
}

// DeleteSkill removes an entry by ID.
func (s *Store) DeleteSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Skills, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Skills = items
	return s.save()
}

// AddEducation sanitizes the description, assigns an ID, and appends.
func (s *Store) AddEducation(e Education) (Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	e.Description = s.sanitizer.Sanitize(e.Description)
	s.data.Education = append(s.data.Education, e)
	return e, s.save()
}

// UpdateEducation replaces an entry by ID.
func (s *Store) UpdateEducation(e Education) (Education, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Description = s.sanitizer.Sanitize(e.Description)
	items, ok := replace(s.data.Education, e)
	if !ok {
		return Education{}, ErrNotFound
	}
	s.data.Education = items
	return e, s.save()
}

// DeleteEducation removes an entry by ID.
func (s *Store) DeleteEducation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Education, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Education = items
	return s.save()
}

// AddAward sanitizes the description, assigns an ID, and appends.
func (s *Store) AddAward(a Award) (Award, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	a.Description = s.sanitizer.Sanitize(a.Description)
	s.data.Awards = append(s.data.Awards, a)
	return a, s.save()
}

// UpdateAward replaces an entry by ID.
func (s *Store) UpdateAward(a Award) (Award, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.Description = s.sanitizer.Sanitize(a.Description)
	items, ok := replace(s.data.Awards, a)
	if !ok {
		return Award{}, ErrNotFound
	}
	s.data.Awards = items
	return a, s.save()
}

// DeleteAward removes an entry by ID.
func (s *Store) DeleteAward(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Awards, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Awards = items
	return s.save()
}

// AddCertification sanitizes the description, assigns an ID, and appends.
func (s *Store) AddCertification(c Certification) (Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	c.Description = s.sanitizer.Sanitize(c.Description)
	s.data.Certifications = append(s.data.Certifications, c)
	return c, s.save()
}

// UpdateCertification replaces an entry by ID.
func (s *Store) UpdateCertification(c Certification) (Certification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.Description = s.sanitizer.Sanitize(c.Description)
	items, ok := replace(s.data.Certifications, c)
	if !ok {
		return Certification{}, ErrNotFound
	}
	s.data.Certifications = items
	return c, s.save()
}

// DeleteCertification removes an entry by ID.
func (s *Store) DeleteCertification(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := remove(s.data.Certifications, id)
	if !ok {
		return ErrNotFound
	}
	s.data.Certifications = items
	return s.save()
}

// save writes the document atomically (temp file + rename). Must be called
// with mu held.
func (s *Store) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode portfolio: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write portfolio: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace portfolio: %w", err)
	}
	return nil
}

type entity interface {
	entityID() string
}

// replace swaps the element whose ID matches updated's ID.
func replace[T entity](items []T, updated T) ([]T, bool) {
	for i, item := range items {
		if item.entityID() == updated.entityID() {
			items[i] = updated
			return items, true
		}
	}
	return items, false
}

// remove deletes the element with the given ID, preserving order.
func remove[T entity](items []T, id string) ([]T, bool) {
	for i, item := range items {
		if item.entityID() == id {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// clone deep-copies the slices so snapshots do not alias store state.
func clone(p Portfolio) Portfolio {
	out := p
	out.Profile.Links = append([]Link(nil), p.Profile.Links...)
	out.Experience = append([]Experience(nil), p.Experience...)
	out.Projects = append([]Project(nil), p.Projects...)
	out.Skills = append([]Skill(nil), p.Skills...)
	out.Education = append([]Education(nil), p.Education...)
	out.Awards = append([]Award(nil), p.Awards...)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	return out
}

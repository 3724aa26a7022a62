package drafts

import (
	"errors"
	"sync"
	"time"

	"shattak/models"

	"github.com/google/uuid"
)

var ErrDraftNotFound = errors.New("draft not found")

// Store holds the in-progress drafts, one per open create/edit screen. All
// mutations run under the lock against the latest stored snapshot, so rapid
// successive edits cannot overwrite each other; callers only ever receive
// copies.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	snap    Snapshot
	touched time.Time
}

// Sessions is the global draft store.
var Sessions = NewStore()

func NewStore() *Store {
	return &Store{sessions: map[string]*session{}}
}

// Open starts a draft session: blank for the create flow, seeded from an
// existing record for the edit flow.
func (st *Store) Open(seed *models.Course) (string, Snapshot) {
	snap := NewSnapshot()
	if seed != nil {
		snap = SeedFromCourse(seed)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	id := uuid.NewString()
	st.sessions[id] = &session{snap: snap, touched: time.Now()}
	return id, snap.Clone()
}

func (st *Store) Get(id string) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Snapshot{}, ErrDraftNotFound
	}
	return sess.snap.Clone(), nil
}

// mutate applies fn to the latest snapshot under the lock. A failed mutation
// leaves the draft untouched.
func (st *Store) mutate(id string, fn func(*Snapshot) error) (Snapshot, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return Snapshot{}, ErrDraftNotFound
	}

	next := sess.snap.Clone()
	if err := fn(&next); err != nil {
		return sess.snap.Clone(), err
	}

	sess.snap = next
	sess.touched = time.Now()
	return next.Clone(), nil
}

// SetField sets one scalar field, with numeric coercion for the numeric
// field names.
func (st *Store) SetField(id, name string, value interface{}) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		return s.setField(name, value)
	})
}

// Reset returns the draft to the initial empty state.
func (st *Store) Reset(id string) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		*s = NewSnapshot()
		return nil
	})
}

func (st *Store) Discard(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Reap drops sessions idle for longer than maxIdle and reports how many.
func (st *Store) Reap(maxIdle time.Duration) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	reaped := 0
	for id, sess := range st.sessions {
		if sess.touched.Before(cutoff) {
			delete(st.sessions, id)
			reaped++
		}
	}
	return reaped
}

func indexError(index, length int) error {
	if index < 0 || index >= length {
		return errors.New("row index out of range")
	}
	return nil
}

// ---- tools ----

type ToolPatch struct {
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

func (st *Store) AppendTool(id string) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		s.Tools = append(s.Tools, models.Tool{})
		return nil
	})
}

func (st *Store) UpdateTool(id string, index int, patch ToolPatch) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Tools)); err != nil {
			return err
		}
		if patch.Name != nil {
			s.Tools[index].Name = *patch.Name
		}
		if patch.Image != nil {
			s.Tools[index].Image = *patch.Image
		}
		return nil
	})
}

func (st *Store) RemoveTool(id string, index int) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Tools)); err != nil {
			return err
		}
		s.Tools = append(s.Tools[:index], s.Tools[index+1:]...)
		return nil
	})
}

// ---- schedule ----

type SessionPatch struct {
	Label           *string `json:"label"`
	Start           *int64  `json:"start"`
	DurationMinutes *int    `json:"durationMinutes"`
	Time            *string `json:"time"`
	Duration        *string `json:"duration"`
}

func (st *Store) AppendSession(id string) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		// new rows default to one hour, like the add form
		s.Schedule = append(s.Schedule, SessionDraft{DurationMinutes: 60})
		s.recalcDuration()
		return nil
	})
}

func (st *Store) UpdateSession(id string, index int, patch SessionPatch) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Schedule)); err != nil {
			return err
		}
		row := &s.Schedule[index]
		if patch.Label != nil {
			row.Label = *patch.Label
		}
		if patch.Start != nil {
			row.Start = *patch.Start
		}
		if patch.DurationMinutes != nil {
			row.DurationMinutes = *patch.DurationMinutes
		}
		if patch.Time != nil {
			row.Time = *patch.Time
		}
		if patch.Duration != nil {
			row.Duration = *patch.Duration
		}
		s.recalcDuration()
		return nil
	})
}

func (st *Store) RemoveSession(id string, index int) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Schedule)); err != nil {
			return err
		}
		s.Schedule = append(s.Schedule[:index], s.Schedule[index+1:]...)
		s.recalcDuration()
		return nil
	})
}

// ---- instructors ----

type InstructorPatch struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Photo       *string `json:"photo"`
	Bio         *string `json:"bio"`
	LinkedInURL *string `json:"linkedInUrl"`
}

func (st *Store) AppendInstructor(id string) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		s.Instructors = append(s.Instructors, models.Instructor{})
		return nil
	})
}

func (st *Store) UpdateInstructor(id string, index int, patch InstructorPatch) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Instructors)); err != nil {
			return err
		}
		row := &s.Instructors[index]
		if patch.Name != nil {
			row.Name = *patch.Name
		}
		if patch.Role != nil {
			row.Role = *patch.Role
		}
		if patch.Photo != nil {
			row.Photo = *patch.Photo
		}
		if patch.Bio != nil {
			row.Bio = *patch.Bio
		}
		if patch.LinkedInURL != nil {
			row.LinkedInURL = *patch.LinkedInURL
		}
		return nil
	})
}

func (st *Store) RemoveInstructor(id string, index int) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Instructors)); err != nil {
			return err
		}
		s.Instructors = append(s.Instructors[:index], s.Instructors[index+1:]...)
		return nil
	})
}

// ---- gallery ----

type GalleryPatch struct {
	Image *string `json:"image"`
	Alt   *string `json:"alt"`
}

func (st *Store) AppendGalleryImage(id string) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		s.Gallery = append(s.Gallery, models.GalleryImage{})
		return nil
	})
}

func (st *Store) UpdateGalleryImage(id string, index int, patch GalleryPatch) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Gallery)); err != nil {
			return err
		}
		if patch.Image != nil {
			s.Gallery[index].Image = *patch.Image
		}
		if patch.Alt != nil {
			s.Gallery[index].Alt = *patch.Alt
		}
		return nil
	})
}

func (st *Store) RemoveGalleryImage(id string, index int) (Snapshot, error) {
	return st.mutate(id, func(s *Snapshot) error {
		if err := indexError(index, len(s.Gallery)); err != nil {
			return err
		}
		s.Gallery = append(s.Gallery[:index], s.Gallery[index+1:]...)
		return nil
	})
}

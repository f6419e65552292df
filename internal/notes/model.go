// Package notes manages the list of notes persisted under one application key.
package notes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gerunddev/notemark/internal/logger"
	"github.com/gerunddev/notemark/internal/store"
	"github.com/google/uuid"
)

// DefaultKey is the application key notes are stored under
const DefaultKey = "Notes-MVC"

var (
	// ErrNotFound is returned for operations on an unknown note id.
	ErrNotFound = errors.New("note not found")
	// ErrEmptyNote is returned when adding a note with no text.
	ErrEmptyNote = errors.New("note text cannot be empty")
)

// Model holds the notes list and writes it back on every change.
// It is safe for concurrent use.
type Model struct {
	mu       sync.Mutex
	store    store.Store
	key      string
	notes    []Note
	onChange func([]Note)
	log      *logger.Logger
	now      func() time.Time
}

// Load reads the notes stored under key. A missing key yields an empty list.
func Load(ctx context.Context, st store.Store, key string) (*Model, error) {
	if key == "" {
		key = DefaultKey
	}

	m := &Model{
		store: st,
		key:   key,
		notes: []Note{},
		log:   logger.Discard(),
		now:   time.Now,
	}

	data, err := st.Get(ctx, key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to read notes: %w", err)
	}

	if err := json.Unmarshal(data, &m.notes); err != nil {
		return nil, fmt.Errorf("failed to parse notes: %w", err)
	}
	if m.notes == nil {
		m.notes = []Note{}
	}

	// Lists written before notes carried a UID get one on load.
	for i := range m.notes {
		if m.notes[i].UID == "" {
			m.notes[i].UID = uuid.NewString()
		}
	}

	return m, nil
}

// SetLogger sets the logger used for note events
func (m *Model) SetLogger(l *logger.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = l
	m.log.NotesLoaded(m.key, len(m.notes))
}

// OnListChanged registers fn to receive the list after every successful change.
func (m *Model) OnListChanged(fn func([]Note)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Key returns the application key the notes are stored under
func (m *Model) Key() string {
	return m.key
}

// Notes returns a copy of the current list
func (m *Model) Notes() []Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// FindByID returns the note with the given id
func (m *Model) FindByID(id int) (Note, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(id); i >= 0 {
		return m.notes[i], true
	}
	return Note{}, false
}

// Add appends a note. Its id is one past the last note's id, or 1.
func (m *Model) Add(ctx context.Context, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, ErrEmptyNote
	}

	m.mu.Lock()
	id := 1
	if len(m.notes) > 0 {
		id = m.notes[len(m.notes)-1].ID + 1
	}
	now := m.now()
	note := Note{
		ID:        id,
		UID:       uuid.NewString(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	next := append(m.snapshot(), note)
	if err := m.commit(ctx, next); err != nil {
		m.mu.Unlock()
		return Note{}, err
	}
	m.log.NoteAdded(note.ID, note.UID)
	m.mu.Unlock()

	m.notify()
	return note, nil
}

// Edit replaces a note's text. Empty text leaves the note unchanged.
func (m *Model) Edit(ctx context.Context, id int, text string) (Note, error) {
	text = strings.TrimSpace(text)

	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return Note{}, ErrNotFound
	}

	next := m.snapshot()
	unchanged := text == ""
	if !unchanged {
		next[i].Text = text
		next[i].UpdatedAt = m.now()
	}
	if err := m.commit(ctx, next); err != nil {
		m.mu.Unlock()
		return Note{}, err
	}
	note := next[i]
	m.log.NoteEdited(id, unchanged)
	m.mu.Unlock()

	m.notify()
	return note, nil
}

// Delete removes a note
func (m *Model) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return ErrNotFound
	}

	next := make([]Note, 0, len(m.notes)-1)
	next = append(next, m.notes[:i]...)
	next = append(next, m.notes[i+1:]...)
	if err := m.commit(ctx, next); err != nil {
		m.mu.Unlock()
		return err
	}
	m.log.NoteDeleted(id)
	m.mu.Unlock()

	m.notify()
	return nil
}

// Search returns notes whose plain text contains query, ignoring case.
// Markers and escapes are not matched.
func (m *Model) Search(query string) []Note {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []Note
	for _, n := range m.Notes() {
		if strings.Contains(strings.ToLower(n.Parse().Text()), query) {
			matches = append(matches, n)
		}
	}
	return matches
}

// commit persists next and installs it as the current list. Callers hold m.mu.
func (m *Model) commit(ctx context.Context, next []Note) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}
	if err := m.store.Set(ctx, m.key, data); err != nil {
		m.log.StoreError("save notes", err)
		return fmt.Errorf("failed to save notes: %w", err)
	}
	m.notes = next
	return nil
}

func (m *Model) notify() {
	m.mu.Lock()
	fn := m.onChange
	list := m.snapshot()
	m.mu.Unlock()

	if fn != nil {
		fn(list)
	}
}

func (m *Model) snapshot() []Note {
	out := make([]Note, len(m.notes))
	copy(out, m.notes)
	return out
}

func (m *Model) indexOf(id int) int {
	for i, n := range m.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

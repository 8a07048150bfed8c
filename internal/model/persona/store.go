package persona

import "strings"

// Store exposes specialist retrieval for HTTP handlers and prompt assembly.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
	FindByMode(mode string) (Persona, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Persona
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
func NewMemoryStore(items []Persona) *MemoryStore {
	return &MemoryStore{items: append([]Persona(nil), items...)}
}

// List returns the predefined persona list.
func (s *MemoryStore) List() []Persona {
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Persona{}, false
}

// FindByMode looks up a persona by its mode tag, case-insensitively.
func (s *MemoryStore) FindByMode(mode string) (Persona, bool) {
	mode = strings.ToUpper(strings.TrimSpace(mode))
	for _, item := range s.items {
		if item.Mode == mode {
			return item, true
		}
	}
	return Persona{}, false
}

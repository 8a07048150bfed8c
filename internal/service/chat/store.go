package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kitround/director/internal/model/chat"
)

var (
	ErrNoActiveSession = errors.New("no active session")
	ErrSessionNotFound = errors.New("session not found")
	ErrBusy            = errors.New("a send is already in flight")
)

// FormatPreamble is prepended to every outgoing prompt so replies come back
// as renderable Markdown.
const FormatPreamble = "Please format in **Markdown** using ### section headings, bullet lists, and tables where useful. No code fences. British English."

const (
	historyWindow = 8
	titleLimit    = 40
)

// Sender submits one prompt to the Director. mode is the canonical specialist
// tag, or empty to leave routing to the Director.
type Sender interface {
	Send(ctx context.Context, message, mode string) (string, error)
}

// Store keeps the ordered session list in memory, newest first, and mirrors
// every mutation to a JSON state file. The file is read once at startup;
// there is always at least one session.
type Store struct {
	mu       sync.Mutex
	path     string
	sessions []chat.Session
	active   string
	sending  bool
}

// NewStore loads the state file at path, synthesizing a fresh session when
// none exist yet.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// First run.
	case err != nil:
		return nil, fmt.Errorf("failed to read session state: %w", err)
	default:
		if err := json.Unmarshal(raw, &s.sessions); err != nil {
			return nil, fmt.Errorf("failed to parse session state: %w", err)
		}
	}

	if len(s.sessions) == 0 {
		s.sessions = []chat.Session{newSession()}
		s.persistLocked()
	}
	s.active = s.sessions[0].ID

	return s, nil
}

// Sessions returns a copy of the session list, newest first.
func (s *Store) Sessions() []chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]chat.Session(nil), s.sessions...)
}

// Active returns the currently selected session.
func (s *Store) Active() (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(s.active)
	if idx < 0 {
		return chat.Session{}, ErrNoActiveSession
	}
	return s.sessions[idx], nil
}

// SetActive selects the session with the given id.
func (s *Store) SetActive(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(id) < 0 {
		return ErrSessionNotFound
	}
	s.active = id
	return nil
}

// NewChat prepends a fresh empty session and makes it active.
func (s *Store) NewChat() chat.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := newSession()
	s.sessions = append([]chat.Session{session}, s.sessions...)
	s.active = session.ID
	s.persistLocked()
	return session
}

// Rename updates a session title in place. Unknown ids are a no-op.
func (s *Store) Rename(id, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	s.sessions[idx].Title = title
	s.sessions[idx].UpdatedAt = time.Now().UTC()
	s.persistLocked()
}

// Delete removes a session. When the active session goes, the next-closest
// remaining one by original index is selected; deleting the last session
// synthesizes a replacement so the list is never empty.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)

	if len(s.sessions) == 0 {
		session := newSession()
		s.sessions = []chat.Session{session}
		s.active = session.ID
		s.persistLocked()
		return
	}

	if s.indexLocked(s.active) < 0 {
		if idx >= len(s.sessions) {
			idx = len(s.sessions) - 1
		}
		s.active = s.sessions[idx].ID
	}
	s.persistLocked()
}

// Send appends text as a user turn on the active session, submits it through
// sender with the prior conversation window, and appends the reply as an
// assistant turn. Blank input is a no-op. The optimistic user turn stays in
// place when the send fails. One send at a time; overlapping calls get
// ErrBusy.
func (s *Store) Send(ctx context.Context, sender Sender, text, mode string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", nil
	}

	s.mu.Lock()
	if s.sending {
		s.mu.Unlock()
		return "", ErrBusy
	}
	idx := s.indexLocked(s.active)
	if idx < 0 {
		s.mu.Unlock()
		return "", ErrNoActiveSession
	}

	s.sending = true
	id := s.active
	prompt := buildPrompt(s.sessions[idx].Turns, trimmed)

	now := time.Now().UTC()
	s.sessions[idx].Turns = append(s.sessions[idx].Turns, chat.Turn{
		Role:      chat.RoleUser,
		Content:   trimmed,
		CreatedAt: now,
	})
	s.sessions[idx].UpdatedAt = now
	s.persistLocked()
	s.mu.Unlock()

	reply, err := sender.Send(ctx, prompt, mode)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sending = false

	if err != nil {
		return "", err
	}

	idx = s.indexLocked(id)
	if idx < 0 {
		// Session was deleted mid-flight; drop the reply.
		return reply, nil
	}

	now = time.Now().UTC()
	s.sessions[idx].Turns = append(s.sessions[idx].Turns, chat.Turn{
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: now,
	})
	if s.sessions[idx].Title == chat.DefaultTitle {
		s.sessions[idx].Title = truncateTitle(trimmed)
	}
	s.sessions[idx].UpdatedAt = now
	s.persistLocked()

	return reply, nil
}

// buildPrompt renders the formatting preamble, the last turns of the
// conversation and the new user line into one prompt.
func buildPrompt(turns []chat.Turn, message string) string {
	start := 0
	if len(turns) > historyWindow {
		start = len(turns) - historyWindow
	}

	lines := make([]string, 0, len(turns)-start)
	for _, turn := range turns[start:] {
		role := "User"
		if turn.Role == chat.RoleAssistant {
			role = "Assistant"
		}
		lines = append(lines, role+": "+turn.Content)
	}

	return fmt.Sprintf("%s\n\nConversation so far:\n%s\n\nUser: %s",
		FormatPreamble, strings.Join(lines, "\n\n"), message)
}

func truncateTitle(message string) string {
	runes := []rune(message)
	if len(runes) > titleLimit {
		return string(runes[:titleLimit])
	}
	return message
}

func newSession() chat.Session {
	now := time.Now().UTC()
	return chat.Session{
		ID:        uuid.NewString(),
		Title:     chat.DefaultTitle,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *Store) indexLocked(id string) int {
	for i, session := range s.sessions {
		if session.ID == id {
			return i
		}
	}
	return -1
}

// persistLocked mirrors the session list to the state file. Persistence is
// best effort; a failed write keeps the in-memory state authoritative.
func (s *Store) persistLocked() {
	data, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		log.Printf("[chat] failed to marshal session state: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Printf("[chat] failed to create state dir: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Printf("[chat] failed to write session state: %v", err)
	}
}

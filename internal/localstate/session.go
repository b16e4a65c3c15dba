// Package localstate owns the user-local persisted state: the conflict
// watchlist, the seen-notification history, and the theme. The state lives
// on the user's device (a JSON file), is read once at session start, and is
// written back on every change. A missing or corrupt store is treated as
// empty, never as a fatal condition.
package localstate

import (
	"log/slog"
	"sort"
)

// Theme is the user's display preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Store is the persistence port for session state. Load returns an empty
// document when nothing usable is stored; Save failures are reported but
// non-fatal.
type Store interface {
	Load() (Document, error)
	Save(Document) error
}

// Document is the on-disk shape of the session state.
type Document struct {
	Watchlist    []string `json:"watchlist"`
	SeenArticles []string `json:"seen-articles"`
	Theme        Theme    `json:"theme"`
}

// Session is the in-memory session state, hydrated from a Store at startup.
// All access happens from a single goroutine per session.
type Session struct {
	store   Store
	watched map[string]bool
	seen    *SeenSet
	theme   Theme
	logger  *slog.Logger
}

// NewSession loads session state from store. Load failures degrade to an
// empty session.
func NewSession(store Store, logger *slog.Logger) *Session {
	logger = logger.With(slog.String("component", "localstate"))

	doc, err := store.Load()
	if err != nil {
		logger.Warn("loading session state failed, starting empty",
			slog.String("error", err.Error()),
		)
		doc = Document{}
	}

	watched := make(map[string]bool, len(doc.Watchlist))
	for _, id := range doc.Watchlist {
		watched[id] = true
	}

	theme := doc.Theme
	if theme != ThemeLight {
		theme = ThemeDark
	}

	return &Session{
		store:   store,
		watched: watched,
		seen:    NewSeenSet(doc.SeenArticles),
		theme:   theme,
		logger:  logger,
	}
}

// IsWatched reports whether the conflict id is on the watchlist.
func (s *Session) IsWatched(id string) bool {
	return s.watched[id]
}

// WatchedCount returns the number of watched conflicts.
func (s *Session) WatchedCount() int {
	return len(s.watched)
}

// ToggleWatch adds or removes a conflict id from the watchlist and persists
// the change.
func (s *Session) ToggleWatch(id string) {
	if s.watched[id] {
		delete(s.watched, id)
	} else {
		s.watched[id] = true
	}
	s.persist()
}

// Seen returns the notification de-duplication set. Callers that mutate it
// must follow up with PersistSeen.
func (s *Session) Seen() *SeenSet {
	return s.seen
}

// PersistSeen writes the seen-set back to the store.
func (s *Session) PersistSeen() {
	s.persist()
}

// Theme returns the current theme.
func (s *Session) Theme() Theme {
	return s.theme
}

// SetTheme updates and persists the theme.
func (s *Session) SetTheme(t Theme) {
	if t != ThemeLight {
		t = ThemeDark
	}
	s.theme = t
	s.persist()
}

func (s *Session) persist() {
	watchlist := make([]string, 0, len(s.watched))
	for id := range s.watched {
		watchlist = append(watchlist, id)
	}
	sort.Strings(watchlist)

	doc := Document{
		Watchlist:    watchlist,
		SeenArticles: s.seen.Keys(),
		Theme:        s.theme,
	}
	if err := s.store.Save(doc); err != nil {
		s.logger.Warn("saving session state failed",
			slog.String("error", err.Error()),
		)
	}
}

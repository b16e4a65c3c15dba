package localstate

// MaxSeenArticles caps the seen-set; the oldest keys are evicted first.
const MaxSeenArticles = 500

// SeenSet is a bounded FIFO set of article keys already surfaced to the user
// as a notification. It is used from a single goroutine per session.
type SeenSet struct {
	keys    []string
	present map[string]bool
}

// NewSeenSet builds a SeenSet from previously persisted keys, oldest first.
// If more than the cap were persisted, only the most recent survive.
func NewSeenSet(keys []string) *SeenSet {
	if len(keys) > MaxSeenArticles {
		keys = keys[len(keys)-MaxSeenArticles:]
	}
	s := &SeenSet{
		keys:    append([]string(nil), keys...),
		present: make(map[string]bool, len(keys)),
	}
	for _, k := range keys {
		s.present[k] = true
	}
	return s
}

// Contains reports whether key has already been surfaced.
func (s *SeenSet) Contains(key string) bool {
	return s.present[key]
}

// Add records key, evicting the oldest entry when the cap is reached.
// Adding an existing key is a no-op.
func (s *SeenSet) Add(key string) {
	if s.present[key] {
		return
	}
	if len(s.keys) == MaxSeenArticles {
		oldest := s.keys[0]
		s.keys = s.keys[1:]
		delete(s.present, oldest)
	}
	s.keys = append(s.keys, key)
	s.present[key] = true
}

// Len returns the number of recorded keys.
func (s *SeenSet) Len() int {
	return len(s.keys)
}

// Keys returns the recorded keys, oldest first, for persistence.
func (s *SeenSet) Keys() []string {
	return append([]string(nil), s.keys...)
}

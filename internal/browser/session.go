package browser

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mveld/burrow/internal/fuzzy"
	"github.com/mveld/burrow/internal/preview"
)

// Match pairs a snapshot index with its fuzzy score. Positions are the
// matched character indices within the entry name, for highlighting.
type Match struct {
	Index     int
	Score     int
	Positions []int
}

// Session is the whole browsing state for one run: the current directory
// snapshot, the query, the ranked view over the snapshot, the selection
// cursor and the preview pane. It is owned and mutated by a single loop;
// nothing here is safe for concurrent use.
type Session struct {
	dir     string
	entries []Entry
	query   string
	ranked  []Match
	cursor  int // index into ranked, -1 when ranked is empty

	Preview preview.State
}

// NewSession opens a session rooted at dir with an optional initial query.
// Failing to read the starting directory is the one fatal filesystem error
// in the program, so it propagates.
func NewSession(dir, query string) (*Session, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve %s: %w", dir, err)
	}

	entries, err := ReadSnapshot(abs)
	if err != nil {
		return nil, err
	}

	s := &Session{
		dir:     abs,
		entries: entries,
		query:   query,
		cursor:  -1,
	}
	s.refilter()
	return s, nil
}

// Dir returns the directory the current snapshot was read from
func (s *Session) Dir() string {
	return s.dir
}

// Query returns the current filter string
func (s *Session) Query() string {
	return s.query
}

// SnapshotSize returns the number of entries in the current snapshot
func (s *Session) SnapshotSize() int {
	return len(s.entries)
}

// Results returns the ranked matches, best first. Read-only for renderers.
func (s *Session) Results() []Match {
	return s.ranked
}

// Cursor returns the selection index into Results, or -1 when empty
func (s *Session) Cursor() int {
	return s.cursor
}

// EntryAt resolves a Results index to its snapshot entry
func (s *Session) EntryAt(rankedIdx int) Entry {
	return s.entries[s.ranked[rankedIdx].Index]
}

// Selection returns the highlighted entry, if there is one
func (s *Session) Selection() (Entry, bool) {
	if s.cursor < 0 || s.cursor >= len(s.ranked) {
		return Entry{}, false
	}
	return s.EntryAt(s.cursor), true
}

// SetDirectory replaces the snapshot with a fresh read of dir and clears
// the query. On failure every piece of session state stays exactly as it
// was, so a broken read is never partially applied.
func (s *Session) SetDirectory(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("cannot resolve %s: %w", dir, err)
	}

	entries, err := ReadSnapshot(abs)
	if err != nil {
		return err
	}

	s.dir = abs
	s.entries = entries
	s.query = ""
	s.refilter()
	return nil
}

// SetQuery replaces the filter string wholesale. Used to sync the query
// from an external editing widget; the incremental ops below share the
// same recompute path so the observable result is identical.
func (s *Session) SetQuery(query string) {
	if query == s.query {
		return
	}
	s.query = query
	s.refilter()
}

// AppendToQuery adds one character to the filter
func (s *Session) AppendToQuery(r rune) {
	s.query += string(r)
	s.refilter()
}

// PopFromQuery removes the last character of the filter
func (s *Session) PopFromQuery() {
	if s.query == "" {
		return
	}
	runes := []rune(s.query)
	s.query = string(runes[:len(runes)-1])
	s.refilter()
}

// ClearQuery drops the filter, restoring the unfiltered listing
func (s *Session) ClearQuery() {
	if s.query == "" {
		return
	}
	s.query = ""
	s.refilter()
}

// MoveNext advances the cursor, wrapping past the end
func (s *Session) MoveNext() {
	if len(s.ranked) == 0 {
		return
	}
	s.cursor++
	if s.cursor >= len(s.ranked) {
		s.cursor = 0
	}
	s.reloadPreview()
}

// MovePrev retreats the cursor, wrapping before the start
func (s *Session) MovePrev() {
	if len(s.ranked) == 0 {
		return
	}
	s.cursor--
	if s.cursor < 0 {
		s.cursor = len(s.ranked) - 1
	}
	s.reloadPreview()
}

// MoveFirst jumps to the top of the ranked list
func (s *Session) MoveFirst() {
	if len(s.ranked) == 0 {
		return
	}
	s.cursor = 0
	s.reloadPreview()
}

// MoveLast jumps to the bottom of the ranked list
func (s *Session) MoveLast() {
	if len(s.ranked) == 0 {
		return
	}
	s.cursor = len(s.ranked) - 1
	s.reloadPreview()
}

// Activate resolves the highlighted entry. Directories (including the
// parent marker) are navigated into and the session continues; a file
// ends the session and is returned as the final selection. With nothing
// highlighted Activate is a no-op.
func (s *Session) Activate() (selected string, done bool, err error) {
	entry, ok := s.Selection()
	if !ok {
		return "", false, nil
	}

	if entry.IsParent() {
		return "", false, s.SetDirectory(filepath.Dir(s.dir))
	}
	if entry.IsDir {
		return "", false, s.SetDirectory(entry.Path)
	}
	return entry.Path, true, nil
}

// refilter rebuilds the ranked list from the snapshot and query, resets
// the cursor and reloads the preview. Called after every snapshot or
// query mutation; cost is bounded by a single directory's entry count.
func (s *Session) refilter() {
	s.ranked = s.ranked[:0]

	for i, entry := range s.entries {
		if m, ok := fuzzy.Find(s.query, entry.Name); ok {
			s.ranked = append(s.ranked, Match{Index: i, Score: m.Score, Positions: m.Positions})
		}
	}

	// Stable keeps snapshot order on ties: parent first, directories
	// before files, then alphabetical.
	sort.SliceStable(s.ranked, func(i, j int) bool {
		return s.ranked[i].Score > s.ranked[j].Score
	})

	if len(s.ranked) == 0 {
		s.cursor = -1
	} else {
		s.cursor = 0
	}
	s.reloadPreview()
}

// reloadPreview syncs the preview pane with the highlighted entry
func (s *Session) reloadPreview() {
	entry, ok := s.Selection()
	if !ok || entry.IsDir {
		s.Preview.Clear()
		return
	}
	s.Preview.Set(preview.Load(entry.Path))
}

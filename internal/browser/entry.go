package browser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ParentName is the display name of the synthetic parent entry
const ParentName = ".."

// Entry is one row in a directory snapshot. Name is the filename made
// valid UTF-8 so that matching and display never choke on odd encodings.
type Entry struct {
	Path  string
	Name  string
	IsDir bool
}

// IsParent reports whether this is the synthetic ".." entry
func (e Entry) IsParent() bool {
	return e.Name == ParentName
}

// ReadSnapshot lists the immediate children of dir, sorted directories
// first and then alphabetically by raw filename. When dir has a parent a
// synthetic ".." entry is placed at the very front, exempt from sorting.
// Any read error propagates untouched; callers keep their previous
// snapshot on failure.
func ReadSnapshot(dir string) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dir, err)
	}

	children := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		children = append(children, Entry{
			Path:  filepath.Join(dir, d.Name()),
			Name:  strings.ToValidUTF8(d.Name(), "�"),
			IsDir: entryIsDir(dir, d),
		})
	}

	sort.SliceStable(children, func(i, j int) bool {
		a, b := children[i], children[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}
		return a.Name < b.Name
	})

	if parent := filepath.Dir(dir); parent != dir {
		// Built by string concatenation: filepath.Join would collapse
		// the ".." away.
		parentEntry := Entry{
			Path:  dir + string(filepath.Separator) + ParentName,
			Name:  ParentName,
			IsDir: true,
		}
		return append([]Entry{parentEntry}, children...), nil
	}

	return children, nil
}

// entryIsDir resolves symlinks so a link to a directory navigates like one
func entryIsDir(dir string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, d.Name()))
	return err == nil && info.IsDir()
}

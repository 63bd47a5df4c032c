package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadTextFile(t *testing.T) {
	path := write(t, "hello.txt", []byte("hello\nworld\n"))
	assert.Equal(t, "hello\nworld\n", Load(path))
}

func TestLoadBinaryExtension(t *testing.T) {
	for _, name := range []string{"photo.png", "archive.ZIP", "movie.mkv", "report.pdf"} {
		t.Run(name, func(t *testing.T) {
			path := write(t, name, []byte("irrelevant"))
			assert.Equal(t, "Binary file: "+name, Load(path))
		})
	}
}

func TestLoadNullByteFallback(t *testing.T) {
	// Extension not in the denylist, content clearly binary
	path := write(t, "mystery.dat2", []byte{'a', 'b', 0x00, 'c'})
	assert.Equal(t, "Binary file: mystery.dat2", Load(path))
}

func TestLoadUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	assert.Equal(t, "Could not read file", Load(path))
}

func TestLoadTruncatesLargeFile(t *testing.T) {
	content := strings.Repeat("x", MaxBytes+1234)
	path := write(t, "big.txt", []byte(content))

	got := Load(path)
	assert.True(t, strings.HasPrefix(got, content[:MaxBytes]))
	marker := fmt.Sprintf("[File truncated - %d bytes total]", len(content))
	assert.True(t, strings.HasSuffix(got, marker))
}

func TestLoadSmallFileNotTruncated(t *testing.T) {
	content := strings.Repeat("y", MaxBytes)
	path := write(t, "exact.txt", []byte(content))
	assert.Equal(t, content, Load(path))
}

func TestScroll(t *testing.T) {
	var s State
	s.Set("a\nb\nc\n")

	s.ScrollDown()
	assert.Equal(t, ScrollStep, s.Offset)
	s.ScrollDown()
	assert.Equal(t, 2*ScrollStep, s.Offset)

	s.ScrollUp()
	s.ScrollUp()
	s.ScrollUp()
	assert.Equal(t, 0, s.Offset, "scrolling up clamps at the top")
}

func TestScrollWithoutContentIsNoop(t *testing.T) {
	var s State
	s.ScrollDown()
	s.ScrollUp()
	assert.Equal(t, 0, s.Offset)
	assert.False(t, s.Loaded())
}

func TestSetResetsOffset(t *testing.T) {
	var s State
	s.Set("first")
	s.ScrollDown()
	s.Set("second")
	assert.Equal(t, 0, s.Offset)
	assert.Equal(t, []string{"second"}, s.Lines)
}

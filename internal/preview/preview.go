package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MaxBytes is the preview size cap. Anything larger is truncated so a
// cursor move over a huge file never stalls the UI.
const MaxBytes = 50000

// ScrollStep is the number of lines a single scroll command moves.
const ScrollStep = 5

// Extensions that are never worth reading as text. Content sniffing (the
// NUL byte check in Load) catches binaries this list misses.
var binaryExtensions = map[string]bool{
	"exe": true, "bin": true, "dll": true, "so": true, "dylib": true, "a": true, "o": true, "obj": true,
	"jpg": true, "jpeg": true, "png": true, "gif": true, "bmp": true, "ico": true, "tiff": true, "webp": true,
	"mp3": true, "mp4": true, "wav": true, "flac": true, "ogg": true, "avi": true, "mkv": true, "mov": true,
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true, "ppt": true, "pptx": true,
	"zip": true, "tar": true, "gz": true, "bz2": true, "7z": true, "rar": true,
}

// State is the preview pane contents for the currently highlighted file.
// A zero Offset means the top of the file. Offset has no upper clamp here;
// the renderer stops at the last available line.
type State struct {
	Content string
	Lines   []string
	Offset  int
}

// Loaded reports whether any preview content is present
func (s *State) Loaded() bool {
	return s.Content != ""
}

// ScrollDown moves the preview window down by ScrollStep lines
func (s *State) ScrollDown() {
	if s.Loaded() {
		s.Offset += ScrollStep
	}
}

// ScrollUp moves the preview window up by ScrollStep lines, stopping at the top
func (s *State) ScrollUp() {
	if !s.Loaded() {
		return
	}
	s.Offset -= ScrollStep
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// Clear drops the preview content and resets the scroll position
func (s *State) Clear() {
	s.Content = ""
	s.Lines = nil
	s.Offset = 0
}

// Set replaces the preview content and resets the scroll position
func (s *State) Set(content string) {
	s.Content = content
	s.Lines = strings.Split(content, "\n")
	s.Offset = 0
}

// Load reads a bounded text preview for the file at path. Unreadable and
// binary files degrade to a placeholder string; Load never fails.
func Load(path string) string {
	name := filepath.Base(path)

	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."); binaryExtensions[ext] {
		return fmt.Sprintf("Binary file: %s", name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "Could not read file"
	}

	if bytes.IndexByte(data, 0) >= 0 {
		return fmt.Sprintf("Binary file: %s", name)
	}

	if len(data) > MaxBytes {
		return fmt.Sprintf("%s...\n\n[File truncated - %d bytes total]", data[:MaxBytes], len(data))
	}

	return string(data)
}

package modes

import (
	"strings"
	"unicode"

	"github.com/lixenwraith/text-animator/parameter"
)

// entryPunctuation lists the accepted non-alphanumeric characters
const entryPunctuation = " !.,?-'"

// Accepts reports whether r may be typed into the text entry
func Accepts(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(entryPunctuation, r)
}

// TextEntry is a bounded line editor
type TextEntry struct {
	buf   []rune
	limit int
}

// NewTextEntry creates an empty entry holding at most limit runes
func NewTextEntry(limit int) *TextEntry {
	if limit <= 0 {
		limit = parameter.MaxTextLength
	}
	return &TextEntry{buf: make([]rune, 0, limit), limit: limit}
}

// Insert appends r, returns false when r is rejected or the entry is full
func (e *TextEntry) Insert(r rune) bool {
	if !Accepts(r) || len(e.buf) >= e.limit {
		return false
	}
	e.buf = append(e.buf, r)
	return true
}

// Backspace deletes the last rune, returns false on an empty entry
func (e *TextEntry) Backspace() bool {
	if len(e.buf) == 0 {
		return false
	}
	e.buf = e.buf[:len(e.buf)-1]
	return true
}

// Text returns the current contents
func (e *TextEntry) Text() string {
	return string(e.buf)
}

// Len returns the number of runes entered
func (e *TextEntry) Len() int {
	return len(e.buf)
}

// Reset clears the entry
func (e *TextEntry) Reset() {
	e.buf = e.buf[:0]
}

// Result returns the trimmed text, or the default when nothing but spaces was typed
func (e *TextEntry) Result() string {
	if s := strings.TrimSpace(e.Text()); s != "" {
		return s
	}
	return parameter.DefaultText
}

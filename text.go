package cascade

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Text is a read-only block of word-wrapped text. Wrapping respects the
// display width of wide runes, so CJK text and emoji fold correctly.
type Text struct {
	content string

	dirty     bool
	lastWidth int
	lastLines []string
}

// NewText creates a text node with the given initial content.
func NewText(content string) *Text {
	return &Text{content: content, dirty: true}
}

// SetText replaces the content. Call MarkDirty on the owning app (or
// mutate inside QueueUpdate) to get the change on screen.
func (t *Text) SetText(content string) {
	if t.content == content {
		return
	}
	t.content = content
	t.dirty = true
}

// Append adds content to the end of the existing text.
func (t *Text) Append(content string) {
	if content == "" {
		return
	}
	t.content += content
	t.dirty = true
}

// Content returns the current unwrapped text.
func (t *Text) Content() string {
	return t.content
}

func (t *Text) Render(width int) RenderResult {
	if !t.dirty && width == t.lastWidth {
		return RenderResult{Lines: t.lastLines, Changed: false}
	}
	t.lastWidth = width
	t.lastLines = wrapText(t.content, width)
	t.dirty = false
	return RenderResult{Lines: t.lastLines, Changed: true}
}

// wrapText word-wraps s to the given display width. Explicit newlines are
// honored; an empty string still occupies one blank row.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range strings.Fields(s) {
		w := runewidth.StringWidth(word)
		switch {
		case curWidth == 0:
			// First word on the row goes down even if it overflows;
			// splitting inside a word helps nobody.
			cur.WriteString(word)
			curWidth = w
		case curWidth+1+w <= width:
			cur.WriteString(" ")
			cur.WriteString(word)
			curWidth += 1 + w
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curWidth = w
		}
	}
	if curWidth > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

package cascade

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Editor is a single-line input field with a prompt and a visible cursor.
// The cursor moves over grapheme clusters, not bytes, so combining marks
// and emoji sequences behave as single characters.
//
// Input arrives as raw chunks. A chunk may end mid-rune; the trailing
// bytes are carried over and prepended to the next chunk.
type Editor struct {
	prompt   string
	clusters []string // grapheme clusters of the current line
	cursor   int      // index into clusters; len(clusters) means end of line
	pending  []byte   // incomplete trailing rune from the last chunk

	// OnSubmit is called with the completed line when Enter is pressed.
	// The line is cleared afterwards. Runs on the UI goroutine.
	OnSubmit func(line string)

	dirty     bool
	lastWidth int
	lastLines []string
}

// NewEditor creates an empty editor with the given prompt.
func NewEditor(prompt string) *Editor {
	return &Editor{prompt: prompt, dirty: true}
}

// Value returns the current line content.
func (e *Editor) Value() string {
	return strings.Join(e.clusters, "")
}

// SetValue replaces the line content and moves the cursor to the end.
func (e *Editor) SetValue(s string) {
	e.clusters = splitClusters(s)
	e.cursor = len(e.clusters)
	e.dirty = true
}

func (e *Editor) Render(width int) RenderResult {
	if !e.dirty && width == e.lastWidth {
		return RenderResult{Lines: e.lastLines, Changed: false}
	}
	e.lastWidth = width
	e.lastLines = []string{e.renderLine()}
	e.dirty = false
	return RenderResult{Lines: e.lastLines, Changed: true}
}

func (e *Editor) renderLine() string {
	var b strings.Builder
	b.WriteString(e.prompt)
	for i, cl := range e.clusters {
		if i == e.cursor {
			b.WriteString(escInverse)
			b.WriteString(cl)
			b.WriteString(escReset)
			continue
		}
		b.WriteString(cl)
	}
	if e.cursor >= len(e.clusters) {
		b.WriteString(escInverse)
		b.WriteString(" ")
		b.WriteString(escReset)
	}
	return b.String()
}

// HandleInput consumes one raw chunk. Recognized controls are backspace,
// left/right arrows, home, end, and Enter. Unrecognized escape sequences
// are dropped rather than inserted as garbage.
func (e *Editor) HandleInput(chunk []byte) {
	data := chunk
	if len(e.pending) > 0 {
		data = append(e.pending, chunk...)
		e.pending = nil
	}

	for len(data) > 0 {
		switch data[0] {
		case '\r', '\n':
			line := e.Value()
			e.clusters = nil
			e.cursor = 0
			e.dirty = true
			if e.OnSubmit != nil {
				e.OnSubmit(line)
			}
			data = data[1:]
		case 0x7f, 0x08:
			e.backspace()
			data = data[1:]
		case 0x1b:
			n := e.handleEscape(data)
			if n == 0 {
				// Sequence split across chunks; wait for the rest.
				e.pending = append([]byte(nil), data...)
				return
			}
			data = data[n:]
		default:
			r, size := utf8.DecodeRune(data)
			if r == utf8.RuneError && size == 1 {
				if !utf8.FullRune(data) && len(data) < utf8.UTFMax {
					// Rune split across chunks.
					e.pending = append([]byte(nil), data...)
					return
				}
				// Genuinely invalid byte; skip it.
				data = data[1:]
				continue
			}
			if r >= 0x20 || r == '\t' {
				e.insert(string(data[:size]))
			}
			data = data[size:]
		}
	}
}

// handleEscape consumes one escape sequence starting at data[0] == ESC and
// returns its byte length, or 0 if the sequence is incomplete.
func (e *Editor) handleEscape(data []byte) int {
	if len(data) < 2 {
		return 0
	}
	switch data[1] {
	case '[', 'O':
		// CSI, or SS3 as sent for arrows in application cursor mode.
	default:
		// Lone ESC or an alt-modified key; swallow the pair.
		return 2
	}
	if len(data) < 3 {
		return 0
	}
	switch data[2] {
	case 'C':
		if e.cursor < len(e.clusters) {
			e.cursor++
			e.dirty = true
		}
	case 'D':
		if e.cursor > 0 {
			e.cursor--
			e.dirty = true
		}
	case 'H':
		e.cursor = 0
		e.dirty = true
	case 'F':
		e.cursor = len(e.clusters)
		e.dirty = true
	default:
		if data[1] == 'O' {
			// SS3 carries exactly one byte after the prefix.
			return 3
		}
		// CSI sequences end at the first byte in 0x40..0x7e.
		for i := 2; i < len(data); i++ {
			if data[i] >= 0x40 && data[i] <= 0x7e {
				return i + 1
			}
		}
		return 0
	}
	return 3
}

func (e *Editor) insert(cluster string) {
	// Re-segment the text before the cursor so a combining mark typed
	// after its base merges into one cluster.
	head := splitClusters(strings.Join(e.clusters[:e.cursor], "") + cluster)
	e.clusters = append(head, e.clusters[e.cursor:]...)
	e.cursor = len(head)
	e.dirty = true
}

func (e *Editor) backspace() {
	if e.cursor == 0 {
		return
	}
	e.clusters = append(e.clusters[:e.cursor-1], e.clusters[e.cursor:]...)
	e.cursor--
	e.dirty = true
}

func splitClusters(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cl string
		cl, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cl)
	}
	return out
}

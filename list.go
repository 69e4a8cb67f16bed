package cascade

import "github.com/mattn/go-runewidth"

// List is a selectable list of items. The selected item carries a marker
// prefix; items wider than the terminal are truncated with an ellipsis
// rather than wrapped, keeping the list one row per item.
type List struct {
	items    []string
	selected int

	// OnSelect is called with the index and text of the item confirmed
	// with Enter. Runs on the UI goroutine.
	OnSelect func(index int, item string)

	dirty     bool
	lastWidth int
	lastLines []string
}

const (
	listMarker = "> "
	listGutter = "  "
)

// NewList creates a list with the given items. The first item starts
// selected.
func NewList(items []string) *List {
	return &List{items: items, dirty: true}
}

// SetItems replaces the items, clamping the selection into range.
func (l *List) SetItems(items []string) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = len(items) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.dirty = true
}

// Selected returns the index of the selected item, or -1 when empty.
func (l *List) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

func (l *List) Render(width int) RenderResult {
	if !l.dirty && width == l.lastWidth {
		return RenderResult{Lines: l.lastLines, Changed: false}
	}
	l.lastWidth = width
	lines := make([]string, 0, len(l.items))
	for i, item := range l.items {
		prefix := listGutter
		if i == l.selected {
			prefix = listMarker
		}
		lines = append(lines, runewidth.Truncate(prefix+item, width, "…"))
	}
	l.lastLines = lines
	l.dirty = false
	return RenderResult{Lines: l.lastLines, Changed: true}
}

// HandleInput moves the selection with the arrow keys or j/k and confirms
// with Enter.
func (l *List) HandleInput(chunk []byte) {
	for i := 0; i < len(chunk); i++ {
		switch chunk[i] {
		case 'j':
			l.move(1)
		case 'k':
			l.move(-1)
		case '\r', '\n':
			if l.OnSelect != nil && len(l.items) > 0 {
				l.OnSelect(l.selected, l.items[l.selected])
			}
		case 0x1b:
			if i+2 < len(chunk) && chunk[i+1] == '[' {
				switch chunk[i+2] {
				case 'B':
					l.move(1)
				case 'A':
					l.move(-1)
				}
				i += 2
			}
		}
	}
}

func (l *List) move(delta int) {
	next := l.selected + delta
	if next < 0 || next >= len(l.items) {
		return
	}
	l.selected = next
	l.dirty = true
}

package cascade

import "testing"

func TestEditorTyping(t *testing.T) {
	e := NewEditor("> ")
	e.HandleInput([]byte("hi"))
	if got := e.Value(); got != "hi" {
		t.Errorf("got %q, want %q", got, "hi")
	}
}

func TestEditorEditingKeys(t *testing.T) {
	type tc struct {
		input []string
		want  string
	}

	tests := map[string]tc{
		"backspace deletes before cursor": {
			input: []string{"abc", "\x7f"},
			want:  "ab",
		},
		"backspace at start is a no-op": {
			input: []string{"\x7f", "a"},
			want:  "a",
		},
		"left arrow then insert": {
			input: []string{"ac", "\x1b[D", "b"},
			want:  "abc",
		},
		"home then insert": {
			input: []string{"bc", "\x1b[H", "a"},
			want:  "abc",
		},
		"home then end then insert": {
			input: []string{"ab", "\x1b[H", "\x1b[F", "c"},
			want:  "abc",
		},
		"right arrow at end is a no-op": {
			input: []string{"a", "\x1b[C", "b"},
			want:  "ab",
		},
		"unknown csi sequence is dropped": {
			input: []string{"a", "\x1b[5~", "b"},
			want:  "ab",
		},
		"application mode left arrow": {
			input: []string{"ac", "\x1bOD", "b"},
			want:  "abc",
		},
		"ss3 function key is dropped": {
			input: []string{"a", "\x1bOP", "b"},
			want:  "ab",
		},
		"control bytes are not inserted": {
			input: []string{"a", "\x01", "b"},
			want:  "ab",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewEditor("> ")
			for _, chunk := range tt.input {
				e.HandleInput([]byte(chunk))
			}
			if got := e.Value(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEditorSubmit(t *testing.T) {
	e := NewEditor("> ")
	var got []string
	e.OnSubmit = func(line string) { got = append(got, line) }

	e.HandleInput([]byte("hello\rworld\r"))
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Errorf("got %q, want [hello world]", got)
	}
	if e.Value() != "" {
		t.Errorf("line not cleared after submit: %q", e.Value())
	}
}

func TestEditorRuneSplitAcrossChunks(t *testing.T) {
	e := NewEditor("> ")
	utf8Bytes := []byte("é")
	e.HandleInput(utf8Bytes[:1])
	if got := e.Value(); got != "" {
		t.Fatalf("partial rune inserted early: %q", got)
	}
	e.HandleInput(utf8Bytes[1:])
	if got := e.Value(); got != "é" {
		t.Errorf("got %q, want %q", got, "é")
	}
}

func TestEditorEscapeSplitAcrossChunks(t *testing.T) {
	e := NewEditor("> ")
	e.HandleInput([]byte("ab"))
	e.HandleInput([]byte{0x1b})
	e.HandleInput([]byte("[D"))
	e.HandleInput([]byte("X"))
	if got := e.Value(); got != "aXb" {
		t.Errorf("got %q, want %q", got, "aXb")
	}
}

func TestEditorGraphemeCursor(t *testing.T) {
	e := NewEditor("> ")
	// "e" followed by a combining acute accent forms one cluster, so a
	// single backspace removes both code points.
	e.HandleInput([]byte("e"))
	e.HandleInput([]byte("́"))
	e.HandleInput([]byte("x"))
	e.HandleInput([]byte{0x7f})
	e.HandleInput([]byte{0x7f})
	if got := e.Value(); got != "" {
		t.Errorf("got %q, want empty after two backspaces", got)
	}
}

func TestEditorRenderShowsPromptAndCursor(t *testing.T) {
	e := NewEditor("> ")
	e.HandleInput([]byte("ab"))

	res := e.Render(80)
	if !res.Changed {
		t.Fatal("render after input reported changed=false")
	}
	if got, want := res.Lines[0], "> ab"+escInverse+" "+escReset; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e.HandleInput([]byte("\x1b[D"))
	res = e.Render(80)
	if got, want := res.Lines[0], "> a"+escInverse+"b"+escReset; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if res := e.Render(80); res.Changed {
		t.Error("repeat render with no input reported changed=true")
	}
}

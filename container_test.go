package cascade

import (
	"reflect"
	"testing"
)

// stubNode is a scriptable leaf for tests. It reports changed exactly once
// after each call to set, mirroring the caching contract real nodes follow.
type stubNode struct {
	lines   []string
	changed bool
}

func newStub(lines ...string) *stubNode {
	return &stubNode{lines: lines, changed: true}
}

func (s *stubNode) set(lines ...string) {
	s.lines = lines
	s.changed = true
}

func (s *stubNode) Render(width int) RenderResult {
	changed := s.changed
	s.changed = false
	return RenderResult{Lines: s.lines, Changed: changed}
}

func TestContainerFirstRenderEmitsEverything(t *testing.T) {
	c := NewContainer()
	c.Add(newStub("a"))
	c.Add(newStub("b"))
	c.Add(newStub("c"))

	res := c.Render(80)
	if !res.Changed {
		t.Fatal("first render reported changed=false")
	}
	if res.KeepLines != 0 {
		t.Errorf("got keep=%d, want 0", res.KeepLines)
	}
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
}

func TestContainerSecondRenderUnchanged(t *testing.T) {
	c := NewContainer()
	c.Add(newStub("a"))
	c.Add(newStub("b"))
	c.Render(80)

	res := c.Render(80)
	if res.Changed {
		t.Errorf("got changed=true on identical second render")
	}
	if res.KeepLines != 2 {
		t.Errorf("got keep=%d, want 2", res.KeepLines)
	}
	if len(res.Lines) != 0 {
		t.Errorf("got lines=%v, want none", res.Lines)
	}
}

func TestContainerCascade(t *testing.T) {
	type tc struct {
		update    func(n0, n1, n2 *stubNode)
		wantKeep  int
		wantLines []string
	}

	tests := map[string]tc{
		"middle change retransmits tail": {
			update:    func(_, n1, _ *stubNode) { n1.set("B") },
			wantKeep:  1,
			wantLines: []string{"B", "c"},
		},
		"first change retransmits all": {
			update:    func(n0, _, _ *stubNode) { n0.set("A") },
			wantKeep:  0,
			wantLines: []string{"A", "b", "c"},
		},
		"last change keeps the rest": {
			update:    func(_, _, n2 *stubNode) { n2.set("C") },
			wantKeep:  2,
			wantLines: []string{"C"},
		},
		"growth pushes siblings down": {
			update:    func(_, n1, _ *stubNode) { n1.set("b1", "b2") },
			wantKeep:  1,
			wantLines: []string{"b1", "b2", "c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewContainer()
			n0, n1, n2 := newStub("a"), newStub("b"), newStub("c")
			c.Add(n0)
			c.Add(n1)
			c.Add(n2)
			c.Render(80)

			tt.update(n0, n1, n2)
			res := c.Render(80)
			if !res.Changed {
				t.Fatal("got changed=false after mutation")
			}
			if res.KeepLines != tt.wantKeep {
				t.Errorf("got keep=%d, want %d", res.KeepLines, tt.wantKeep)
			}
			if !reflect.DeepEqual(res.Lines, tt.wantLines) {
				t.Errorf("got lines=%v, want %v", res.Lines, tt.wantLines)
			}
		})
	}
}

func TestContainerRemovalTombstone(t *testing.T) {
	c := NewContainer()
	n0, n1, n2 := newStub("a"), newStub("b"), newStub("c")
	c.Add(n0)
	c.Add(n1)
	c.Add(n2)
	c.Render(80)

	if !c.Remove(n1) {
		t.Fatal("Remove returned false for a present node")
	}
	res := c.Render(80)
	if res.KeepLines != 1 {
		t.Errorf("got keep=%d, want 1", res.KeepLines)
	}
	if want := []string{"c"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}

	// Indices are stable: the freed slot is never reused.
	n3 := newStub("d")
	c.Add(n3)
	if got := len(c.slots); got != 4 {
		t.Fatalf("got %d slots, want 4", got)
	}
	if c.slots[1].kind != slotTombstone {
		t.Errorf("slot 1 is not a tombstone after removal")
	}
	if c.slots[3].leaf != Node(n3) {
		t.Errorf("new node did not append at index 3")
	}
}

func TestContainerRemoveAbsentNode(t *testing.T) {
	c := NewContainer()
	c.Add(newStub("a"))
	if c.Remove(newStub("x")) {
		t.Error("Remove returned true for an absent node")
	}
}

func TestContainerRemoveIsShallow(t *testing.T) {
	inner := NewContainer()
	n := newStub("x")
	inner.Add(n)
	outer := NewContainer()
	outer.AddContainer(inner)

	if outer.Remove(n) {
		t.Error("Remove crossed into a nested container")
	}
	if !outer.removeNested(n) {
		t.Error("removeNested did not find the nested node")
	}
}

func TestContainerBookkeepingMatchesLastRender(t *testing.T) {
	c := NewContainer()
	n0, n1 := newStub("a"), newStub("b1", "b2")
	c.Add(n0)
	c.Add(n1)
	c.Render(80)

	for i, want := range []int{1, 2} {
		if got := c.slots[i].prevLines; got != want {
			t.Errorf("slot %d: got prevLines=%d, want %d", i, got, want)
		}
	}

	n1.set("b")
	c.Render(80)
	if got := c.slots[1].prevLines; got != 1 {
		t.Errorf("after shrink: got prevLines=%d, want 1", got)
	}
}

func TestContainerInvalidateForcesFullCascade(t *testing.T) {
	c := NewContainer()
	c.Add(newStub("a"))
	inner := NewContainer()
	inner.Add(newStub("b"))
	c.AddContainer(inner)
	c.Render(80)

	c.Invalidate()
	res := c.Render(80)
	if !res.Changed {
		t.Fatal("got changed=false after Invalidate")
	}
	if res.KeepLines != 0 {
		t.Errorf("got keep=%d, want 0", res.KeepLines)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
}

func TestCascadeRetransmitsUnchangedNestedContainer(t *testing.T) {
	outer := NewContainer()
	n0 := newStub("a")
	outer.Add(n0)
	inner := NewContainer()
	inner.Add(newStub("in"))
	outer.AddContainer(inner)
	outer.Render(80)

	// A change above the nested container erases its rows, so the pass
	// must carry the container's full lines even though it is unchanged.
	n0.set("A")
	res := outer.Render(80)
	if res.KeepLines != 0 {
		t.Errorf("got keep=%d, want 0", res.KeepLines)
	}
	if want := []string{"A", "in"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
}

func TestCompositeBookkeepingSurvivesUnchangedPass(t *testing.T) {
	outer := NewContainer()
	inner := NewContainer()
	inner.Add(newStub("i1"))
	inner.Add(newStub("i2"))
	outer.AddContainer(inner)
	tail := newStub("t")
	outer.Add(tail)
	outer.Render(80)

	res := outer.Render(80)
	if res.Changed {
		t.Fatal("got changed=true on an all-unchanged pass")
	}
	if res.KeepLines != 3 {
		t.Errorf("got keep=%d, want 3", res.KeepLines)
	}
	if got := outer.slots[0].prevLines; got != 2 {
		t.Errorf("got composite prevLines=%d after unchanged pass, want 2", got)
	}

	// The nested rows stay accounted for when a later sibling changes.
	tail.set("T")
	res = outer.Render(80)
	if res.KeepLines != 2 {
		t.Errorf("got keep=%d, want 2", res.KeepLines)
	}
	if want := []string{"T"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
}

func TestNestedContainerPartialChangeKeepsItsPrefix(t *testing.T) {
	outer := NewContainer()
	inner := NewContainer()
	i1, i2 := newStub("i1"), newStub("i2")
	inner.Add(i1)
	inner.Add(i2)
	outer.AddContainer(inner)
	outer.Render(80)

	i2.set("I2")
	res := outer.Render(80)
	if res.KeepLines != 1 {
		t.Errorf("got keep=%d, want 1", res.KeepLines)
	}
	if want := []string{"I2"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
	if got := outer.slots[0].prevLines; got != 2 {
		t.Errorf("got composite prevLines=%d, want 2", got)
	}
}

func TestNestedContainerChange(t *testing.T) {
	outer := NewContainer()
	top := newStub("top")
	outer.Add(top)
	inner := NewContainer()
	innerNode := newStub("in")
	inner.Add(innerNode)
	outer.AddContainer(inner)
	bottom := newStub("bottom")
	outer.Add(bottom)
	outer.Render(80)

	innerNode.set("IN")
	res := outer.Render(80)
	if res.KeepLines != 1 {
		t.Errorf("got keep=%d, want 1", res.KeepLines)
	}
	if want := []string{"IN", "bottom"}; !reflect.DeepEqual(res.Lines, want) {
		t.Errorf("got lines=%v, want %v", res.Lines, want)
	}
}

package cascade

// ContainerResult extends RenderResult with the count of previously painted
// rows, from the top of this container's region, that remain valid and are
// not retransmitted.
type ContainerResult struct {
	RenderResult

	// KeepLines counts the leading terminal rows still valid on screen.
	KeepLines int
}

type slotKind uint8

const (
	slotLeaf slotKind = iota
	slotComposite
	slotTombstone
)

// slot is one indexed entry in a container or the root. Removing a node
// replaces its slot with a tombstone instead of compacting, so sibling
// indices stay stable for the lifetime of the structure.
type slot struct {
	kind      slotKind
	leaf      Node
	composite *Container

	// prevLines is the number of lines this slot contributed to the
	// screen as of the last completed paint.
	prevLines int
}

// Container is an ordered aggregate of nodes and nested containers that
// renders as a cascading diff across its children.
//
// Only append and tombstone-on-remove are supported. There is no way to
// move an existing node to a new position short of removing it and adding
// it again, which assigns a new index.
type Container struct {
	slots        []slot
	forceCascade bool
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Add registers a leaf node at the next index past the end.
// Tombstoned indices are never reused.
func (c *Container) Add(n Node) {
	c.slots = append(c.slots, slot{kind: slotLeaf, leaf: n})
}

// AddContainer nests another container at the next index past the end.
func (c *Container) AddContainer(child *Container) {
	c.slots = append(c.slots, slot{kind: slotComposite, composite: child})
}

// Remove replaces the slot holding n with a tombstone, searching leaf slots
// at this level only. Reports whether n was found. Sibling indices are
// unaffected; the tombstone is a permanent hole unless the whole structure
// is rebuilt.
func (c *Container) Remove(n Node) bool {
	for i := range c.slots {
		if c.slots[i].kind == slotLeaf && c.slots[i].leaf == n {
			c.slots[i] = slot{kind: slotTombstone}
			return true
		}
	}
	return false
}

// RemoveContainer tombstones the slot holding the given nested container.
// Reports whether it was found at this level.
func (c *Container) RemoveContainer(child *Container) bool {
	for i := range c.slots {
		if c.slots[i].kind == slotComposite && c.slots[i].composite == child {
			c.slots[i] = slot{kind: slotTombstone}
			return true
		}
	}
	return false
}

// removeNested searches nested containers, at any depth, for a slot holding
// n and tombstones it there. Reports whether n was found.
func (c *Container) removeNested(n Node) bool {
	for i := range c.slots {
		if c.slots[i].kind != slotComposite {
			continue
		}
		child := c.slots[i].composite
		if child.Remove(n) || child.removeNested(n) {
			return true
		}
	}
	return false
}

// contains reports whether n is reachable from this container, searching
// nested containers at any depth. Tombstones never match.
func (c *Container) contains(n Node) bool {
	for i := range c.slots {
		switch c.slots[i].kind {
		case slotLeaf:
			if c.slots[i].leaf == n {
				return true
			}
		case slotComposite:
			if c.slots[i].composite.contains(n) {
				return true
			}
		}
	}
	return false
}

// Len returns the number of slots, tombstones included.
func (c *Container) Len() int {
	return len(c.slots)
}

// Render runs one cascading diff pass across the children.
//
// Slots before the first change contribute only their previous line count,
// accumulated into KeepLines. From the first changed slot (or tombstone)
// onward, every slot's full current lines are appended unconditionally:
// the screen offset of everything below that point is no longer stable
// relative to what is already painted, so it all has to be retransmitted.
//
// Tombstones contribute zero lines but always start the cascade. A nested
// container contributes its own kept-row count to KeepLines; once the
// cascade is running it is invalidated before rendering so that it emits
// every one of its rows, not just its own changed suffix.
//
// A panic from any slot's render propagates out unguarded, aborting the
// pass with bookkeeping stale relative to the screen.
func (c *Container) Render(width int) ContainerResult {
	var (
		out       []string
		keep      int
		cascading = c.forceCascade
	)
	c.forceCascade = false

	for i := range c.slots {
		s := &c.slots[i]
		switch s.kind {
		case slotTombstone:
			cascading = true
			s.prevLines = 0
		case slotComposite:
			if cascading {
				s.composite.Invalidate()
			}
			r := s.composite.Render(width)
			switch {
			case cascading:
				out = append(out, r.Lines...)
			case len(r.Lines) > 0:
				// The child's kept prefix is still valid on screen;
				// the cascade starts at its changed suffix.
				cascading = true
				keep += r.KeepLines
				out = append(out, r.Lines...)
			default:
				keep += r.KeepLines
			}
			s.prevLines = r.KeepLines + len(r.Lines)
		default:
			r := s.leaf.Render(width)
			if cascading {
				out = append(out, r.Lines...)
			} else if r.Changed {
				cascading = true
				out = append(out, r.Lines...)
			} else {
				keep += s.prevLines
			}
			s.prevLines = len(r.Lines)
		}
	}

	return ContainerResult{
		RenderResult: RenderResult{Lines: out, Changed: len(out) > 0},
		KeepLines:    keep,
	}
}

// Invalidate zeroes the bookkeeping so the next pass repaints everything:
// prevLines drops to zero for every slot, nested containers are invalidated
// recursively, and the cascade is forced from index zero regardless of what
// the slots report. Used after a resize or any rebuild where the on-screen
// region can no longer be trusted.
func (c *Container) Invalidate() {
	c.forceCascade = true
	for i := range c.slots {
		c.slots[i].prevLines = 0
		if c.slots[i].kind == slotComposite {
			c.slots[i].composite.Invalidate()
		}
	}
}

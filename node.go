package cascade

// RenderResult is what a node produces for one render pass.
// It is produced fresh on every Render call and never mutated after return.
type RenderResult struct {
	// Lines is the node's full current output, top to bottom.
	Lines []string

	// Changed reports whether Lines differ from what the previous
	// Render call returned.
	Changed bool
}

// Node is the contract every visual element implements.
//
// Render must be deterministic given the node's internal state and width.
// A node caches the lines it last returned so that a subsequent call with
// unchanged state and width reports Changed == false. A width change must
// be treated as a potential content change (re-wrapping) and may report
// Changed == true even when the logical content is identical.
//
// Render never blocks and never performs I/O.
type Node interface {
	Render(width int) RenderResult
}

// InputHandler is the optional capability implemented by nodes that can
// hold keyboard focus (editors, lists). The dispatcher forwards raw input
// chunks verbatim; the node decodes them itself. A node without this
// capability can never meaningfully hold focus.
type InputHandler interface {
	Node

	// HandleInput processes one raw input chunk from the terminal.
	// Chunk boundaries are arbitrary: a multi-byte sequence may arrive
	// split across calls.
	HandleInput(chunk []byte)
}

// Package cascade provides an incremental line-diff rendering engine for
// terminal scrollback UIs.
//
// Visual nodes (text blocks, editors, lists) compose into an ordered region
// at the bottom of the terminal's normal scrollback buffer. Each paint
// retransmits only the suffix of rows that actually changed since the
// previous paint, using nothing beyond cursor-up and erase-to-end escape
// sequences. All node state and terminal output are owned by a single UI
// goroutine; the only asynchrony is repaint coalescing.
package cascade

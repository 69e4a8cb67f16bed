package cascade

import (
	"fmt"
	"strings"
)

// The engine uses exactly two screen-control primitives: cursor-up-N and
// erase-from-cursor-to-end-of-screen. No alternate screen buffer, no
// explicit column addressing beyond carriage return.
const escEraseDown = "\033[0J"

// SGR attributes used by the stock widgets. These style row content and
// are not screen control, so they stay within the two-primitive rule.
const (
	escInverse = "\033[7m"
	escReset   = "\033[0m"
)

// cursorUp returns the escape sequence moving the cursor up n rows.
// Returns "" for n < 1.
func cursorUp(n int) string {
	if n < 1 {
		return ""
	}
	return fmt.Sprintf("\033[%dA", n)
}

// appendLines writes lines joined with CRLF. In raw mode LF alone moves the
// cursor down without returning to column 1, so every break needs CR too.
func appendLines(seq *strings.Builder, lines []string) {
	for i, line := range lines {
		if i > 0 {
			seq.WriteString("\r\n")
		}
		seq.WriteString(line)
	}
}

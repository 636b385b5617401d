// Number formatting utilities for CLI output.

package cli

import (
	"fmt"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal string.
// A leading minus sign is preserved.
func FormatNumberString(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	b.Grow(n + n/3 + 1)
	if neg {
		b.WriteByte('-')
	}
	head := n % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(s[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// TruncateDigits shortens a long decimal string to its first and last
// DisplayEdges digits. It reports whether s was truncated.
func TruncateDigits(s string) (string, bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	return fmt.Sprintf("%s...%s", s[:DisplayEdges], s[len(s)-DisplayEdges:]), true
}

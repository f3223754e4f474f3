package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
	minLineWidth   = 10
)

// formatErrorForDisplay word-wraps an error message to at most two lines of
// maxWidth, counting the "Error: " prefix on the first line. Longer messages
// end with "...".
func formatErrorForDisplay(message string, maxWidth int) string {
	words := strings.Fields(message)
	if len(words) == 0 {
		return errorPrefix + "unknown error"
	}

	widths := [maxErrorLines]int{
		max(maxWidth-utf8.RuneCountInString(errorPrefix), minLineWidth),
		max(maxWidth, minLineWidth),
	}

	var lines []string
	var line strings.Builder
	truncated := false
	for i, word := range words {
		n := utf8.RuneCountInString(line.String())
		if n > 0 && n+1+utf8.RuneCountInString(word) > widths[len(lines)] {
			lines = append(lines, line.String())
			line.Reset()
			if len(lines) == maxErrorLines {
				truncated = i < len(words)
				break
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if !truncated && line.Len() > 0 {
		lines = append(lines, line.String())
	}

	if truncated {
		last := []rune(lines[maxErrorLines-1])
		keep := widths[maxErrorLines-1] - utf8.RuneCountInString(truncationMark)
		if keep > 0 && len(last) > keep {
			last = last[:keep]
		}
		lines[maxErrorLines-1] = string(last) + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}

package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	long := strings.Repeat("connection refused while talking to the prediction service ", 6)

	tests := []struct {
		name      string
		message   string
		maxWidth  int
		expected  string
		truncated bool
	}{
		{
			name:     "short message",
			message:  "boom",
			maxWidth: 80,
			expected: "Error: boom",
		},
		{
			name:     "empty message",
			message:  "   ",
			maxWidth: 80,
			expected: "Error: unknown error",
		},
		{
			name:     "wraps onto a second line",
			message:  "the prediction service answered with status 503",
			maxWidth: 30,
			expected: "Error: the prediction service\nanswered with status 503",
		},
		{
			name:      "long message is truncated",
			message:   long,
			maxWidth:  40,
			truncated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatErrorForDisplay(tt.message, tt.maxWidth)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, got)
			}

			lines := strings.Split(got, "\n")
			assert.LessOrEqual(t, len(lines), maxErrorLines)
			for _, line := range lines {
				assert.LessOrEqual(t, utf8.RuneCountInString(line), tt.maxWidth)
			}
			assert.Equal(t, tt.truncated, strings.HasSuffix(got, truncationMark))
		})
	}
}

func TestFormatErrorForDisplayNarrowWidth(t *testing.T) {
	got := formatErrorForDisplay("a b c d e f g h i j k l m n o p", 2)

	assert.True(t, strings.HasPrefix(got, errorPrefix))
	assert.LessOrEqual(t, len(strings.Split(got, "\n")), maxErrorLines)
}

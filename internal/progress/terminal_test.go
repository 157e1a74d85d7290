package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps TerminalCapabilities
		want Symbols
	}{
		"unicode terminal": {
			caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			want: Symbols{Checkmark: "✓", Warning: "⚠"},
		},
		"ascii terminal": {
			caps: TerminalCapabilities{IsTTY: true, SupportsUnicode: false},
			want: Symbols{Checkmark: "[OK]", Warning: "[WARN]"},
		},
		"piped output": {
			caps: TerminalCapabilities{},
			want: ASCIISymbols(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SelectSymbols(tt.caps))
		})
	}
}

func TestDetectTerminalCapabilities_NotATerminal(t *testing.T) {
	// go test pipes stdout, so no TTY features are reported.
	caps := DetectTerminalCapabilities()
	if caps.IsTTY {
		t.Skip("stdout is a terminal")
	}
	assert.False(t, caps.SupportsColor)
	assert.False(t, caps.SupportsUnicode)
}

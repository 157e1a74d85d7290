// Package progress selects the symbols reqt uses for its progress lines based
// on what the attached terminal can render.
package progress

import (
	"os"

	"golang.org/x/term"
)

// TerminalCapabilities describes what the output terminal supports.
type TerminalCapabilities struct {
	IsTTY           bool
	SupportsColor   bool
	SupportsUnicode bool
}

// Symbols holds the markers printed in front of progress lines.
type Symbols struct {
	Checkmark string
	Warning   string
}

// DetectTerminalCapabilities detects terminal features and returns capabilities.
// Checks: stdout isatty, NO_COLOR env, REQT_ASCII env.
func DetectTerminalCapabilities() TerminalCapabilities {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	noColor := os.Getenv("NO_COLOR") != ""
	forceASCII := os.Getenv("REQT_ASCII") == "1"

	return TerminalCapabilities{
		IsTTY:           isTTY,
		SupportsColor:   isTTY && !noColor,
		SupportsUnicode: isTTY && !forceASCII,
	}
}

// SelectSymbols returns the appropriate symbol set based on terminal capabilities.
// Unicode: ✓/⚠. ASCII: [OK]/[WARN].
func SelectSymbols(caps TerminalCapabilities) Symbols {
	if caps.SupportsUnicode {
		return UnicodeSymbols()
	}
	return ASCIISymbols()
}

// UnicodeSymbols returns the Unicode symbol set.
func UnicodeSymbols() Symbols {
	return Symbols{Checkmark: "✓", Warning: "⚠"}
}

// ASCIISymbols returns the plain ASCII symbol set.
func ASCIISymbols() Symbols {
	return Symbols{Checkmark: "[OK]", Warning: "[WARN]"}
}

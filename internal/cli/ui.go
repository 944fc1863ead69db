package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions, cursor
	colorGreen  = lipgloss.Color("35")  // Green - success, selection
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - note text
	colorGray   = lipgloss.Color("245") // Gray - headers
	colorDim    = lipgloss.Color("240") // Dim gray - borders, help
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// statusKind selects the icon and color of a status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
)

func (c *CLI) status(kind statusKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	var icon string
	switch kind {
	case statusSuccess:
		icon = lipgloss.NewStyle().Foreground(colorGreen).Render(iconSuccess)
	case statusWarning:
		icon = StyleWarning.Render(iconWarning)
		msg = StyleWarning.Render(msg)
	default:
		icon = lipgloss.NewStyle().Foreground(colorGray).Render(iconInfo)
	}
	fmt.Fprintln(c.Out, icon+" "+msg)
}

// printSuccess prints a success message.
func (c *CLI) printSuccess(format string, args ...any) { c.status(statusSuccess, format, args...) }

// printWarning prints a warning message.
func (c *CLI) printWarning(format string, args ...any) { c.status(statusWarning, format, args...) }

// printInfo prints an info/status message.
func (c *CLI) printInfo(format string, args ...any) { c.status(statusInfo, format, args...) }

// printFile prints a file output line.
func (c *CLI) printFile(path string) {
	fmt.Fprintln(c.Out, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints note and edge counts on a single line.
func (c *CLI) printStats(nodeCount, edgeCount int) {
	fmt.Fprintln(c.Out, "  "+StyleDim.Render(statsLine(nodeCount, edgeCount)))
}

func statsLine(nodeCount, edgeCount int) string {
	return plural(nodeCount, "note") + " · " + plural(edgeCount, "edge")
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// printNextStep prints a suggested next command.
func (c *CLI) printNextStep(description, cmd string) {
	fmt.Fprintln(c.Out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

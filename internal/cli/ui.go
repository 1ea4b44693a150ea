package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Palette
// =============================================================================

// ANSI 256 colors shared by status output and the preview.
var (
	colorAccent = lipgloss.Color("36")  // teal
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorURL    = lipgloss.Color("75")  // light blue
	colorValue  = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)
	StyleLink      = lipgloss.NewStyle().Foreground(colorURL).Underline(true)
	StyleDim       = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue     = lipgloss.NewStyle().Foreground(colorValue)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorWarn)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleCommand     = lipgloss.NewStyle().Foreground(colorURL)
	styleKey         = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
)

// statusKind selects the icon and its color for a status line.
type statusKind int

const (
	statusOK statusKind = iota
	statusFail
	statusWarn
	statusInfo
)

var statusIcons = [...]struct {
	icon  string
	style lipgloss.Style
}{
	statusOK:   {"✓", lipgloss.NewStyle().Foreground(colorOK)},
	statusFail: {"✗", lipgloss.NewStyle().Foreground(colorFail)},
	statusWarn: {"!", lipgloss.NewStyle().Foreground(colorWarn)},
	statusInfo: {"›", lipgloss.NewStyle().Foreground(colorLabel)},
}

func statusLine(kind statusKind, msg string) string {
	s := statusIcons[kind]
	if kind == statusWarn {
		msg = StyleWarning.Render(msg)
	}
	return s.style.Render(s.icon) + " " + msg
}

func printSuccess(format string, args ...any) {
	fmt.Println(statusLine(statusOK, fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Println(statusLine(statusFail, fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Println(statusLine(statusWarn, fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(statusLine(statusInfo, fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, muted line under a status line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }

// =============================================================================
// Stats
// =============================================================================

var (
	styleCached = lipgloss.NewStyle().Foreground(colorOK)
	styleFresh  = lipgloss.NewStyle().Foreground(colorLabel)
)

// printStats prints the tag and row counts of a run and whether the layout
// came from the cache.
func printStats(tagCount, rowCount int, cached bool) {
	fmt.Println(statsLine(tagCount, rowCount, cached))
}

func statsLine(tagCount, rowCount int, cached bool) string {
	var parts []string
	if tagCount > 0 {
		parts = append(parts, StyleDim.Render(plural(tagCount, "tag")))
	}
	if rowCount > 0 {
		parts = append(parts, StyleDim.Render(plural(rowCount, "row")))
	}
	if cached {
		parts = append(parts, styleCached.Render("cached"))
	} else {
		parts = append(parts, styleFresh.Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

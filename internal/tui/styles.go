package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/plantmath/strainfib/internal/ui"
)

// Style variables for the TUI menu.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	menuItemStyle   lipgloss.Style
	menuCursorStyle lipgloss.Style
	promptStyle     lipgloss.Style
	outputStyle     lipgloss.Style
	errorStyle      lipgloss.Style
	footerKeyStyle  lipgloss.Style
	footerDescStyle lipgloss.Style
	footerStatStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	menuItemStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	menuCursorStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	promptStyle = lipgloss.NewStyle().
		Foreground(t.Warning).
		Bold(true)

	outputStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	footerKeyStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	footerDescStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	footerStatStyle = lipgloss.NewStyle().
		Foreground(t.Success)
}

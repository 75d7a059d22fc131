package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/plantmath/strainfib/internal/cli"
	"github.com/plantmath/strainfib/internal/config"
	apperrors "github.com/plantmath/strainfib/internal/errors"
	"github.com/plantmath/strainfib/internal/fibonacci"
	"github.com/plantmath/strainfib/internal/strain"
	"github.com/plantmath/strainfib/internal/sysmon"
)

// mode identifies the interaction state of the TUI session.
type mode int

const (
	modeMenu mode = iota
	modeInput
	modeRunning
	modeOutput
)

// tickMsg drives the periodic system-stats refresh.
type tickMsg time.Time

// statsMsg carries a fresh resource snapshot for the footer.
type statsMsg sysmon.Stats

// Model is the root bubbletea model for the interactive menu.
type Model struct {
	keymap KeyMap

	cursor int
	mode   mode

	// input state for the actions that prompt for a number
	inputAction int
	inputValue  string
	inputPrompt string

	body    string
	bodyErr bool

	width  int
	height int

	stats sysmon.Stats

	ctx      context.Context
	strain   strain.Strain
	timeout  time.Duration
	version  string
	exitCode int
}

// NewModel creates a new TUI model.
func NewModel(ctx context.Context, s strain.Strain, cfg config.AppConfig, version string) Model {
	return Model{
		keymap:   DefaultKeyMap(),
		ctx:      ctx,
		strain:   s,
		timeout:  cfg.Timeout,
		version:  version,
		exitCode: apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), sampleStatsCmd())
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(), sampleStatsCmd())

	case statsMsg:
		m.stats = sysmon.Stats(msg)
		return m, nil

	case actionDoneMsg:
		m.body = msg.output
		m.bodyErr = msg.isErr
		m.mode = modeOutput
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case modeMenu:
		return m.handleMenuKey(msg)
	case modeInput:
		return m.handleInputKey(msg)
	case modeOutput:
		if key.Matches(msg, m.keymap.Back) || key.Matches(msg, m.keymap.Select) {
			m.mode = modeMenu
			m.body = ""
			m.bodyErr = false
		}
		return m, nil
	}
	// While an action runs, only quit is honored.
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Select):
		return m.selectAction(m.cursor)
	}
	return m, nil
}

// selectAction starts the chosen action, prompting for input where needed.
func (m Model) selectAction(action int) (tea.Model, tea.Cmd) {
	switch action {
	case actionSingle:
		m.mode = modeInput
		m.inputAction = action
		m.inputValue = ""
		m.inputPrompt = fmt.Sprintf("Fibonacci position (0-%d)", fibonacci.MaxSafeIndex)
		return m, nil
	case actionSequence:
		m.mode = modeInput
		m.inputAction = action
		m.inputValue = ""
		m.inputPrompt = fmt.Sprintf("Number of terms (1-%d)", cli.SequenceDisplayLimit)
		return m, nil
	case actionRange:
		m.mode = modeRunning
		return m, runRangeCmd(m.ctx, m.timeout)
	case actionGoldenRatio:
		m.mode = modeRunning
		return m, runGoldenRatioCmd()
	case actionComparison:
		m.mode = modeRunning
		return m, runComparisonCmd(m.ctx, m.timeout)
	case actionWisdom:
		m.mode = modeOutput
		m.body = wisdomText()
		m.bodyErr = false
		return m, nil
	case actionExit:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.mode = modeMenu
		m.inputValue = ""
		return m, nil
	case key.Matches(msg, m.keymap.Select):
		return m.submitInput()
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(m.inputValue) > 0 {
			m.inputValue = m.inputValue[:len(m.inputValue)-1]
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r >= '0' && r <= '9' && len(m.inputValue) < 6 {
				m.inputValue += string(r)
			}
		}
	}
	return m, nil
}

// submitInput parses the typed number and launches the pending action.
func (m Model) submitInput() (tea.Model, tea.Cmd) {
	n, err := strconv.ParseUint(m.inputValue, 10, 64)
	if err != nil {
		// Keep prompting until a number is typed or the user backs out.
		return m, nil
	}

	m.mode = modeRunning
	switch m.inputAction {
	case actionSingle:
		return m, runSingleCmd(m.strain, n)
	case actionSequence:
		return m, runSequenceCmd(int(n))
	}
	m.mode = modeMenu
	return m, nil
}

// View renders the session.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	title := titleStyle.Render(fmt.Sprintf("🌿 Strain Fibonacci Laboratory %s", m.version))

	var body string
	switch m.mode {
	case modeMenu:
		body = m.viewMenu()
	case modeInput:
		body = m.viewInput()
	case modeRunning:
		body = outputStyle.Render("Working...")
	case modeOutput:
		if m.bodyErr {
			body = errorStyle.Render(m.body)
		} else {
			body = outputStyle.Render(m.body)
		}
		body += "\n" + footerDescStyle.Render("esc: back to menu")
	}

	panel := panelStyle.Width(m.panelWidth()).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, title, panel, m.viewFooter())
}

func (m Model) viewMenu() string {
	var b strings.Builder
	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("► " + item))
		} else {
			b.WriteString(menuItemStyle.Render("  " + item))
		}
		if i < len(menuItems)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) viewInput() string {
	return promptStyle.Render(m.inputPrompt+": ") + m.inputValue + menuCursorStyle.Render("█")
}

func (m Model) viewFooter() string {
	help := footerKeyStyle.Render("↑/↓") + footerDescStyle.Render(" move  ") +
		footerKeyStyle.Render("enter") + footerDescStyle.Render(" select  ") +
		footerKeyStyle.Render("q") + footerDescStyle.Render(" quit")
	stats := footerStatStyle.Render(m.stats.Footer())
	return help + "   " + stats
}

func (m Model) panelWidth() int {
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, s strain.Strain, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, s, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// tickCmd returns a command that sends a tickMsg after one second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// sampleStatsCmd reads system stats off the UI goroutine.
func sampleStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return statsMsg(sysmon.Sample())
	}
}

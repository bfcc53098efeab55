// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/wordsprint/internal/model"
	"github.com/verte-zerg/wordsprint/internal/session"
	statsPkg "github.com/verte-zerg/wordsprint/internal/stats"
)

const title = "Test your typing speed"

// Model implements the Bubble Tea typing UI. It renders the session snapshot
// and forwards the input box buffer to the engine on every key.
type Model struct {
	config model.Config
	engine *session.Engine
	state  session.State
	logger *zap.Logger

	input  textinput.Model
	keys   keyMap
	help   help.Model
	styles styles

	width  int
	height int

	results []model.Result

	readClipboard func() (string, error)
}

// clipboardMsg carries the clipboard contents read after ctrl+v.
type clipboardMsg struct {
	text string
	err  error
}

// NewModel constructs a typing TUI model and begins the first session.
func NewModel(cfg model.Config, engine *session.Engine, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Placeholder = "Start typing..."
	input.Prompt = ""
	input.CharLimit = 0
	input.KeyMap.Paste.SetEnabled(false)
	input.Focus()

	m := &Model{
		config: cfg,
		engine: engine,
		logger: logger,
		input:  input,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: stylesFor(cfg.Theme),

		readClipboard: clipboard.ReadAll,
	}
	m.state = engine.Begin(cfg.Words)
	return m
}

// Results returns the sessions completed while the program ran.
func (m *Model) Results() []model.Result {
	return append([]model.Result(nil), m.results...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.contentWidth() - 4
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			m.restart()
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.styles = m.styles.toggled()
			m.logger.Debug("theme toggled", zap.String("theme", m.styles.name))
			return m, nil
		}
		if m.state.Complete() {
			return m, nil
		}
		if key.Matches(msg, m.keys.Paste) {
			return m, m.pasteCmd()
		}
		if msg.Paste {
			m.paste(string(msg.Runes))
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.handleBuffer(m.input.Value())
		return m, cmd
	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard read failed", zap.Error(msg.err))
			return m, nil
		}
		m.paste(msg.text)
		return m, nil
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if value := m.input.Value(); value != before && !m.state.Complete() {
			m.handleBuffer(value)
		}
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	snap := m.state.Snapshot()
	if len(snap.Words) == 0 {
		return ""
	}
	width := m.contentWidth()
	words := wrapStyledRunes(buildStyledRunes(snap, m.styles), width)

	sections := []string{
		m.styles.title.Render(title),
		"",
		lipgloss.NewStyle().Width(width).Render(words),
		"",
		m.styles.inputBox.Width(width - 2).Render(m.input.View()),
	}
	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, "", banner)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content + "\n" + m.renderFooter()
	}
	footer := m.renderFooter()
	helpLine := m.help.View(m.keys)
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 2
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpRow := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return body + "\n" + footerLine + "\n" + helpRow
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := int(float64(m.width) * 0.70)
	if w < 10 {
		w = 10
	}
	return w
}

// handleBuffer forwards the full input buffer to the engine and syncs the
// input box with the session's in-progress input.
func (m *Model) handleBuffer(buffer string) {
	wasComplete := m.state.Complete()
	m.state = m.engine.Type(m.state, buffer)
	if m.state.Input() != buffer {
		m.input.SetValue(m.state.Input())
	}
	if !wasComplete && m.state.Complete() {
		m.finishSession()
	}
}

func (m *Model) pasteCmd() tea.Cmd {
	read := m.readClipboard
	return func() tea.Msg {
		text, err := read()
		return clipboardMsg{text: text, err: err}
	}
}

// paste replays text one character at a time so every separator inside it
// submits a word, exactly as if it had been typed.
func (m *Model) paste(text string) {
	if m.state.Complete() {
		return
	}
	for _, r := range text {
		if m.state.Complete() {
			break
		}
		m.state = m.engine.TypeRune(m.state, r)
	}
	m.input.SetValue(m.state.Input())
	m.input.CursorEnd()
	if m.state.Complete() {
		m.finishSession()
	}
}

func (m *Model) finishSession() {
	result, ok := m.state.Result()
	if !ok {
		return
	}
	m.results = append(m.results, result)
	m.input.Blur()
}

func (m *Model) restart() {
	m.state = m.engine.Reset(m.state)
	m.input.SetValue("")
	m.input.Focus()
	m.logger.Info("session restarted",
		zap.String("session_id", m.state.ID()),
		zap.Int("words", len(m.state.Words())),
	)
}

func (m *Model) renderBanner() string {
	if !m.state.Complete() {
		return ""
	}
	return m.styles.banner.Render(fmt.Sprintf("Your WPM: %d · Accuracy: %d%% · %d/%d words",
		m.state.NetWPM(), m.state.Accuracy(), m.state.CorrectWords(), len(m.state.Words())))
}

func (m *Model) renderFooter() string {
	progress := int(m.state.Progress() * 100)
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if n := len(m.results); n > 0 {
		last := m.results[n-1]
		segments = append(segments, fmt.Sprintf("Last %d WPM · %d%%", last.NetWPM, last.Accuracy))
		summary := statsPkg.Summarize(m.results)
		segments = append(segments, fmt.Sprintf("Run avg %.1f WPM · %.1f%%", summary.AvgWPM, summary.AvgAccuracy))
		if n > 1 {
			segments = append(segments, "Trend "+statsPkg.Sparkline(statsPkg.WPMSeries(m.results)))
		}
	}
	return m.styles.footer.Render(strings.Join(segments, "  "))
}

package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/verte-zerg/wordsprint/internal/config"
	"github.com/verte-zerg/wordsprint/internal/generator"
	"github.com/verte-zerg/wordsprint/internal/model"
	"github.com/verte-zerg/wordsprint/internal/session"
)

type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func newTestModel(t *testing.T, words int) *Model {
	t.Helper()
	dict := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		dict = append(dict, fmt.Sprintf("word%02d", i))
	}
	engine, err := session.NewEngine(dict,
		session.WithGenerator(generator.NewWithSeed(3)),
		session.WithClock(&stepClock{now: time.Unix(1000, 0), step: time.Second}),
	)
	require.NoError(t, err)
	return NewModel(model.Config{Words: words, Theme: config.ThemeDark}, engine, zaptest.NewLogger(t))
}

func keyFor(r rune) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(keyFor(r))
	}
}

func TestTypingForwardsBufferToSession(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()

	typeText(m, words[0][:2])
	assert.Equal(t, words[0][:2], m.state.Input())
	assert.Equal(t, session.InProgress, m.state.Phase())

	typeText(m, words[0][2:]+" ")
	assert.Equal(t, 1, m.state.Index())
	assert.Empty(t, m.input.Value(), "input box clears on submit")
}

func TestBackspaceEditsCurrentWord(t *testing.T) {
	m := newTestModel(t, 3)
	typeText(m, "wox")
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "wo", m.state.Input())
}

func TestCompletingSessionRecordsResult(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()
	typeText(m, strings.Join(words, " ")+" ")

	require.True(t, m.state.Complete())
	results := m.Results()
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].Accuracy)
	assert.Equal(t, words, results[0].Words)
	assert.Contains(t, m.View(), fmt.Sprintf("Your WPM: %d", results[0].NetWPM))
	assert.Contains(t, m.View(), "3/3 words")

	typeText(m, "more ")
	assert.Len(t, m.Results(), 1, "typing after completion is ignored")
}

func TestRestartBeginsNewSession(t *testing.T) {
	m := newTestModel(t, 3)
	typeText(m, "abc ")
	before := m.state.ID()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, cmd)
	assert.NotEqual(t, before, m.state.ID())
	assert.Equal(t, session.NotStarted, m.state.Phase())
	assert.Len(t, m.state.Words(), 3)
	assert.Empty(t, m.input.Value())
}

// pasteText presses ctrl+v and delivers the clipboard read back to Update,
// the way the Bubble Tea runtime would.
func pasteText(t *testing.T, m *Model, text string) {
	t.Helper()
	m.readClipboard = func() (string, error) { return text, nil }
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func TestClipboardPasteSubmitsWord(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()

	pasteText(t, m, words[0]+" ")
	assert.Equal(t, 1, m.state.Index())
	assert.Equal(t, []string{words[0]}, m.state.Typed())
	assert.Empty(t, m.input.Value())

	typeText(m, "x")
	assert.Equal(t, "x", m.state.Input())
	assert.Equal(t, m.state.Input(), m.input.Value())
}

func TestClipboardPasteKeepsPartialWord(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()

	pasteText(t, m, words[0]+" "+words[1][:2])
	assert.Equal(t, 1, m.state.Index())
	assert.Equal(t, words[1][:2], m.state.Input())
	assert.Equal(t, words[1][:2], m.input.Value())
}

func TestClipboardPasteCompletesSession(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()

	pasteText(t, m, strings.Join(words, "\n")+"\n")
	require.True(t, m.state.Complete())
	require.Len(t, m.Results(), 1)
	assert.Equal(t, 100, m.Results()[0].Accuracy)
}

func TestClipboardReadError(t *testing.T) {
	m := newTestModel(t, 3)
	m.readClipboard = func() (string, error) { return "", errors.New("no clipboard") }
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, session.NotStarted, m.state.Phase())
	assert.Empty(t, m.input.Value())
}

func TestBracketedPasteSubmitsEachWord(t *testing.T) {
	m := newTestModel(t, 3)
	words := m.state.Words()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(words[0] + " " + words[1] + " "), Paste: true})
	assert.Equal(t, []string{words[0], words[1]}, m.state.Typed())
	assert.Empty(t, m.input.Value())
}

func TestDefaultThemeIsLight(t *testing.T) {
	assert.Equal(t, config.ThemeLight, stylesFor("").name)
	assert.Equal(t, config.ThemeDark, stylesFor(config.ThemeDark).name)
}

func TestThemeToggle(t *testing.T) {
	m := newTestModel(t, 3)
	assert.Equal(t, config.ThemeDark, m.styles.name)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, config.ThemeLight, m.styles.name)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, config.ThemeDark, m.styles.name)
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, 3)
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestViewShowsWordsAndTitle(t *testing.T) {
	m := newTestModel(t, 3)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	view := m.View()
	assert.Contains(t, view, title)
	for _, w := range m.state.Words() {
		assert.Contains(t, view, w)
	}
	assert.NotContains(t, view, "Your WPM")
}

// Package ui contains the interactive REPL rendered with Bubble Tea. The
// model owns a driver session; every submitted line goes through the full
// lex/parse/eval pipeline and lands in the transcript, either as a result or
// as rendered diagnostics.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bigcalc/internal/diagfmt"
	"bigcalc/internal/driver"
	"bigcalc/internal/history"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const maxTranscript = 200

type replModel struct {
	session *driver.Session
	store   *history.Store
	color   bool

	input      textinput.Model
	transcript []string
	recall     []string
	recallIdx  int // len(recall) means "not recalling"
	lineNo     int
	width      int
	quitting   bool
}

// NewReplModel builds the REPL model. store may be nil to disable
// persistence; prior history entries seed the recall list.
func NewReplModel(session *driver.Session, store *history.Store, prompt string, colorEnabled bool) tea.Model {
	in := textinput.New()
	in.Prompt = promptStyle.Render(prompt)
	in.Placeholder = "expression, e.g. 2 + 3 * 4"
	in.Focus()

	var recall []string
	if entries, err := store.Load(); err == nil {
		for _, e := range entries {
			if e.Base == session.Base() {
				recall = append(recall, e.Expr)
			}
		}
	}

	return &replModel{
		session:   session,
		store:     store,
		color:     colorEnabled,
		input:     in,
		recall:    recall,
		recallIdx: len(recall),
		width:     80,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit()
		case tea.KeyUp:
			m.recallPrev()
			return m, nil
		case tea.KeyDown:
			m.recallNext()
			return m, nil
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) submit() tea.Cmd {
	expr := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.recallIdx = len(m.recall)
	if expr == "" {
		return nil
	}
	if expr == "exit" || expr == "quit" {
		m.quitting = true
		return tea.Quit
	}

	m.lineNo++
	m.appendLine(">> " + expr)

	res := m.session.EvalLine(fmt.Sprintf("repl:%d", m.lineNo), expr)
	if res.Ok {
		m.appendLine(resultStyle.Render("Result: " + res.Value.String()))
		m.recall = append(m.recall, expr)
		m.recallIdx = len(m.recall)
		if err := m.store.Append(history.Entry{
			Expr:   expr,
			Result: res.Value.String(),
			Base:   m.session.Base(),
			When:   time.Now(),
		}); err != nil {
			m.appendLine(helpStyle.Render("history: " + err.Error()))
		}
		return nil
	}

	var sb strings.Builder
	diagfmt.Pretty(&sb, res.Bag, m.session.Inputs(), diagfmt.PrettyOpts{
		Color:     m.color,
		ShowNotes: true,
	})
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		m.appendLine(line)
	}
	return nil
}

func (m *replModel) appendLine(line string) {
	m.transcript = append(m.transcript, line)
	if len(m.transcript) > maxTranscript {
		m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
	}
}

func (m *replModel) recallPrev() {
	if len(m.recall) == 0 || m.recallIdx == 0 {
		return
	}
	m.recallIdx--
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *replModel) recallNext() {
	if m.recallIdx >= len(m.recall) {
		return
	}
	m.recallIdx++
	if m.recallIdx == len(m.recall) {
		m.input.Reset()
		return
	}
	m.input.SetValue(m.recall[m.recallIdx])
	m.input.CursorEnd()
}

func (m *replModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("bigcalc (base %d)", m.session.Base())))
	b.WriteString("\n\n")

	// Show as much transcript as fits a conservative screen height.
	lines := m.transcript
	if len(lines) > 20 {
		lines = lines[len(lines)-20:]
	}
	for _, line := range lines {
		b.WriteString(truncate(line, m.width))
		b.WriteString("\n")
	}
	if len(lines) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: evaluate - up/down: recall - ctrl+d: quit"))
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 1 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width-1, "…")
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/liveocr/internal/clipboard"
	"github.com/f3rmion/liveocr/internal/dict"
)

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// LookupModel is the interactive dictionary lookup model. Type a word, press
// Enter, and every entry whose headword is a prefix of the query is shown
// longest first.
type LookupModel struct {
	input   textinput.Model
	dict    *dict.Dictionary
	entries []dict.Entry
	err     error
	copied  bool

	width  int
	height int
}

// NewLookupModel creates a lookup model querying d.
func NewLookupModel(d *dict.Dictionary) LookupModel {
	ti := textinput.New()
	ti.Placeholder = "Enter Chinese characters..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return LookupModel{input: ti, dict: d}
}

// Init implements tea.Model.
func (m LookupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.lookup()
			return m, nil
		case "ctrl+y":
			if len(m.entries) > 0 {
				e := m.entries[0]
				text := fmt.Sprintf("%s [%s] %s", e.Simplified, e.PinyinString(), strings.Join(e.Translations, "; "))
				if err := clipboard.Write(text); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LookupModel) lookup() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		return
	}
	m.err = nil
	m.entries = m.dict.Matches(query)
	if len(m.entries) == 0 {
		m.err = fmt.Errorf("no entries for: %s", query)
	}
}

// View renders the lookup view.
func (m LookupModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("liveocr lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	for _, e := range m.entries {
		b.WriteString(renderEntry(e, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "Enter: look up • Esc: quit"
	if len(m.entries) > 0 {
		help += " • Ctrl+Y: copy"
	}
	b.WriteString(helpStyle.Render(help))
	if m.copied {
		b.WriteString("  " + copiedStyle.Render("Copied!"))
	}
	return b.String()
}

func renderEntry(e dict.Entry, width int) string {
	head := headwordStyle.Render(e.Simplified)
	if e.Traditional != "" && e.Traditional != e.Simplified {
		head += " " + traditionalStyle.Render("("+e.Traditional+")")
	}
	head += "  " + renderPinyin(e.Pinyin)

	wrapWidth := 60
	if width > 0 && width-10 < wrapWidth {
		wrapWidth = width - 10
	}
	body := translationStyle.Render(wordWrap(strings.Join(e.Translations, "; "), wrapWidth))

	return entryBoxStyle.Render(head + "\n" + body)
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var current strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			current.WriteString(" ")
			currentWidth++
		}
		current.WriteString(word)
		currentWidth += wordWidth
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive lookup UI.
func Run(d *dict.Dictionary) error {
	p := tea.NewProgram(NewLookupModel(d), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running lookup ui: %w", err)
	}
	return nil
}

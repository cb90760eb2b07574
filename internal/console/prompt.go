package console

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// option is one single-key answer.
type option struct {
	key   rune
	label string
}

// choiceModel waits for one of its option keys. Anything else is ignored.
type choiceModel struct {
	prompt  string
	options []option
	styles  Styles
	chosen  int
	aborted bool
}

func newChoiceModel(prompt string, options []option, styles Styles) choiceModel {
	return choiceModel{prompt: prompt, options: options, styles: styles, chosen: -1}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.aborted = true
		return m, tea.Quit
	case tea.KeyRunes:
		if len(key.Runes) != 1 {
			return m, nil
		}
		r := unicode.ToLower(key.Runes[0])
		for i, o := range m.options {
			if o.key == r {
				m.chosen = i
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m choiceModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.prompt))
	b.WriteString("\n")

	labels := make([]string, len(m.options))
	for i, o := range m.options {
		labels[i] = keyLabel(m.styles, o.key, o.label)
	}
	b.WriteString("(" + strings.Join(labels, ", ") + ")\n")

	switch {
	case m.chosen >= 0:
		b.WriteString("> " + m.styles.Move.Render(m.options[m.chosen].label) + "\n")
	case m.aborted:
		b.WriteString("> " + m.styles.Warning.Render("aborted") + "\n")
	default:
		b.WriteString("> ")
	}
	return b.String()
}

// Chosen reports the picked option index.
func (m choiceModel) Chosen() (int, bool) {
	return m.chosen, m.chosen >= 0
}

// keyLabel highlights key inside label: "(r)ock", "sp(o)ck". A key the label
// does not contain is shown in front of it.
func keyLabel(s Styles, key rune, label string) string {
	idx := strings.IndexFunc(label, func(r rune) bool { return unicode.ToLower(r) == key })
	k := s.Key.Render(string(key))
	if idx < 0 {
		return k + " " + label
	}
	_, width := utf8.DecodeRuneInString(label[idx:])
	return label[:idx] + "(" + k + ")" + label[idx+width:]
}

// nameModel collects a non-empty name that is not already taken.
type nameModel struct {
	prompt  string
	input   textinput.Model
	taken   map[string]bool
	styles  Styles
	problem string
	done    bool
	aborted bool
}

func newNameModel(prompt, placeholder string, taken []string, styles Styles) nameModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 32
	ti.Prompt = "> "
	ti.PromptStyle = styles.Prompt

	t := make(map[string]bool, len(taken))
	for _, n := range taken {
		t[strings.ToLower(n)] = true
	}
	return nameModel{prompt: prompt, input: ti, taken: t, styles: styles}
}

func (m nameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m nameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			name := m.Value()
			switch {
			case name == "":
				m.problem = "a name is required"
			case m.taken[strings.ToLower(name)]:
				m.problem = name + " is already playing"
			default:
				m.done = true
				m.input.Blur()
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m nameModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Prompt.Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.problem != "" && !m.done {
		b.WriteString(m.styles.Error.Render(m.problem) + "\n")
	}
	return b.String()
}

// Value is the trimmed text entered so far.
func (m nameModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

package prompt

import (
	"fmt"
	"strings"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxNameLength is the widest name the ranking shows
const MaxNameLength = 9

type textinput struct {
	textInput ti.Model
	err       error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = MaxNameLength
	ti.Width = MaxNameLength + 1

	return textinput{
		textInput: ti,
		err:       nil,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.err = fmt.Errorf("cancelled by user")
			fallthrough
		case tea.KeyEnter, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}

	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n",
		m.prompt,
		m.textInput.View(),
		"(press <enter> to submit)",
	)
}

// value is the trimmed input, or the placeholder when nothing was typed
func (m textinput) value() string {
	value := strings.TrimSpace(m.textInput.Value())
	if value == "" {
		return m.textInput.Placeholder
	}
	return value
}

func TextInput(prompt, placeholder, value string) (string, error) {
	p := tea.NewProgram(newTextinput(prompt, placeholder, value))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", m)
	}

	return model.value(), model.err
}

// PlayerName asks for the name to show in the ranking, suggesting suggestion
func PlayerName(suggestion string) (string, error) {
	return TextInput("What should the ranking call you?", suggestion, "")
}

package controller

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptModel asks for a single script path.
type promptModel struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func newPromptModel() promptModel {
	input := textinput.New()
	input.Placeholder = "script.gpc"
	input.Prompt = "› "
	input.CharLimit = 4096
	input.Width = 60
	input.Focus()

	return promptModel{input: input}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Enter the name of your GPC script file"),
		"  "+m.input.View(),
		helpStyle.Render("enter confirm • esc cancel"),
	) + "\n"
}

func (m promptModel) value() string {
	return m.input.Value()
}

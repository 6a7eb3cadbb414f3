package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var savePromptStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("3")).
	Padding(0, 1)

// SaveSubmitMsg is sent when the user confirms a report path.
type SaveSubmitMsg struct {
	Path string
}

// SaveCancelMsg is sent when the user cancels the save prompt.
type SaveCancelMsg struct{}

// SavePrompt is a sub-model for entering the report file path.
type SavePrompt struct {
	input  textinput.Model
	active bool
	width  int
}

// NewSavePrompt creates a new save path prompt.
func NewSavePrompt(width int) SavePrompt {
	ti := textinput.New()
	ti.Placeholder = "Report path..."
	ti.CharLimit = 500
	ti.Width = width - 6

	return SavePrompt{
		input: ti,
		width: width,
	}
}

// Activate shows the prompt, pre-filled with a suggested path.
func (sp *SavePrompt) Activate(suggested string) {
	sp.active = true
	sp.input.SetValue(suggested)
	sp.input.CursorEnd()
	sp.input.Focus()
}

// Init returns the text input blink command.
func (sp SavePrompt) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key messages.
func (sp SavePrompt) Update(msg tea.Msg) (SavePrompt, tea.Cmd) {
	if !sp.active {
		return sp, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEscape:
			sp.active = false
			sp.input.Blur()
			return sp, func() tea.Msg { return SaveCancelMsg{} }
		case tea.KeyEnter:
			path := sp.input.Value()
			sp.active = false
			sp.input.Blur()
			if path == "" {
				return sp, func() tea.Msg { return SaveCancelMsg{} }
			}
			return sp, func() tea.Msg { return SaveSubmitMsg{Path: path} }
		}
	}

	var cmd tea.Cmd
	sp.input, cmd = sp.input.Update(msg)
	return sp, cmd
}

// View renders the prompt.
func (sp SavePrompt) View() string {
	if !sp.active {
		return ""
	}
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("Save to: ")
	return savePromptStyle.Render(label + sp.input.View())
}

// Active returns whether the prompt is currently shown.
func (sp SavePrompt) Active() bool {
	return sp.active
}

// Value returns the current input text.
func (sp SavePrompt) Value() string {
	return sp.input.Value()
}

// SetWidth updates the width.
func (sp *SavePrompt) SetWidth(width int) {
	sp.width = width
	sp.input.Width = width - 6
}

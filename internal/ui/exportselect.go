package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deparker/sidediff/internal/export"
)

// ExportSelectMsg is sent when the user selects an export target.
type ExportSelectMsg struct {
	Target export.Target
}

// ExportCancelMsg is sent when the user cancels the export selection.
type ExportCancelMsg struct{}

// ExportSelector is a sub-model for selecting where the HTML report goes.
type ExportSelector struct {
	targets []export.Target
	cursor  int
	width   int
	height  int
	err     string // delivery error to display
}

// NewExportSelector creates a new export selector component.
func NewExportSelector(targets []export.Target, width, height int) ExportSelector {
	return ExportSelector{
		targets: targets,
		width:   width,
		height:  height,
	}
}

// SetError sets an error message to display (called when delivery fails).
func (es *ExportSelector) SetError(msg string) {
	es.err = msg
}

// Update handles key messages.
func (es ExportSelector) Update(msg tea.Msg) (ExportSelector, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyRunes:
			switch msg.String() {
			case "j":
				if es.cursor < len(es.targets)-1 {
					es.cursor++
				}
			case "k":
				if es.cursor > 0 {
					es.cursor--
				}
			case "q":
				return es, func() tea.Msg { return ExportCancelMsg{} }
			}
		case tea.KeyDown:
			if es.cursor < len(es.targets)-1 {
				es.cursor++
			}
		case tea.KeyUp:
			if es.cursor > 0 {
				es.cursor--
			}
		case tea.KeyEnter:
			if len(es.targets) > 0 {
				return es, func() tea.Msg {
					return ExportSelectMsg{Target: es.targets[es.cursor]}
				}
			}
		case tea.KeyEscape:
			return es, func() tea.Msg { return ExportCancelMsg{} }
		}
	}

	return es, nil
}

// View renders the selection list.
func (es ExportSelector) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	normalStyle := lipgloss.NewStyle()
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	var s strings.Builder
	s.WriteString(titleStyle.Render("Export report to:"))
	s.WriteString("\n")

	for i, target := range es.targets {
		var line string
		if i == es.cursor {
			line = selectedStyle.Render("  > " + target.Label)
		} else {
			line = normalStyle.Render("    " + target.Label)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if es.err != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render("  Error: " + es.err))
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(footerStyle.Render("  [Enter] select  [q] cancel"))

	return s.String()
}

// SetSize updates the dimensions.
func (es *ExportSelector) SetSize(width, height int) {
	es.width = width
	es.height = height
}

package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deparker/sidediff/internal/diff"
	"github.com/deparker/sidediff/internal/export"
	"github.com/deparker/sidediff/internal/render"
	"github.com/deparker/sidediff/internal/syntax"
)

type focusArea int

const (
	focusViewer focusArea = iota
	focusExportSelect
	focusSavePrompt
)

// RootModel is the top-level Bubble Tea model.
type RootModel struct {
	labelA      string
	labelB      string
	rows        []diff.Row
	stats       diff.Stats
	viewer      CompareViewer
	exportSel   ExportSelector
	savePrompt  SavePrompt
	searchInput textinput.Model
	focus       focusArea
	width       int
	height      int
	statusMsg   string
	searching   bool
	showHelp    bool
	quitting    bool
}

// NewRootModel creates the root model for one comparison. The labels are
// display names only; they also drive syntax highlighting when they look
// like filenames.
func NewRootModel(rows []diff.Row, labelA, labelB string, width, height int) RootModel {
	left := syntax.ForFile(labelA)
	right := syntax.ForFile(labelB)

	cv := NewCompareViewer(rows, left, right, width, height-2)
	es := NewExportSelector(export.DetectTargets(os.Getenv("TMUX")), width, height-2)
	sp := NewSavePrompt(width)

	si := textinput.New()
	si.Placeholder = "Search..."
	si.CharLimit = 100
	si.Width = width - 10

	return RootModel{
		labelA:      labelA,
		labelB:      labelB,
		rows:        rows,
		stats:       diff.Tally(rows),
		viewer:      cv,
		exportSel:   es,
		savePrompt:  sp,
		searchInput: si,
		focus:       focusViewer,
		width:       width,
		height:      height,
	}
}

// Init returns the initial command.
func (m RootModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages. Returns tea.Model for the interface.
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewer.SetSize(m.width, m.height-2)
		m.exportSel.SetSize(m.width, m.height-2)
		m.savePrompt.SetWidth(m.width)
		return m, nil

	case ExportSelectMsg:
		if msg.Target.Kind == export.TargetFile {
			m.focus = focusSavePrompt
			m.savePrompt.Activate(export.DefaultReportPath())
			return m, textinput.Blink
		}
		return m.deliverReport(msg.Target, "")

	case ExportCancelMsg:
		m.focus = focusViewer
		return m, nil

	case SaveSubmitMsg:
		return m.deliverReport(export.Target{Kind: export.TargetFile}, msg.Path)

	case SaveCancelMsg:
		m.focus = focusViewer
		return m, nil

	case tea.KeyMsg:
		// Save prompt gets priority when active.
		if m.focus == focusSavePrompt {
			var cmd tea.Cmd
			m.savePrompt, cmd = m.savePrompt.Update(msg)
			return m, cmd
		}

		// Export selector gets priority when active.
		if m.focus == focusExportSelect {
			var cmd tea.Cmd
			m.exportSel, cmd = m.exportSel.Update(msg)
			return m, cmd
		}

		// Search input gets priority when active.
		if m.searching {
			switch msg.Type {
			case tea.KeyEscape:
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			case tea.KeyEnter:
				term := m.searchInput.Value()
				m.searching = false
				m.searchInput.Blur()
				m.viewer.SetSearch(term)
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m RootModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Help overlay dismissal
	if m.showHelp {
		if key == "?" || key == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true
		return m, nil

	case "/":
		m.searching = true
		m.statusMsg = ""
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		return m, textinput.Blink

	case "e":
		m.focus = focusExportSelect
		m.statusMsg = ""
		m.exportSel.SetError("")
		return m, nil
	}

	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	return m, cmd
}

// deliverReport renders the HTML report and sends it to the target.
func (m RootModel) deliverReport(target export.Target, path string) (tea.Model, tea.Cmd) {
	page, err := render.Page(m.rows, m.labelA, m.labelB)
	if err == nil {
		var status string
		status, err = export.Deliver(target, page, path)
		if err == nil {
			m.statusMsg = status
			m.focus = focusViewer
			return m, nil
		}
	}
	m.exportSel.SetError(err.Error())
	m.focus = focusExportSelect
	return m, nil
}

// View renders the full UI.
func (m RootModel) View() string {
	if m.showHelp {
		return RenderHelp()
	}

	if m.focus == focusExportSelect {
		return m.exportSel.View()
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Render(fmt.Sprintf(" sidediff — %s → %s ", m.labelA, m.labelB))
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(m.viewer.View())

	// Status bar or overlay input
	if m.focus == focusSavePrompt {
		b.WriteString(m.savePrompt.View())
	} else if m.searching {
		searchBar := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("/") + m.searchInput.View()
		b.WriteString(searchBar)
	} else {
		b.WriteString(m.renderStatusBar())
	}

	return b.String()
}

func (m RootModel) renderStatusBar() string {
	status := fmt.Sprintf(" +%d -%d ~%d  │  [e]xport  [/]search  [?]help  [q]uit",
		m.stats.Added, m.stats.Removed, m.stats.Modified)
	if m.statusMsg != "" {
		status += "  │  " + m.statusMsg
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Render(status)
}

// StatusMessage returns the last delivery status (for tests).
func (m RootModel) StatusMessage() string {
	return m.statusMsg
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/deparker/sidediff/internal/diff"
	"github.com/deparker/sidediff/internal/syntax"
)

var (
	addedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	modifiedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	lineNoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle    = lipgloss.NewStyle().Bold(true)
	cursorLineBg   = lipgloss.Color("236")
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// emptyStyle is a reusable zero-value style to avoid allocating lipgloss.NewStyle() per call.
var emptyStyle = lipgloss.NewStyle()

// formatLineNo formats a line number right-aligned in a 4-char field followed by a space.
// Returns "     " (5 spaces) for lineNo <= 0.
func formatLineNo(lineNo int) string {
	if lineNo <= 0 {
		return "     "
	}
	var buf [5]byte
	buf[4] = ' '
	n := lineNo
	i := 3
	for n > 0 && i >= 0 {
		buf[i] = byte('0' + n%10)
		n /= 10
		i--
	}
	for i >= 0 {
		buf[i] = ' '
		i--
	}
	return string(buf[:])
}

// emptyLineNoPad fills the gutter of a blank side.
const emptyLineNoPad = "     "

// CompareViewer is a Bubble Tea sub-model displaying the two-column
// comparison rows.
type CompareViewer struct {
	rows          []diff.Row
	cursor        int
	offset        int // scroll offset
	width         int
	height        int
	left          *syntax.Highlighter
	right         *syntax.Highlighter
	searchTerm    string
	searchMatches []int
}

// NewCompareViewer creates a viewer over the given rows. The highlighters
// style unchanged lines for each side; pass syntax.Passthrough() to
// disable highlighting.
func NewCompareViewer(rows []diff.Row, left, right *syntax.Highlighter, width, height int) CompareViewer {
	return CompareViewer{
		rows:   rows,
		left:   left,
		right:  right,
		width:  width,
		height: height,
	}
}

// Init returns no initial command.
func (cv CompareViewer) Init() tea.Cmd {
	return nil
}

// Update handles key messages for vim-style navigation.
func (cv CompareViewer) Update(msg tea.Msg) (CompareViewer, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if cv.cursor < len(cv.rows)-1 {
				cv.cursor++
				cv.adjustScroll()
			}
		case "k", "up":
			if cv.cursor > 0 {
				cv.cursor--
				cv.adjustScroll()
			}
		case "G":
			cv.cursor = len(cv.rows) - 1
			cv.adjustScroll()
		case "g":
			cv.cursor = 0
			cv.offset = 0
		case "ctrl+d":
			cv.cursor += cv.height / 2
			if cv.cursor >= len(cv.rows) {
				cv.cursor = len(cv.rows) - 1
			}
			cv.adjustScroll()
		case "ctrl+u":
			cv.cursor -= cv.height / 2
			if cv.cursor < 0 {
				cv.cursor = 0
			}
			cv.adjustScroll()
		case "ctrl+f":
			cv.cursor += cv.height
			if cv.cursor >= len(cv.rows) {
				cv.cursor = len(cv.rows) - 1
			}
			cv.adjustScroll()
		case "ctrl+b":
			cv.cursor -= cv.height
			if cv.cursor < 0 {
				cv.cursor = 0
			}
			cv.adjustScroll()
		case "]":
			cv.jumpToNextChange()
		case "[":
			cv.jumpToPrevChange()
		case "n":
			cv.jumpToNextSearch()
		case "N":
			cv.jumpToPrevSearch()
		}
	}
	return cv, nil
}

func (cv *CompareViewer) adjustScroll() {
	if cv.cursor < cv.offset {
		cv.offset = cv.cursor
	}
	if cv.cursor >= cv.offset+cv.height {
		cv.offset = cv.cursor - cv.height + 1
	}
}

func (cv *CompareViewer) isChangedRow(i int) bool {
	r := cv.rows[i]
	if r.Left != nil && r.Left.Class != diff.ClassNone {
		return true
	}
	return r.Right != nil && r.Right.Class != diff.ClassNone
}

func (cv *CompareViewer) jumpToNextChange() {
	i := cv.cursor
	// If currently inside a change block, skip past it first.
	for i < len(cv.rows) && cv.isChangedRow(i) {
		i++
	}
	for i < len(cv.rows) && !cv.isChangedRow(i) {
		i++
	}
	if i < len(cv.rows) {
		cv.cursor = i
		cv.adjustScroll()
	}
}

func (cv *CompareViewer) jumpToPrevChange() {
	i := cv.cursor
	if i > 0 && cv.isChangedRow(i) {
		i--
	}
	for i >= 0 && !cv.isChangedRow(i) {
		i--
	}
	// Now on the last row of a change block; walk back to its start.
	for i > 0 && cv.isChangedRow(i-1) {
		i--
	}
	if i >= 0 && cv.isChangedRow(i) {
		cv.cursor = i
		cv.adjustScroll()
	}
}

// View renders the visible rows.
func (cv CompareViewer) View() string {
	if len(cv.rows) == 0 {
		return "No differences to display."
	}

	end := cv.offset + cv.height
	if end > len(cv.rows) {
		end = len(cv.rows)
	}

	var b strings.Builder
	b.Grow((end - cv.offset) * 200)

	cursorArrowStyle := cursorStyle.Background(cursorLineBg)
	cursorBgStyle := emptyStyle.Background(cursorLineBg)

	for i := cv.offset; i < end; i++ {
		isCursor := i == cv.cursor
		line := cv.renderRow(cv.rows[i], isCursor)

		if isCursor {
			line = cursorArrowStyle.Render("→ ") + line
			if visible := lipgloss.Width(line); visible < cv.width {
				line += cursorBgStyle.Render(strings.Repeat(" ", cv.width-visible))
			}
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

func (cv CompareViewer) renderRow(row diff.Row, highlight bool) string {
	halfWidth := (cv.width - 3) / 2

	sepStyle := separatorStyle
	if highlight {
		sepStyle = sepStyle.Background(cursorLineBg)
	}

	left := cv.renderCell(row.Left, cv.left, highlight)
	right := cv.renderCell(row.Right, cv.right, highlight)

	var b strings.Builder
	b.Grow(256)
	b.WriteString(cv.padToWidth(left, halfWidth, highlight))
	b.WriteString(" ")
	b.WriteString(sepStyle.Render("│"))
	b.WriteString(cv.padToWidth(right, halfWidth, highlight))
	return b.String()
}

func (cv CompareViewer) renderCell(cell *diff.Cell, hl *syntax.Highlighter, highlight bool) string {
	renderBg := func(s string) string {
		if highlight {
			return emptyStyle.Background(cursorLineBg).Render(s)
		}
		return s
	}

	if cell == nil {
		return renderBg(emptyLineNoPad)
	}

	lnStyle := lineNoStyle
	if highlight {
		lnStyle = lnStyle.Background(cursorLineBg)
	}
	gutter := lnStyle.Render(formatLineNo(cell.LineNo))

	var content string
	switch cell.Class {
	case diff.ClassAdded:
		style := addedStyle
		if highlight {
			style = style.Background(cursorLineBg)
		}
		content = style.Render("+" + cell.Text)
	case diff.ClassRemoved:
		style := removedStyle
		if highlight {
			style = style.Background(cursorLineBg)
		}
		content = style.Render("-" + cell.Text)
	case diff.ClassModified:
		style := modifiedStyle
		if highlight {
			style = style.Background(cursorLineBg)
		}
		content = style.Render("~" + cell.Text)
	default:
		content = renderBg(" " + hl.Line(cell.Text))
	}

	return gutter + content
}

func (cv CompareViewer) padToWidth(s string, w int, highlight bool) string {
	visible := lipgloss.Width(s)
	if visible >= w {
		return s
	}
	pad := strings.Repeat(" ", w-visible)
	if highlight {
		return s + emptyStyle.Background(cursorLineBg).Render(pad)
	}
	return s + pad
}

// SetSize updates the dimensions.
func (cv *CompareViewer) SetSize(width, height int) {
	cv.width = width
	cv.height = height
}

// Cursor returns the current cursor row index.
func (cv CompareViewer) Cursor() int {
	return cv.cursor
}

// TotalRows returns the number of display rows.
func (cv CompareViewer) TotalRows() int {
	return len(cv.rows)
}

// SetSearch sets the search term and computes matching row indices.
// Both sides of each row are searched.
func (cv *CompareViewer) SetSearch(term string) {
	cv.searchTerm = term
	cv.searchMatches = nil
	if term == "" {
		return
	}
	for i, row := range cv.rows {
		if row.Left != nil && strings.Contains(row.Left.Text, term) {
			cv.searchMatches = append(cv.searchMatches, i)
			continue
		}
		if row.Right != nil && strings.Contains(row.Right.Text, term) {
			cv.searchMatches = append(cv.searchMatches, i)
		}
	}
	cv.jumpToNextSearch()
}

// SearchMatches returns the indices of rows matching the search term.
func (cv CompareViewer) SearchMatches() []int {
	return cv.searchMatches
}

func (cv *CompareViewer) jumpToNextSearch() {
	if len(cv.searchMatches) == 0 {
		return
	}
	for _, idx := range cv.searchMatches {
		if idx > cv.cursor {
			cv.cursor = idx
			cv.adjustScroll()
			return
		}
	}
	// Wrap around
	cv.cursor = cv.searchMatches[0]
	cv.adjustScroll()
}

func (cv *CompareViewer) jumpToPrevSearch() {
	if len(cv.searchMatches) == 0 {
		return
	}
	for i := len(cv.searchMatches) - 1; i >= 0; i-- {
		if cv.searchMatches[i] < cv.cursor {
			cv.cursor = cv.searchMatches[i]
			cv.adjustScroll()
			return
		}
	}
	// Wrap around
	cv.cursor = cv.searchMatches[len(cv.searchMatches)-1]
	cv.adjustScroll()
}

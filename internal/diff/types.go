package diff

import "strings"

// LineSequence is an ordered sequence of source lines.
type LineSequence []string

// Split breaks text into a LineSequence. Lines are separated by '\n'; a
// '\r' immediately before the separator is stripped, so CRLF input splits
// the same as LF input. A trailing newline produces no extra empty line.
func Split(text string) LineSequence {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Tag classifies a token in the edit script.
type Tag int

const (
	// Equal marks a line present in both sequences.
	Equal Tag = iota
	// Delete marks a line present only in the first sequence.
	Delete
	// Insert marks a line present only in the second sequence.
	Insert
	// ModifiedHint marks the start of a replace block whose lines are
	// close enough to be shown as edits rather than as an unrelated
	// removal and addition. It carries no text of its own.
	ModifiedHint
)

func (t Tag) String() string {
	switch t {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case ModifiedHint:
		return "modified"
	default:
		return "unknown"
	}
}

// Token is one entry in the edit script produced by Compare.
type Token struct {
	Tag  Tag
	Text string // empty for ModifiedHint
}

// Class is the display classification of a rendered cell.
type Class int

const (
	ClassNone Class = iota
	ClassRemoved
	ClassAdded
	ClassModified
)

// String returns the CSS-class-equivalent name, empty for ClassNone.
func (c Class) String() string {
	switch c {
	case ClassRemoved:
		return "removed"
	case ClassAdded:
		return "added"
	case ClassModified:
		return "modified"
	default:
		return ""
	}
}

// Cell is one side of a display row.
type Cell struct {
	Text   string
	LineNo int // 1-based line number within the cell's source
	Class  Class
}

// Row is a single visual row of the two-column view. A nil side renders
// as an empty cell.
type Row struct {
	Left  *Cell
	Right *Cell
}

// Stats summarizes a row sequence for status display.
type Stats struct {
	Added    int
	Removed  int
	Modified int
}

// Tally counts rows by classification. A modified row with both sides
// present counts once.
func Tally(rows []Row) Stats {
	var s Stats
	for _, r := range rows {
		switch {
		case r.Left != nil && r.Left.Class == ClassModified,
			r.Right != nil && r.Right.Class == ClassModified:
			s.Modified++
		case r.Left != nil && r.Left.Class == ClassRemoved:
			s.Removed++
		case r.Right != nil && r.Right.Class == ClassAdded:
			s.Added++
		}
	}
	return s
}

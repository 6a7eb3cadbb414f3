package syntax

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter applies terminal syntax highlighting to the lines of one
// comparison side. The lexer is resolved once from the display name, so a
// whole side highlights consistently.
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// ForFile creates a highlighter for the given filename with a
// terminal-friendly dark theme. When no lexer matches the name (hex
// dumps, pasted text, unknown extensions), lines pass through unchanged.
func ForFile(filename string) *Highlighter {
	lexer := lexers.Match(filename)
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return &Highlighter{
		lexer:     lexer,
		style:     styles.Get("monokai"),
		formatter: formatters.TTY256,
	}
}

// Passthrough returns a highlighter that leaves every line untouched.
func Passthrough() *Highlighter {
	return &Highlighter{}
}

// Line highlights a single line of code, returning it unchanged when no
// lexer is set or on any tokenization failure.
func (h *Highlighter) Line(line string) string {
	if h.lexer == nil {
		return line
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return line
	}

	return strings.TrimRight(buf.String(), "\n")
}

// Active reports whether a lexer was resolved for this file.
func (h *Highlighter) Active() bool {
	return h.lexer != nil
}

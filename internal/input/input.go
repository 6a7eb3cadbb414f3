package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/deparker/sidediff/internal/diff"
)

// MaxFileSize is the largest input accepted for comparison, in bytes.
const MaxFileSize = 10 << 20

const bytesPerLine = 16

// binaryExtensions marks files that are rendered as hex dumps before
// they reach the diff engine.
var binaryExtensions = map[string]bool{
	".bin": true,
	".hex": true,
}

// Source is a named, fully decoded text blob ready for comparison.
type Source struct {
	Name   string
	Text   string
	Binary bool // Text is a hex dump of the original bytes
}

// Lines splits the source text into a LineSequence.
func (s *Source) Lines() diff.LineSequence {
	return diff.Split(s.Text)
}

// FromText wraps already-decoded text, such as pasted input.
func FromText(name, text string) *Source {
	return &Source{Name: name, Text: text}
}

// Load reads a file and prepares it for diffing. Files with a recognized
// binary extension are converted to a hex dump; anything else must decode
// as valid UTF-8.
func Load(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.Size() > MaxFileSize {
		return nil, fmt.Errorf("%s: file size exceeds %dMB limit", path, MaxFileSize>>20)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return &Source{Name: name, Text: HexDump(data), Binary: true}, nil
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s appears to be binary or contains invalid characters", path)
	}
	return &Source{Name: name, Text: string(data)}, nil
}

// FromReader reads piped input under the same size limit as Load.
func FromReader(r io.Reader, name string) (*Source, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if len(data) > MaxFileSize {
		return nil, fmt.Errorf("%s: input exceeds %dMB limit", name, MaxFileSize>>20)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s appears to be binary or contains invalid characters", name)
	}
	return &Source{Name: name, Text: string(data)}, nil
}

// HexDump renders data one line per 16-byte block: an 8-digit lowercase
// hex offset, a colon and a space, then the block's bytes as hex pairs
// with no separators. The final block may be shorter.
func HexDump(data []byte) string {
	var b strings.Builder
	b.Grow(len(data)/bytesPerLine*43 + 43)
	for i := 0; i < len(data); i += bytesPerLine {
		end := min(i+bytesPerLine, len(data))
		fmt.Fprintf(&b, "%08x: %x\n", i, data[i:end])
	}
	return b.String()
}

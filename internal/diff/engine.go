package diff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// SimilarityThreshold is the character-overlap ratio at or above which a
// replace block is judged to contain edited lines rather than an
// unrelated removal and addition.
const SimilarityThreshold = 0.5

// Compare computes the edit script transforming a into b. It is pure and
// total: empty sequences are valid and yield an empty or single-sided
// script. Equal lines are never reordered.
func Compare(a, b LineSequence) []Token {
	return CompareWithThreshold(a, b, SimilarityThreshold)
}

// CompareWithThreshold is Compare with an explicit similarity threshold
// for the modified-block heuristic.
func CompareWithThreshold(a, b LineSequence, threshold float64) []Token {
	ra, rb, table := linesToRunes(a, b)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(ra, rb, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var tokens []Token
	var dels, ins []string

	// flush closes the pending replace block, annotating it with a
	// ModifiedHint when any positional line pair clears the threshold.
	flush := func() {
		if len(dels) == 0 && len(ins) == 0 {
			return
		}
		if len(dels) > 0 && len(ins) > 0 && nearMatch(dels, ins, threshold) {
			tokens = append(tokens, Token{Tag: ModifiedHint})
		}
		for _, line := range dels {
			tokens = append(tokens, Token{Tag: Delete, Text: line})
		}
		for _, line := range ins {
			tokens = append(tokens, Token{Tag: Insert, Text: line})
		}
		dels, ins = nil, nil
	}

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, line := range runesToLines(d.Text, table) {
				tokens = append(tokens, Token{Tag: Equal, Text: line})
			}
		case diffmatchpatch.DiffDelete:
			dels = append(dels, runesToLines(d.Text, table)...)
		case diffmatchpatch.DiffInsert:
			ins = append(ins, runesToLines(d.Text, table)...)
		}
	}
	flush()

	return tokens
}

// linesToRunes maps each distinct line to a unique rune so the sequences
// can be diffed one rune per line. Returns the encoded sequences and the
// rune-index-to-line table.
func linesToRunes(a, b LineSequence) ([]rune, []rune, []string) {
	table := []string{""} // rune 0 unused
	index := make(map[string]rune, len(a)+len(b))

	encode := func(lines LineSequence) []rune {
		runes := make([]rune, 0, len(lines))
		for _, line := range lines {
			r, ok := index[line]
			if !ok {
				// Skip the surrogate range, which cannot round-trip
				// through the diff output strings.
				if len(table) == 0xD800 {
					for len(table) < 0xE000 {
						table = append(table, "")
					}
				}
				r = rune(len(table))
				index[line] = r
				table = append(table, line)
			}
			runes = append(runes, r)
		}
		return runes
	}

	ra := encode(a)
	rb := encode(b)
	return ra, rb, table
}

// runesToLines decodes an encoded sequence back to its original lines.
func runesToLines(s string, table []string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, len(s))
	for _, r := range s {
		if idx := int(r); idx > 0 && idx < len(table) {
			lines = append(lines, table[idx])
		}
	}
	return lines
}

// nearMatch reports whether a replace block looks like line-level edits.
// Deleted and inserted lines are paired positionally; one close pair is
// enough to qualify the whole block.
func nearMatch(dels, ins []string, threshold float64) bool {
	n := min(len(dels), len(ins))
	for i := 0; i < n; i++ {
		if Similarity(dels[i], ins[i]) >= threshold {
			return true
		}
	}
	return false
}

// Similarity returns a character-overlap ratio in [0, 1] for two lines:
// twice the number of matched characters divided by the total length of
// both lines, over a character-level diff.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	dmp := diffmatchpatch.New()
	matched := 0
	for _, d := range dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += len(d.Text)
		}
	}
	return 2 * float64(matched) / float64(total)
}

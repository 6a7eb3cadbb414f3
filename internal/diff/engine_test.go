package diff

import (
	"reflect"
	"testing"
)

func tags(tokens []Token) []Tag {
	out := make([]Tag, len(tokens))
	for i, t := range tokens {
		out[i] = t.Tag
	}
	return out
}

// reconstruct gathers the text of tokens carrying the given tags, in order.
func reconstruct(tokens []Token, want ...Tag) LineSequence {
	var out LineSequence
	for _, t := range tokens {
		for _, w := range want {
			if t.Tag == w {
				out = append(out, t.Text)
				break
			}
		}
	}
	return out
}

func TestCompareIdentity(t *testing.T) {
	seqs := []LineSequence{
		nil,
		{"only line"},
		{"package main", "", "func main() {", "}"},
		{"a", "a", "a"},
	}

	for _, seq := range seqs {
		tokens := Compare(seq, seq)
		if len(tokens) != len(seq) {
			t.Fatalf("Compare(x, x) on %v: got %d tokens, want %d", seq, len(tokens), len(seq))
		}
		for i, tok := range tokens {
			if tok.Tag != Equal {
				t.Errorf("token %d: tag = %v, want equal", i, tok.Tag)
			}
			if tok.Text != seq[i] {
				t.Errorf("token %d: text = %q, want %q", i, tok.Text, seq[i])
			}
		}
	}
}

func TestCompareCoverage(t *testing.T) {
	a := LineSequence{"alpha", "beta", "gamma", "delta", "epsilon"}
	b := LineSequence{"alpha", "gamma", "delta prime", "zeta", "epsilon"}

	tokens := Compare(a, b)

	if got := reconstruct(tokens, Equal, Delete); !reflect.DeepEqual(got, a) {
		t.Errorf("equal+delete = %v, want %v", got, a)
	}
	if got := reconstruct(tokens, Equal, Insert); !reflect.DeepEqual(got, b) {
		t.Errorf("equal+insert = %v, want %v", got, b)
	}
}

func TestCompareEmptyBoundaries(t *testing.T) {
	if tokens := Compare(nil, nil); len(tokens) != 0 {
		t.Errorf("Compare(nil, nil) = %v, want empty", tokens)
	}

	tokens := Compare(LineSequence{"x"}, nil)
	if len(tokens) != 1 || tokens[0].Tag != Delete || tokens[0].Text != "x" {
		t.Errorf("Compare([x], []) = %v, want single delete of x", tokens)
	}

	tokens = Compare(nil, LineSequence{"y"})
	if len(tokens) != 1 || tokens[0].Tag != Insert || tokens[0].Text != "y" {
		t.Errorf("Compare([], [y]) = %v, want single insert of y", tokens)
	}
}

func TestComparePureAppend(t *testing.T) {
	tokens := Compare(LineSequence{"a", "b"}, LineSequence{"a", "b", "c"})
	want := []Token{
		{Tag: Equal, Text: "a"},
		{Tag: Equal, Text: "b"},
		{Tag: Insert, Text: "c"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestComparePureRemoval(t *testing.T) {
	tokens := Compare(LineSequence{"a", "b", "c"}, LineSequence{"a", "c"})
	want := []Token{
		{Tag: Equal, Text: "a"},
		{Tag: Delete, Text: "b"},
		{Tag: Equal, Text: "c"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("tokens = %v, want %v", tokens, want)
	}
}

func TestCompareNearMatchBlock(t *testing.T) {
	tokens := Compare(LineSequence{"int x = 1;"}, LineSequence{"int x = 2;"})
	want := []Tag{ModifiedHint, Delete, Insert}
	if !reflect.DeepEqual(tags(tokens), want) {
		t.Fatalf("tags = %v, want %v", tags(tokens), want)
	}
	if tokens[0].Text != "" {
		t.Errorf("hint text = %q, want empty", tokens[0].Text)
	}
}

func TestCompareUnrelatedReplace(t *testing.T) {
	tokens := Compare(LineSequence{"foo"}, LineSequence{"completely different content"})
	want := []Tag{Delete, Insert}
	if !reflect.DeepEqual(tags(tokens), want) {
		t.Errorf("tags = %v, want %v (no modified hint)", tags(tokens), want)
	}
}

func TestCompareUnequalBlockLengths(t *testing.T) {
	a := LineSequence{"ctx", "value := compute(1)", "value2 := compute(2)", "ctx2"}
	b := LineSequence{"ctx", "value := compute(9)", "ctx2"}

	tokens := Compare(a, b)
	want := []Tag{Equal, ModifiedHint, Delete, Delete, Insert, Equal}
	if !reflect.DeepEqual(tags(tokens), want) {
		t.Errorf("tags = %v, want %v", tags(tokens), want)
	}
}

func TestCompareEqualLinesNeverReordered(t *testing.T) {
	a := LineSequence{"one", "two", "three", "four"}
	b := LineSequence{"zero", "one", "three", "two", "four"}

	tokens := Compare(a, b)

	// Removing non-equal tokens must leave the equal lines of both
	// inputs in their original relative order.
	equals := reconstruct(tokens, Equal)
	ai, bi := 0, 0
	for _, line := range equals {
		for ai < len(a) && a[ai] != line {
			ai++
		}
		for bi < len(b) && b[bi] != line {
			bi++
		}
		if ai == len(a) || bi == len(b) {
			t.Fatalf("equal line %q out of order (equals=%v)", line, equals)
		}
		ai++
		bi++
	}
}

func TestCompareDeterministic(t *testing.T) {
	a := LineSequence{"m", "n", "o", "p", "q"}
	b := LineSequence{"m", "o", "n", "q", "r"}

	first := Compare(a, b)
	for i := 0; i < 10; i++ {
		if again := Compare(a, b); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d produced a different script: %v vs %v", i, again, first)
		}
	}
}

func TestCompareModifiedHintNeverTouchesEqualLines(t *testing.T) {
	a := LineSequence{"same", "old body", "same tail"}
	b := LineSequence{"same", "new body", "same tail"}

	tokens := Compare(a, b)
	for i, tok := range tokens {
		if tok.Tag == Equal && (tok.Text != "same" && tok.Text != "same tail") {
			t.Errorf("token %d: unexpected equal line %q", i, tok.Text)
		}
	}
	if got := reconstruct(tokens, Equal); len(got) != 2 {
		t.Errorf("equal lines = %v, want the two unchanged lines", got)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		lo   float64
		hi   float64
	}{
		{"", "", 1, 1},
		{"same", "same", 1, 1},
		{"int x = 1;", "int x = 2;", 0.8, 1},
		{"foo", "completely different content", 0, 0.4},
		{"abcd", "wxyz", 0, 0.4},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if got < tt.lo || got > tt.hi {
			t.Errorf("Similarity(%q, %q) = %v, want in [%v, %v]", tt.a, tt.b, got, tt.lo, tt.hi)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want LineSequence
	}{
		{"empty", "", nil},
		{"no trailing newline", "a\nb", LineSequence{"a", "b"}},
		{"trailing newline", "a\nb\n", LineSequence{"a", "b"}},
		{"only newline", "\n", LineSequence{""}},
		{"blank interior line", "a\n\nb\n", LineSequence{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", LineSequence{"a", "b"}},
		{"mixed endings", "a\r\nb\nc", LineSequence{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Split(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	var a, bb LineSequence
	for i := 0; i < 2000; i++ {
		a = append(a, "line with some shared content")
		if i%7 == 0 {
			bb = append(bb, "line with some changed content")
		} else {
			bb = append(bb, "line with some shared content")
		}
	}
	b.ResetTimer()
	for b.Loop() {
		Compare(a, bb)
	}
}

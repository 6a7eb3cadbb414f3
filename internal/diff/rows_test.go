package diff

import "testing"

func TestRowsEqual(t *testing.T) {
	rows := Rows([]Token{
		{Tag: Equal, Text: "a"},
		{Tag: Equal, Text: "b"},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for i, r := range rows {
		if r.Left == nil || r.Right == nil {
			t.Fatalf("row %d: equal row must have both sides", i)
		}
		if r.Left.Class != ClassNone || r.Right.Class != ClassNone {
			t.Errorf("row %d: classes = %v/%v, want none/none", i, r.Left.Class, r.Right.Class)
		}
		if r.Left.LineNo != i+1 || r.Right.LineNo != i+1 {
			t.Errorf("row %d: line numbers = %d/%d, want %d/%d", i, r.Left.LineNo, r.Right.LineNo, i+1, i+1)
		}
	}
}

func TestRowsPureDeleteAndInsert(t *testing.T) {
	rows := Rows([]Token{
		{Tag: Delete, Text: "gone"},
		{Tag: Insert, Text: "fresh"},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if rows[0].Left == nil || rows[0].Right != nil {
		t.Fatal("delete row: want left side only")
	}
	if rows[0].Left.Class != ClassRemoved {
		t.Errorf("delete class = %v, want removed", rows[0].Left.Class)
	}

	if rows[1].Right == nil || rows[1].Left != nil {
		t.Fatal("insert row: want right side only")
	}
	if rows[1].Right.Class != ClassAdded {
		t.Errorf("insert class = %v, want added", rows[1].Right.Class)
	}
}

func TestRowsModifiedBlockPairsPositionally(t *testing.T) {
	rows := Rows([]Token{
		{Tag: ModifiedHint},
		{Tag: Delete, Text: "old 1"},
		{Tag: Delete, Text: "old 2"},
		{Tag: Insert, Text: "new 1"},
		{Tag: Insert, Text: "new 2"},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	for i, r := range rows {
		if r.Left == nil || r.Right == nil {
			t.Fatalf("row %d: want both sides populated", i)
		}
		if r.Left.Class != ClassModified || r.Right.Class != ClassModified {
			t.Errorf("row %d: classes = %v/%v, want modified/modified", i, r.Left.Class, r.Right.Class)
		}
	}
	if rows[0].Left.Text != "old 1" || rows[0].Right.Text != "new 1" {
		t.Errorf("row 0 = %q/%q, want old 1/new 1", rows[0].Left.Text, rows[0].Right.Text)
	}
	if rows[1].Left.Text != "old 2" || rows[1].Right.Text != "new 2" {
		t.Errorf("row 1 = %q/%q, want old 2/new 2", rows[1].Left.Text, rows[1].Right.Text)
	}
}

func TestRowsModifiedBlockUnequalLengths(t *testing.T) {
	rows := Rows([]Token{
		{Tag: ModifiedHint},
		{Tag: Delete, Text: "old 1"},
		{Tag: Delete, Text: "old 2"},
		{Tag: Insert, Text: "new 1"},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	// Excess delete keeps the modified class against a blank right side.
	if rows[1].Right != nil {
		t.Error("row 1: want nil right side")
	}
	if rows[1].Left == nil || rows[1].Left.Class != ClassModified {
		t.Error("row 1: excess delete should stay modified")
	}
}

func TestRowsLineNumbersAdvancePerSide(t *testing.T) {
	rows := Rows([]Token{
		{Tag: Equal, Text: "ctx"},
		{Tag: Delete, Text: "gone"},
		{Tag: Equal, Text: "ctx2"},
		{Tag: Insert, Text: "fresh"},
	})

	if got := rows[1].Left.LineNo; got != 2 {
		t.Errorf("deleted line number = %d, want 2", got)
	}
	if got := rows[2].Left.LineNo; got != 3 {
		t.Errorf("left ctx2 line number = %d, want 3", got)
	}
	if got := rows[2].Right.LineNo; got != 2 {
		t.Errorf("right ctx2 line number = %d, want 2", got)
	}
	if got := rows[3].Right.LineNo; got != 3 {
		t.Errorf("inserted line number = %d, want 3", got)
	}
}

func TestTally(t *testing.T) {
	rows := Rows(Compare(
		LineSequence{"same", "int x = 1;", "trailing"},
		LineSequence{"same", "int x = 2;", "trailing", "appended"},
	))

	stats := Tally(rows)
	if stats.Modified == 0 {
		t.Error("expected at least one modified row")
	}
	if stats.Added != 1 {
		t.Errorf("added = %d, want 1", stats.Added)
	}
	if stats.Removed != 0 {
		t.Errorf("removed = %d, want 0", stats.Removed)
	}
}

func BenchmarkRows(b *testing.B) {
	tokens := []Token{
		{Tag: Equal, Text: "ctx"},
		{Tag: ModifiedHint},
		{Tag: Delete, Text: "old"},
		{Tag: Insert, Text: "new"},
		{Tag: Equal, Text: "ctx2"},
		{Tag: Insert, Text: "tail"},
	}
	b.ResetTimer()
	for b.Loop() {
		Rows(tokens)
	}
}

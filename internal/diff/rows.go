package diff

// Rows projects an edit script onto the two-column view, one Row per
// visual table row. Equal tokens fill both sides; plain deletions and
// insertions leave the opposite side nil. A ModifiedHint gathers the
// delete and insert runs that follow it and pairs them positionally,
// with both sides classed as modified; when the runs differ in length,
// the excess lines keep the modified class against a nil opposite side.
func Rows(tokens []Token) []Row {
	rows := make([]Row, 0, len(tokens))
	leftNo, rightNo := 0, 0

	for i := 0; i < len(tokens); {
		switch t := tokens[i]; t.Tag {
		case Equal:
			leftNo++
			rightNo++
			rows = append(rows, Row{
				Left:  &Cell{Text: t.Text, LineNo: leftNo},
				Right: &Cell{Text: t.Text, LineNo: rightNo},
			})
			i++

		case Delete:
			leftNo++
			rows = append(rows, Row{
				Left: &Cell{Text: t.Text, LineNo: leftNo, Class: ClassRemoved},
			})
			i++

		case Insert:
			rightNo++
			rows = append(rows, Row{
				Right: &Cell{Text: t.Text, LineNo: rightNo, Class: ClassAdded},
			})
			i++

		case ModifiedHint:
			var dels, ins []string
			j := i + 1
			for j < len(tokens) && tokens[j].Tag == Delete {
				dels = append(dels, tokens[j].Text)
				j++
			}
			for j < len(tokens) && tokens[j].Tag == Insert {
				ins = append(ins, tokens[j].Text)
				j++
			}
			for k := 0; k < max(len(dels), len(ins)); k++ {
				var row Row
				if k < len(dels) {
					leftNo++
					row.Left = &Cell{Text: dels[k], LineNo: leftNo, Class: ClassModified}
				}
				if k < len(ins) {
					rightNo++
					row.Right = &Cell{Text: ins[k], LineNo: rightNo, Class: ClassModified}
				}
				rows = append(rows, row)
			}
			i = j

		default:
			i++
		}
	}

	return rows
}

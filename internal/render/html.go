package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/deparker/sidediff/internal/diff"
)

// tableHTML is the two-column comparison table. Each Row becomes one
// <tr> with a line-number gutter and a content cell per side; a nil side
// renders as empty cells, never as an omitted row.
const tableHTML = `<style>
.diff-container { font-family: 'Monaco', 'Consolas', monospace; }
.diff-table { width: 100%; border-collapse: collapse; border: 1px solid #ddd; }
.diff-table td { padding: 5px 10px; vertical-align: top; border: 1px solid #ddd; }
.line-num { width: 50px; background-color: #f8f9fa; color: #6c757d; text-align: right; user-select: none; }
.added { background-color: #e6ffe6; }
.removed { background-color: #ffe6e6; }
.modified { background-color: #fff5b1; }
.diff-header { background-color: #f8f9fa; font-weight: bold; text-align: center; padding: 10px; border-bottom: 2px solid #ddd; }
</style>
<div class="diff-container">
<table class="diff-table">
<tr><th colspan="2" class="diff-header">{{.LabelA}}</th><th colspan="2" class="diff-header">{{.LabelB}}</th></tr>
{{range .Rows}}<tr>{{template "cell" .Left}}{{template "cell" .Right}}</tr>
{{end}}</table>
</div>
{{define "cell"}}{{if .}}<td class="line-num">{{.LineNo}}</td><td{{with .Class.String}} class="{{.}}"{{end}}>{{.Text}}</td>{{else}}<td class="line-num"></td><td></td>{{end}}{{end}}`

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.LabelA}} vs {{.LabelB}}</title>
</head>
<body>
{{.Table}}
</body>
</html>
`

var (
	tableTmpl = template.Must(template.New("table").Parse(tableHTML))
	pageTmpl  = template.Must(template.New("page").Parse(pageHTML))
)

type tableData struct {
	LabelA, LabelB string
	Rows           []diff.Row
}

// Table renders the row sequence as an embeddable HTML fragment with the
// two source labels as column headers.
func Table(rows []diff.Row, labelA, labelB string) (string, error) {
	var b strings.Builder
	if err := tableTmpl.Execute(&b, tableData{labelA, labelB, rows}); err != nil {
		return "", fmt.Errorf("rendering diff table: %w", err)
	}
	return b.String(), nil
}

// Page renders the row sequence as a complete standalone HTML document.
func Page(rows []diff.Row, labelA, labelB string) (string, error) {
	table, err := Table(rows, labelA, labelB)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	err = pageTmpl.Execute(&b, struct {
		LabelA, LabelB string
		Table          template.HTML
	}{labelA, labelB, template.HTML(table)})
	if err != nil {
		return "", fmt.Errorf("rendering report page: %w", err)
	}
	return b.String(), nil
}

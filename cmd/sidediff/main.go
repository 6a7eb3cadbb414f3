package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/deparker/sidediff/internal/diff"
	"github.com/deparker/sidediff/internal/input"
	"github.com/deparker/sidediff/internal/render"
	"github.com/deparker/sidediff/internal/ui"
)

func main() {
	labelA := flag.String("label-a", "", "display name for the first input")
	labelB := flag.String("label-b", "", "display name for the second input")
	htmlOut := flag.Bool("html", false, "print an HTML report to stdout instead of launching the viewer")
	outPath := flag.String("o", "", "write an HTML report to the given path and exit")
	threshold := flag.Float64("threshold", diff.SimilarityThreshold,
		"similarity ratio above which a replace block is shown as modified")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: sidediff [flags] <fileA> <fileB>  (use - for stdin on one side)")
		os.Exit(2)
	}

	if flag.Arg(0) == "-" && flag.Arg(1) == "-" {
		fmt.Fprintln(os.Stderr, "Error: only one side may read from stdin")
		os.Exit(1)
	}

	srcA, err := loadArg(flag.Arg(0), "stdin (original)")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	srcB, err := loadArg(flag.Arg(1), "stdin (modified)")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	nameA := srcA.Name
	if *labelA != "" {
		nameA = *labelA
	}
	nameB := srcB.Name
	if *labelB != "" {
		nameB = *labelB
	}

	tokens := diff.CompareWithThreshold(srcA.Lines(), srcB.Lines(), *threshold)
	rows := diff.Rows(tokens)

	if *htmlOut || *outPath != "" {
		page, err := render.Page(rows, nameA, nameB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if *outPath != "" {
			if err := os.WriteFile(*outPath, []byte(page), 0644); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		fmt.Print(page)
		return
	}

	model := ui.NewRootModel(rows, nameA, nameB, 80, 24)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadArg loads one comparison side: a file path, or "-" for stdin.
func loadArg(arg, stdinLabel string) (*input.Source, error) {
	if arg == "-" {
		return input.FromReader(os.Stdin, stdinLabel)
	}
	return input.Load(arg)
}

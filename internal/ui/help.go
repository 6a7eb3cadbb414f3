package ui

import "github.com/charmbracelet/lipgloss"

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("12")).
	Padding(1, 2)

// RenderHelp returns the help overlay text.
func RenderHelp() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Render("sidediff — Keybindings")

	help := title + "\n\n" +
		"Navigation\n" +
		"  j/k         Move down/up\n" +
		"  G           Jump to bottom\n" +
		"  g           Jump to top\n" +
		"  Ctrl+d/u    Half-page down/up\n" +
		"  Ctrl+f/b    Full-page down/up\n" +
		"  [/]         Jump to prev/next change block\n" +
		"\n" +
		"Search\n" +
		"  /           Search in both columns\n" +
		"  n/N         Next/prev search result\n" +
		"\n" +
		"Actions\n" +
		"  e           Export HTML report (file/clipboard/tmux)\n" +
		"  q           Quit\n" +
		"  ?           Toggle this help\n" +
		"\n" +
		"Press ? or Esc to close"

	return helpStyle.Render(help)
}

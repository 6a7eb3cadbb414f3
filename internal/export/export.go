package export

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// TargetKind identifies the type of report destination.
type TargetKind int

const (
	TargetFile TargetKind = iota
	TargetClipboard
	TargetTmuxBuffer
)

// Target represents a destination for the HTML comparison report.
type Target struct {
	Kind  TargetKind
	Label string
}

// DetectTargets discovers available report destinations.
// tmuxEnv is the value of $TMUX (empty outside tmux).
func DetectTargets(tmuxEnv string) []Target {
	targets := []Target{
		{Kind: TargetFile, Label: "Write HTML report to file"},
		{Kind: TargetClipboard, Label: "Copy HTML to system clipboard"},
	}
	if tmuxEnv != "" {
		targets = append(targets, Target{
			Kind:  TargetTmuxBuffer,
			Label: "Load into tmux paste buffer",
		})
	}
	return targets
}

// Deliver sends the report content to the target. path applies to file
// targets only; empty means a timestamped default. Returns a
// human-readable status message on success.
func Deliver(target Target, content, path string) (string, error) {
	switch target.Kind {
	case TargetFile:
		return deliverToFile(content, path)
	case TargetClipboard:
		return deliverToClipboard(content)
	case TargetTmuxBuffer:
		return deliverToTmuxBuffer(content)
	default:
		return "", fmt.Errorf("unknown target kind: %v", target.Kind)
	}
}

// DefaultReportPath generates a timestamped path for the HTML report.
func DefaultReportPath() string {
	filename := fmt.Sprintf("sidediff-%d.html", time.Now().Unix())
	return filepath.Join(os.TempDir(), filename)
}

func deliverToFile(content, path string) (string, error) {
	if path == "" {
		path = DefaultReportPath()
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return fmt.Sprintf("Report written to %s", path), nil
}

func deliverToClipboard(content string) (string, error) {
	if err := clipboard.WriteAll(content); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return "Report copied to system clipboard.", nil
}

// deliverToTmuxBuffer loads content into the tmux paste buffer.
func deliverToTmuxBuffer(content string) (string, error) {
	cmd := exec.Command("tmux", "load-buffer", "-")
	cmd.Stdin = strings.NewReader(content)

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to load tmux buffer: %w", err)
	}
	return "Report loaded into tmux paste buffer. Use prefix + ] to paste.", nil
}

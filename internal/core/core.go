package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"fixand/internal/rewrite"
)

// Config holds the per-run switches set from the command line.
type Config struct {
	DryRun bool // report what would change without writing
	Stdout bool // print the transformed content instead of writing
}

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF00"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF"))
)

// Run rewrites the file at path and reports the outcome on out.
// I/O errors are returned untouched for the caller to report.
func Run(path string, cfg Config, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	rw := rewrite.New(rewrite.WithLogger(logger))

	res, err := rewrite.RewriteFile(path, rw, rewrite.FileOptions{
		DryRun: cfg.DryRun || cfg.Stdout,
	})
	if err != nil {
		return err
	}

	logger.Info("processed file",
		zap.String("path", path),
		zap.Int("rewrites", res.Rewrites),
		zap.Int("skipped", res.Skipped),
	)

	switch {
	case cfg.Stdout:
		_, err = io.WriteString(out, res.Content)
	case cfg.DryRun && res.Changed():
		_, err = fmt.Fprintf(out, "%s %s (%d rewrites)\n", infoStyle.Render("Would fix"), pathStyle.Render(path), res.Rewrites)
	case cfg.DryRun:
		_, err = fmt.Fprintf(out, "%s %s\n", infoStyle.Render("No changes:"), pathStyle.Render(path))
	default:
		_, err = fmt.Fprintf(out, "%s %s\n", okStyle.Render("Fixed"), pathStyle.Render(path))
	}
	return err
}

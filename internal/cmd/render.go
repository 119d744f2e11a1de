package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schemadump/schemadump/internal/output"
	"github.com/schemadump/schemadump/internal/process"
)

type Render struct {
	Snapshot string `arg:"" help:"Path to a captured snapshot JSON file" type:"existingfile"`
	Output   string `help:"Output directory for generated artifacts" default:"output" env:"SCHEMADUMP_OUTPUT"`
	Indent   int    `help:"Spaces per indentation level in generated files" default:"4" env:"SCHEMADUMP_INDENT"`
}

// Run re-emits every artifact offline. Without an attached process the
// build number in info.json is zero.
func (r *Render) Run(logger *slog.Logger) error {
	results, err := output.Load(r.Snapshot)
	if err != nil {
		return err
	}

	logger.Info("Rendering snapshot offline", "snapshot", r.Snapshot)

	if err := os.MkdirAll(r.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return results.DumpAll(logger, process.Detached(), r.Output, r.Indent)
}

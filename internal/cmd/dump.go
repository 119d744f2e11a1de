package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/schemadump/schemadump/internal/output"
	"github.com/schemadump/schemadump/internal/process"
)

type Dump struct {
	Snapshot string `arg:"" help:"Path to a captured snapshot JSON file" type:"existingfile"`
	Output   string `help:"Output directory for generated artifacts" default:"output" env:"SCHEMADUMP_OUTPUT"`
	Indent   int    `help:"Spaces per indentation level in generated files" default:"4" env:"SCHEMADUMP_INDENT"`
	Pid      int    `help:"Process id of the target; takes precedence over --process" env:"SCHEMADUMP_PID"`
	Process  string `help:"Executable name of the target process" env:"SCHEMADUMP_PROCESS"`
}

// Run is called by Kong when the dump command is executed.
func (d *Dump) Run(logger *slog.Logger) error {
	results, err := output.Load(d.Snapshot)
	if err != nil {
		return err
	}

	var handle process.Handle
	switch {
	case d.Pid > 0:
		handle, err = process.Open(d.Pid)
	case d.Process != "":
		handle, err = process.OpenByName(d.Process)
	default:
		return errors.New("either --pid or --process must be given")
	}
	if err != nil {
		return fmt.Errorf("attach to target process: %w", err)
	}
	defer handle.Close()

	logger.Info("Attached to target process", "pid", d.Pid, "process", d.Process)

	if err := os.MkdirAll(d.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return results.DumpAll(logger, handle, d.Output, d.Indent)
}

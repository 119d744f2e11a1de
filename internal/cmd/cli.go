// Package cmd defines the schemadump command tree.
package cmd

// CLI is the root command structure parsed by kong.
type CLI struct {
	Config string  `help:"Path to a config file (JSON, YAML or TOML)" env:"SCHEMADUMP_CONFIG"`
	Log    LogOpts `embed:"" prefix:"log."`

	Dump      Dump          `cmd:"" help:"Attach to the target process and write every artifact for a captured snapshot"`
	Render    Render        `cmd:"" help:"Re-emit artifacts from a saved snapshot without touching a live process"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

// LogOpts groups the logging flags shared by every command.
type LogOpts struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"SCHEMADUMP_LOG_LEVEL"`
	File  string `help:"Optional log file path" env:"SCHEMADUMP_LOG_FILE"`
}

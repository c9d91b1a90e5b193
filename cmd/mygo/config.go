package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mygo/internal/project"
)

// loadConfig resolves mygo.toml, MYGO_* variables and explicitly set flags.
// Flags left at their defaults do not override the lower layers.
func loadConfig(cmd *cobra.Command, startDir string) (project.Config, error) {
	var o project.Overrides
	flags := cmd.Flags()
	persistent := cmd.Root().PersistentFlags()

	if flags.Lookup("format") != nil && flags.Changed("format") {
		v, err := flags.GetString("format")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get format flag: %w", err)
		}
		o.Format = &v
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		v, err := flags.GetInt("jobs")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get jobs flag: %w", err)
		}
		o.Jobs = &v
	}
	if flags.Lookup("keep-trivia") != nil && flags.Changed("keep-trivia") {
		v, err := flags.GetBool("keep-trivia")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get keep-trivia flag: %w", err)
		}
		o.KeepTrivia = &v
	}
	if flags.Lookup("nfc") != nil && flags.Changed("nfc") {
		v, err := flags.GetBool("nfc")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get nfc flag: %w", err)
		}
		o.NFC = &v
	}
	if flags.Lookup("cache") != nil && flags.Changed("cache") {
		v, err := flags.GetBool("cache")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get cache flag: %w", err)
		}
		o.Cache = &v
	}
	if persistent.Changed("max-diagnostics") {
		v, err := persistent.GetInt("max-diagnostics")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		o.MaxDiagnostics = &v
	}
	if persistent.Changed("trace-level") {
		v, err := persistent.GetString("trace-level")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
		o.TraceLevel = &v
	}
	if persistent.Changed("trace") {
		v, err := persistent.GetString("trace")
		if err != nil {
			return project.Config{}, fmt.Errorf("failed to get trace flag: %w", err)
		}
		o.TraceOutput = &v
	}

	cfg, path, err := project.Resolve(startDir, o)
	if err != nil {
		if path != "" {
			return project.Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		return project.Config{}, err
	}
	return cfg, nil
}

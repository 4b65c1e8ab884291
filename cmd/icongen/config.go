package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"

	"github.com/caarlos0/env/v11"
	"github.com/esimov/icongen/utils"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// allIcons selects every icon of the catalog.
const allIcons = "all"

// Config holds the generator settings. The environment provides the defaults,
// the command line flags override them.
type Config struct {
	Icon    string `env:"ICONGEN_ICON"    envDefault:"all"`
	OutDir  string `env:"ICONGEN_OUT_DIR" envDefault:"."`
	Font    string `env:"ICONGEN_FONT"`
	Workers int    `env:"ICONGEN_WORKERS"`
	Verbose bool   `env:"ICONGEN_VERBOSE"`
}

// parseConfig reads the environment, then the command line arguments.
// names lists the icons the -icon flag may select.
func parseConfig(args []string, names []string, output io.Writer) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, HelpBanner, Version)
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.Icon, "icon", cfg.Icon, fmt.Sprintf("Icon to generate: %v or %s", names, allIcons))
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Destination directory")
	fs.StringVar(&cfg.Font, "font", cfg.Font, "Label font file or URL")
	fs.IntVar(&cfg.Workers, "conc", cfg.Workers, "Number of icons to generate concurrently")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "List every written file")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Icon != allIcons && !utils.Contains(names, cfg.Icon) {
		return cfg, fmt.Errorf("unknown icon %q", cfg.Icon)
	}
	// Limit the concurrently running workers to maxWorkers.
	if cfg.Workers <= 0 || cfg.Workers > maxWorkers {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}

// selected returns the icon names the configuration asks for.
func (c Config) selected(names []string) []string {
	if c.Icon == allIcons {
		return names
	}
	return []string{c.Icon}
}

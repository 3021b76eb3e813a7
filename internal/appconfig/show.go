package appconfig

import (
	"fmt"
	"io"

	"github.com/k0kubun/pp"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	if cfg == nil {
		fmt.Fprintf(out, "  Debug:     %v\n", fallback.Debug)
		fmt.Fprintf(out, "  JSON Mode: %v\n", fallback.JSONMode)
		fmt.Fprintf(out, "  Log File:  %s\n", fallback.LogFilePath())
		return
	}

	fmt.Fprintf(out, "  Debug:     %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode: %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Log File:  %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Models:    %d\n", len(cfg.Models))
	for _, m := range cfg.Models {
		template := m.Template
		if template == "" {
			template = "auto"
		}
		fmt.Fprintf(out, "    - %s (provider=%s model=%s template=%s)\n", m.DisplayName(), m.Provider, m.Model, template)
	}

	if cfg.Debug {
		fmt.Fprintln(out)
		pp.Fprintln(out, cfg)
	}
}

// Package main provides the ontomap binary entry point. Ontomap computes
// ancestor and descendant mappings between ontology terms (tissues and cell
// types) for the data portal's filtering UI and API.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontomap"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		outputDir  string
		logLevel   string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "ontomap",
		Short: "Ontology ancestor/descendant mapping generator",
		Long: `Ontomap extracts bounded subgraphs of UBERON and CL from hand-curated
anchor categories, then computes, for every tissue and cell type in the
portal's production corpus, its full ancestor set and a tier-restricted
descendant set.

The generated mapping files are consumed by the portal backend (ancestor
mappings, for result-set filtering) and frontend (descendant mappings, for
cross-panel filter restriction).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, outputDir, logLevel, watch)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run when config or ontology files change")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

// parseLogLevel maps the flag value to a slog level, defaulting to info.
func parseLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

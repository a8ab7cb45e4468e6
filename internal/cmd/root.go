package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codegauge",
	Short: "Heuristic code quality scoring for uploaded source files",
	Long: `Codegauge scans source files with per-language pattern catalogs and
produces deterministic quality, performance, best-practices and
maintainability scores (0-100), plus the findings behind them.

Supported languages: C++, Java, Go, Python, JavaScript/TypeScript; anything
else falls back to a generic scanner with language-agnostic rules.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

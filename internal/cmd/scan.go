package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/codegauge/codegauge/internal/codestats"
	"github.com/codegauge/codegauge/internal/config"
	"github.com/codegauge/codegauge/internal/engine"
	"github.com/codegauge/codegauge/internal/ignore"
	"github.com/codegauge/codegauge/internal/metadata"
	"github.com/codegauge/codegauge/internal/progress"
	"github.com/codegauge/codegauge/internal/report"
	"github.com/codegauge/codegauge/internal/rules"
	"github.com/codegauge/codegauge/internal/types"
)

var (
	scanFormat      string
	scanOutput      string
	scanExcludes    []string
	scanLanguage    string
	scanRulesDir    string
	scanFailUnder   int
	scanNoCodeStats bool
	scanNoGitignore bool
	scanPretty      bool
	scanLogLevel    string
	scanLogFormat   string
	scanLogFile     string
)

var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Score source files against the pattern catalogs",
	Long: `Scan analyzes each given file (directories are walked recursively),
routes it to a language profile, evaluates the language's rule catalog and
reports quality, performance, best-practices and maintainability scores
together with the findings behind them.

The scan is deterministic: the same content and catalogs always produce the
same output.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runScan,
}

func init() {
	settings := config.LoadSettings()

	scanFormat = settings.Format
	scanPretty = settings.PrettyPrint
	scanExcludes = settings.ExcludePatterns
	scanRulesDir = settings.RulesDir
	scanFailUnder = settings.FailUnder
	scanLogFormat = settings.LogFormat
	scanLogFile = settings.LogFile

	setupOutputFlags(scanCmd, &scanFormat, &scanOutput)
	scanCmd.Flags().StringSliceVar(&scanExcludes, "exclude", scanExcludes,
		"Glob patterns to exclude (doublestar syntax, e.g. '**/vendor/**')")
	scanCmd.Flags().StringVarP(&scanLanguage, "language", "l", "",
		"Language hint overriding extension and content detection")
	scanCmd.Flags().StringVar(&scanRulesDir, "rules-dir", scanRulesDir,
		"Directory with additional YAML rule catalogs")
	scanCmd.Flags().IntVar(&scanFailUnder, "fail-under", scanFailUnder,
		"Exit with code 2 when any sub-score falls below this value")
	scanCmd.Flags().BoolVar(&scanNoCodeStats, "no-code-stats", settings.NoCodeStats,
		"Skip code statistics collection")
	scanCmd.Flags().BoolVar(&scanNoGitignore, "no-gitignore", false,
		"Do not honor .gitignore files when walking directories")
	scanCmd.Flags().BoolVar(&scanPretty, "pretty", scanPretty,
		"Indent JSON output")
	scanCmd.Flags().StringVar(&scanLogLevel, "log-level", "",
		"Log level: debug, info, warn, error")
	scanCmd.Flags().StringVar(&scanLogFormat, "log-format", scanLogFormat,
		"Log format: text or json")
	scanCmd.Flags().StringVar(&scanLogFile, "log-file", scanLogFile,
		"Write logs to file instead of stderr")

	rootCmd.AddCommand(scanCmd)
}

// fileResult pairs a scanned path with its analysis record.
type fileResult struct {
	File string `json:"file"`
	types.ScanResult
}

type scanSummary struct {
	Files     int            `json:"files"`
	Languages map[string]int `json:"languages"`
}

// scanReport is the output envelope of the scan command.
type scanReport struct {
	Meta      *metadata.ScanMeta `json:"meta"`
	Results   []fileResult       `json:"results"`
	Summary   scanSummary        `json:"summary"`
	CodeStats *codestats.Stats   `json:"code_stats,omitempty"`
}

func (r *scanReport) ToJSON() interface{} { return r }

func (r *scanReport) ToText(w io.Writer) {
	renderer := report.NewConsoleRenderer()
	for _, fr := range r.Results {
		renderer.Render(w, fr.File, fr.ScanResult)
	}
	fmt.Fprintf(w, "%d file(s) scanned\n", r.Summary.Files)
}

func runScan(cmd *cobra.Command, args []string) {
	settings := config.LoadSettings()
	if scanLogLevel != "" {
		level, err := config.ParseLogLevel(scanLogLevel)
		if err != nil {
			fatal("invalid log level", "level", scanLogLevel)
		}
		settings.LogLevel = level
	}
	settings.LogFormat = scanLogFormat
	settings.LogFile = scanLogFile
	closer, err := settings.SetupLogging()
	if err != nil {
		fatal("failed to set up logging", "error", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	set, err := rules.LoadEmbedded()
	if err != nil {
		fatal("failed to load rule catalogs", "error", err)
	}
	if scanRulesDir != "" {
		if err := set.LoadExternal(scanRulesDir); err != nil {
			fatal("failed to load external rule catalogs", "dir", scanRulesDir, "error", err)
		}
	}
	eng, err := engine.New(set)
	if err != nil {
		fatal("failed to initialize engine", "error", err)
	}

	files, err := collectFiles(args, scanExcludes, !scanNoGitignore)
	if err != nil {
		fatal("failed to collect files", "error", err)
	}
	if len(files) == 0 {
		fatal("no files to scan", "paths", strings.Join(args, ", "))
	}
	slog.Info("scanning", "files", len(files))

	rep := &scanReport{
		Meta:    metadata.NewScanMeta(args[0]),
		Summary: scanSummary{Languages: map[string]int{}},
	}
	var collector *codestats.Collector
	if !scanNoCodeStats {
		collector = codestats.NewCollector()
	}

	prog := progress.New(len(files))
	for _, file := range files {
		prog.Step(file)
		content, err := os.ReadFile(file)
		if err != nil {
			slog.Warn("skipping unreadable file", "file", file, "error", err)
			continue
		}
		result := eng.Scan(types.ScanRequest{
			Filename:     file,
			Content:      content,
			LanguageHint: scanLanguage,
		})
		rep.Results = append(rep.Results, fileResult{File: file, ScanResult: result})
		rep.Summary.Files++
		rep.Summary.Languages[result.Language]++
		if collector != nil {
			collector.ProcessFile(file, content)
		}
	}
	prog.Done()
	if collector != nil {
		rep.CodeStats = collector.Stats()
	}

	if scanFormat == "json" && !scanPretty {
		outputCompactJSON(rep, scanOutput)
	} else {
		OutputToFile(rep, scanFormat, scanOutput)
	}

	if scanFailUnder > 0 && belowThreshold(rep.Results, scanFailUnder) {
		slog.Warn("score below threshold", "fail_under", scanFailUnder)
		os.Exit(2)
	}
}

// collectFiles expands the given paths into a sorted list of regular files,
// walking directories recursively and applying exclude patterns. Hidden
// directories are skipped during walks; .gitignore files apply to their
// directory and everything below it when useGitignore is set.
func collectFiles(paths []string, excludes []string, useGitignore bool) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			if !excluded(p, excludes) {
				files = append(files, p)
			}
			continue
		}

		matcher := ignore.NewMatcher()
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				if useGitignore {
					if path != p && matcher.Match(path) {
						return filepath.SkipDir
					}
					matcher.LoadDir(path)
				}
				return nil
			}
			if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") || excluded(path, excludes) {
				return nil
			}
			if useGitignore && matcher.Match(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

// excluded reports whether path matches any exclude pattern, either against
// the full slash-separated path or the base name.
func excluded(path string, patterns []string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, slashed); err == nil && ok {
			return true
		}
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// belowThreshold reports whether any sub-score of any result is below min.
func belowThreshold(results []fileResult, min int) bool {
	for _, fr := range results {
		if fr.Quality < min || fr.Performance < min ||
			fr.BestPractices < min || fr.Maintainability < min {
			return true
		}
	}
	return false
}

func outputCompactJSON(o Outputter, outputFile string) {
	data, err := json.Marshal(o.ToJSON())
	if err != nil {
		fatal("failed to marshal JSON", "error", err)
	}
	data = append(data, '\n')
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			fatal("failed to write output file", "file", outputFile, "error", err)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outputFile)
		return
	}
	fmt.Print(string(data))
}

func fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

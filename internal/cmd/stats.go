package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codegauge/codegauge/internal/codestats"
)

var (
	statsFormat   string
	statsOutput   string
	statsExcludes []string
)

var statsCmd = &cobra.Command{
	Use:   "stats [paths...]",
	Short: "Show code statistics without scoring",
	Long: `Stats counts lines, code, comments, blanks and an estimated complexity
for the given files, without evaluating any rule catalogs.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runStats,
}

func init() {
	statsFormat = "text"
	setupOutputFlags(statsCmd, &statsFormat, &statsOutput)
	statsCmd.Flags().StringSliceVar(&statsExcludes, "exclude", nil,
		"Glob patterns to exclude (doublestar syntax)")
	rootCmd.AddCommand(statsCmd)
}

// statsReport wraps codestats output for the Outputter interface.
type statsReport struct {
	stats *codestats.Stats
}

func (r *statsReport) ToJSON() interface{} { return r.stats }

func (r *statsReport) ToText(w io.Writer) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tLANGUAGE\tLINES\tCODE\tCOMMENTS\tBLANKS\tCOMPLEXITY")
	for _, f := range r.stats.ByFile {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
			f.Filename, f.Language, f.Lines, f.Code, f.Comments, f.Blanks, f.Complexity)
	}
	t := r.stats.Total
	fmt.Fprintf(tw, "TOTAL (%d files)\t\t%d\t%d\t%d\t%d\t%d\n",
		t.Files, t.Lines, t.Code, t.Comments, t.Blanks, t.Complexity)
	tw.Flush()
}

func runStats(cmd *cobra.Command, args []string) {
	files, err := collectFiles(args, statsExcludes, true)
	if err != nil {
		fatal("failed to collect files", "error", err)
	}

	collector := codestats.NewCollector()
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		collector.ProcessFile(file, content)
	}

	OutputToFile(&statsReport{stats: collector.Stats()}, statsFormat, statsOutput)
}

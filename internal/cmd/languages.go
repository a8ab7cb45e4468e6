package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codegauge/codegauge/internal/profiles"
	"github.com/codegauge/codegauge/internal/rules"
)

var languagesFormat string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Long:  `Languages lists every registered language profile with its file extensions and rule count.`,
	Args:  cobra.NoArgs,
	Run:   runLanguages,
}

func init() {
	languagesFormat = "text"
	setupFormatFlag(languagesCmd, &languagesFormat)
	rootCmd.AddCommand(languagesCmd)
}

type languageInfo struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"display_name"`
	Extensions  []string `json:"extensions,omitempty"`
	Rules       int      `json:"rules"`
}

type languageReport struct {
	Languages []languageInfo `json:"languages"`
}

func (r *languageReport) ToJSON() interface{} { return r }

func (r *languageReport) ToText(w io.Writer) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXTENSIONS\tRULES")
	for _, lang := range r.Languages {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			lang.ID, lang.DisplayName, strings.Join(lang.Extensions, " "), lang.Rules)
	}
	tw.Flush()
}

func runLanguages(cmd *cobra.Command, args []string) {
	set, err := rules.LoadEmbedded()
	if err != nil {
		fatal("failed to load rule catalogs", "error", err)
	}

	rep := &languageReport{}
	for _, profile := range profiles.All() {
		info := languageInfo{
			ID:          profile.ID,
			DisplayName: profile.DisplayName,
			Extensions:  profile.Extensions,
		}
		if catalog, ok := set[profile.ID]; ok {
			info.Rules = len(catalog.Rules)
		}
		rep.Languages = append(rep.Languages, info)
	}

	Output(rep, languagesFormat)
}

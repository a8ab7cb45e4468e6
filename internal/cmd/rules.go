package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/codegauge/codegauge/internal/rules"
	"github.com/codegauge/codegauge/internal/types"
)

var (
	rulesFormat   string
	rulesOutput   string
	rulesRulesDir string
)

var rulesCmd = &cobra.Command{
	Use:   "rules [language]",
	Short: "Show the rule catalogs",
	Long: `Rules lists the pattern catalogs the scan command evaluates, either for
all languages or for one language id (cpp, java, go, python, javascript,
generic).`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRules,
}

func init() {
	rulesFormat = "text"
	setupOutputFlags(rulesCmd, &rulesFormat, &rulesOutput)
	rulesCmd.Flags().StringVar(&rulesRulesDir, "rules-dir", "",
		"Directory with additional YAML rule catalogs")
	rootCmd.AddCommand(rulesCmd)
}

// ruleReport is the output envelope of the rules command.
type ruleReport struct {
	Catalogs []*types.Catalog `json:"catalogs"`
}

func (r *ruleReport) ToJSON() interface{} { return r }

func (r *ruleReport) ToText(w io.Writer) {
	for _, catalog := range r.Catalogs {
		fmt.Fprintf(w, "%s (version %d, %d rules)\n", catalog.Language, catalog.Version, len(catalog.Rules))
		tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
		for _, rule := range catalog.Rules {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%+d\t%s\n",
				rule.ID, rule.Category, rule.GetMatch(), rule.Weight, rule.Message)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}
}

func runRules(cmd *cobra.Command, args []string) {
	set, err := rules.LoadEmbedded()
	if err != nil {
		fatal("failed to load rule catalogs", "error", err)
	}
	if rulesRulesDir != "" {
		if err := set.LoadExternal(rulesRulesDir); err != nil {
			fatal("failed to load external rule catalogs", "dir", rulesRulesDir, "error", err)
		}
	}

	rep := &ruleReport{}
	if len(args) == 1 {
		catalog, ok := set[args[0]]
		if !ok {
			fatal("unknown language", "language", args[0])
		}
		rep.Catalogs = append(rep.Catalogs, catalog)
	} else {
		for _, language := range set.Languages() {
			rep.Catalogs = append(rep.Catalogs, set[language])
		}
	}

	OutputToFile(rep, rulesFormat, rulesOutput)
}

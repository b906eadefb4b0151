package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eliref",
		Short: "Resolve Belgian legal citations to ELI documents",
		Long: `eliref recognises citations of Belgian legislation in free text
("zie KB 15/01/2020 ...") and builds the European Legislation Identifier
lookup URL for them. It also reads the N-Triples documents published at
those URLs and extracts their titles.

Configuration sources (in order of precedence):
1. Environment variables (ELIREF_* prefix)
2. The file given with --config, else ./eliref.yaml, else ~/.config/eliref/config.yaml
3. Default values

Examples:
  eliref suggest "zie KB 15/01/2020 betreffende iets"
  eliref lookup "wet 01/11/2020"
  eliref parse --simplify document.nt
  eliref titles https://www.ejustice.just.fgov.be/eli/wet/2020/11/01/1
  eliref config init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "Config file path (YAML)")
	flags.CountVarP(&a.verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.BoolVar(&a.jsonLogs, "log-json", false, "Write logs as JSON")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "Write fetch metrics in Prometheus text format to this file")

	cmd.AddCommand(
		newParseCmd(a),
		newSimplifyCmd(),
		newSuggestCmd(),
		newTitlesCmd(a),
		newLookupCmd(a),
		newNamespacesCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return cmd
}

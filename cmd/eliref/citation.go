package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/geoknoesis/eli-go/citation"
)

var errNoCitation = errors.New("no citation found")

func resolveArgs(args []string, strict bool) (citation.Resolved, error) {
	var opts []citation.Option
	if strict {
		opts = append(opts, citation.WithStrictCalendar())
	}
	text := strings.Join(args, " ")
	resolved, ok := citation.NewResolver(opts...).Suggest(text)
	if !ok {
		return citation.Resolved{}, errors.WithHint(
			errors.WithDetailf(errNoCitation, "text %q", text),
			"expected a document type (wet, loi, decr, kb, ar, mb, am) followed by a date such as 15/01/2020",
		)
	}
	return resolved, nil
}

func newSuggestCmd() *cobra.Command {
	var strict, details bool

	cmd := &cobra.Command{
		Use:   "suggest <text>...",
		Short: "Print the ELI lookup URL for the first citation in text",
		Long: `Find the first citation of Belgian legislation in text and print the
URL that lists the documents of that type and date.

A citation is a document type (wet, loi, decr, kb, ar, mb, am) followed by
a day, month and year, optionally separated by / or -. Impossible dates
roll over (31/04 is read as 1 May) unless --strict is given.`,
		Example: `  eliref suggest "zie KB 15/01/2020 betreffende iets"
  eliref suggest --strict "wet 31/04/2020"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveArgs(args, strict)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if details {
				_, err = fmt.Fprintf(out, "date: %s\ntype: %s\nurl:  %s\n",
					resolved.ISODate(), resolved.Type.Code(), resolved.URL())
			} else {
				_, err = fmt.Fprintln(out, resolved.URL())
			}
			return errors.Wrap(err, "write")
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject dates that do not exist in the calendar")
	cmd.Flags().BoolVar(&details, "details", false, "Print the resolved date and type as well")
	return cmd
}

func newLookupCmd(a *app) *cobra.Command {
	var strict, raw bool

	cmd := &cobra.Command{
		Use:   "lookup <text>...",
		Short: "Resolve a citation and print the titles of the matching documents",
		Long: `Resolve the first citation in text like 'suggest', fetch the N-Triples
document at the resulting URL and print the title of every document in it.`,
		Example: `  eliref lookup "zie KB 15/01/2020 betreffende iets"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := resolveArgs(args, strict)
			if err != nil {
				return err
			}
			url := resolved.URL()
			a.logger.Info("Looking up citation",
				zap.String("date", resolved.ISODate()),
				zap.String("type", resolved.Type.Code()),
				zap.String("url", url))

			titles, err := a.fetcher().Titles(cmd.Context(), url)
			if err != nil {
				return withFetchHint(err)
			}
			return renderTitles(cmd.OutOrStdout(), titles, raw)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Reject dates that do not exist in the calendar")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw RDF tokens")
	return cmd
}

package main

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/eli-go/rdf"
)

func newParseCmd(a *app) *cobra.Command {
	var simplify, decode bool

	cmd := &cobra.Command{
		Use:   "parse [file|-|url]",
		Short: "Print the valid triples of an N-Triples document",
		Long: `Read an N-Triples document and print every valid statement in order.
Lines that are not statements are dropped silently.

With --simplify each statement is printed as three tab-separated values
with namespaces abbreviated and literal datatypes removed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}

			out := cmd.OutOrStdout()
			enc := rdf.NewEncoder(out)
			count := 0
			err := a.eachTriple(cmd.Context(), cmd, source, func(t rdf.Triple) error {
				count++
				if decode {
					t.O = rdf.DecodeUnicodeEscapes(t.O)
				}
				if simplify {
					_, err := fmt.Fprintln(out, strings.Join([]string{
						rdf.Simplify(t.S), rdf.Simplify(t.P), rdf.Simplify(t.O),
					}, "\t"))
					return errors.Wrap(err, "write")
				}
				return enc.Write(t)
			})
			if err != nil {
				return err
			}
			a.logger.Sugar().Debugf("Parsed %d triples", count)
			return enc.Flush()
		},
	}

	cmd.Flags().BoolVarP(&simplify, "simplify", "s", false, "Print simplified values instead of raw tokens")
	cmd.Flags().BoolVarP(&decode, "decode", "d", false, "Decode \\uXXXX escapes in objects")
	return cmd
}

func newSimplifyCmd() *cobra.Command {
	var expand bool

	cmd := &cobra.Command{
		Use:   "simplify <value>...",
		Short: "Simplify RDF term tokens for display",
		Long: `Print the display form of each RDF term token: typed literals lose their
datatype, tel: and mailto: IRIs lose their scheme, and IRIs in a known
namespace are abbreviated (dcterms:title).

With --expand the reverse is done for prefixed names.`,
		Example: `  eliref simplify '<http://purl.org/dc/terms/title>'
  eliref simplify '"2020-01-15T00:00:00"^^<http://www.w3.org/2001/XMLSchema#dateTime>'
  eliref simplify --expand dcterms:title`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range args {
				result := rdf.Simplify(v)
				if expand {
					result = rdf.ExpandPrefixed(v)
				}
				if _, err := fmt.Fprintln(out, result); err != nil {
					return errors.Wrap(err, "write")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&expand, "expand", "e", false, "Expand prefixed names to full IRIs")
	return cmd
}

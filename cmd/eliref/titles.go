package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/eli-go/rdf"
)

func newTitlesCmd(a *app) *cobra.Command {
	var raw bool
	var predicate string

	cmd := &cobra.Command{
		Use:   "titles [file|-|url]",
		Short: "Print the title of every subject in an N-Triples document",
		Long: `Read an N-Triples document and print one row per subject that has an
eli:title statement. When a subject has several titles the last one wins.

--predicate projects another property instead, given as a full IRI or a
prefixed name (dcterms:title).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := ""
			if len(args) == 1 {
				source = args[0]
			}
			triples, err := a.readTriples(cmd.Context(), cmd, source)
			if err != nil {
				return err
			}

			titles := rdf.ProjectTitles(triples)
			if predicate != "" {
				p := rdf.ExpandPrefixed(predicate)
				if p[0] != '<' {
					p = "<" + p + ">"
				}
				titles = rdf.ProjectPredicate(triples, p)
			}
			return renderTitles(cmd.OutOrStdout(), titles, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw RDF tokens")
	cmd.Flags().StringVarP(&predicate, "predicate", "p", "", "Project this predicate instead of eli:title")
	return cmd
}

// renderTitles prints titles as a table sorted by subject.
func renderTitles(w io.Writer, titles map[string]string, raw bool) error {
	if len(titles) == 0 {
		_, err := fmt.Fprintln(w, "No titles found.")
		return errors.Wrap(err, "write")
	}

	subjects := make([]string, 0, len(titles))
	for s := range titles {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	data := pterm.TableData{{"Subject", "Title", "Lang"}}
	for _, s := range subjects {
		o := titles[s]
		if raw {
			data = append(data, []string{s, o, ""})
			continue
		}
		text, tag, ok := rdf.SplitLiteral(o)
		if !ok {
			data = append(data, []string{rdf.Simplify(s), rdf.Simplify(o), ""})
			continue
		}
		if tag != "" && tag[0] == '<' {
			// datatype, not a language
			tag = ""
		}
		data = append(data, []string{rdf.Simplify(s), rdf.DecodeUnicodeEscapes(text), tag})
	}
	return renderTable(w, data)
}

func renderTable(w io.Writer, data pterm.TableData) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render table")
	}
	_, err = fmt.Fprintln(w, table)
	return errors.Wrap(err, "write")
}

func newNamespacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "namespaces",
		Short: "List the namespace prefixes used to abbreviate IRIs",
		Long: `List the namespace table in scan order. The first namespace whose IRI
starts an IRI wins when abbreviating.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Prefix", "IRI"}}
			for _, ns := range rdf.Namespaces() {
				data = append(data, []string{ns.Prefix, ns.IRI})
			}
			return renderTable(cmd.OutOrStdout(), data)
		},
	}
}

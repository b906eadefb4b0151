package main

import (
	"fmt"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/eli-go/config"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "eliref version %s (%s %s/%s)\n",
				config.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			return errors.Wrap(err, "write")
		},
	}
}

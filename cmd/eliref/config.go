package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/eli-go/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage eliref configuration",
		Long: `Display and create eliref configuration files.

Every key can be overridden with an environment variable: fetch.timeout
becomes ELIREF_FETCH_TIMEOUT.`,
	}
	cmd.AddCommand(newConfigInitCmd(), newConfigShowCmd(a))
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force, user bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Long: `Write the default configuration as YAML. The file goes to ./eliref.yaml
unless a path is given, or to ~/.config/eliref/config.yaml with --user.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigFile
			switch {
			case len(args) == 1:
				path = args[0]
			case user:
				path = config.UserConfigPath()
				if path == "" {
					return errors.New("cannot determine the home directory")
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.WithHint(errors.Newf("%s already exists", path), "pass --force to overwrite it")
			}
			if err := config.DefaultConfig().SaveToFile(path); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return errors.Wrap(err, "write")
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().BoolVar(&user, "user", false, "Write the user-level config file")
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Print the configuration after defaults, the config file and environment overrides are applied.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.Marshal()
			if err != nil {
				return err
			}
			source := "defaults"
			if a.configFile != "" {
				source = a.configFile
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "# eliref configuration (from %s)\n%s", source, data)
			return errors.Wrap(err, "write")
		},
	}
}

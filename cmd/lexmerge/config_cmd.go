package main

import (
	"fmt"

	"github.com/c360studio/lexmerge/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration files",
	}
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigInitCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err := enc.Encode(a.cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return enc.Close()
		},
	}
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		output string
		user   bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Long: `Writes lexmerge.yaml with the default settings to the current
directory, or to --output. With --user the defaults go to
~/.config/lexmerge/config.yaml instead, unless that file already exists.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if user {
				return a.initUserConfig()
			}

			exists, err := afero.Exists(a.fs, output)
			if err != nil {
				return withCode(exitWrite, err)
			}
			if exists && !force {
				return withCode(exitUsage, fmt.Errorf("%s already exists (use --force to overwrite)", output))
			}
			if err := config.DefaultConfig().SaveToFile(a.fs, output); err != nil {
				return withCode(exitWrite, err)
			}
			fmt.Fprintf(a.out, "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.ProjectConfigFile, "Config file to write")
	cmd.Flags().BoolVar(&user, "user", false, "Create the user config instead")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func (a *app) initUserConfig() error {
	home, err := a.homeDir()
	if err != nil {
		return withCode(exitWrite, fmt.Errorf("find home directory: %w", err))
	}
	path, created, err := config.NewLoader(a.logger).WithFs(a.fs, "", home).EnsureUserConfig()
	if err != nil {
		return withCode(exitWrite, err)
	}
	if created {
		fmt.Fprintf(a.out, "wrote %s\n", path)
	} else {
		fmt.Fprintf(a.out, "%s already exists\n", path)
	}
	return nil
}

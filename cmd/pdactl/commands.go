package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phroun/retropda"
)

func newListCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := opts.store().Load()
			if err != nil {
				return err
			}
			opts.logger.Debug("loaded %d entries from %s", len(entries), opts.store().Path())
			return printEntries(cmd.OutOrStdout(), entries, opts.jsonOutput)
		},
	}
}

func newInstallCmd(opts *cliOptions) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "install <path>",
		Short: "Record a file in the manifest",
		Long:  "Record a file in the manifest. The file is only bookmarked; it is never opened or run.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			entry := retropda.EntryForFile(path)
			if name != "" {
				entry.Name = name
			}
			if err := opts.store().Append(entry); err != nil {
				return err
			}
			opts.logger.Info("installed %s", entry.Name)
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), entry)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "installed %s -> %s\n", entry.Name, entry.Path)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name (default: file name)")
	return cmd
}

func newPathCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the manifest location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), opts.store().Path())
			return err
		},
	}
}

func newConfigCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage pda.yaml",
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := retropda.WriteDefaultConfig(opts.configPath, opts.config, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.configPath)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/phroun/retropda"
)

type cliOptions struct {
	configPath string
	jsonOutput bool
	debug      bool

	config *retropda.Config
	logger *retropda.Logger
}

func newRootCommand() *cobra.Command {
	opts := &cliOptions{
		configPath: retropda.DefaultConfigPath(),
		logger:     retropda.NewNopLogger(),
	}

	root := &cobra.Command{
		Use:           "pdactl",
		Short:         "Manage the retro PDA manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := retropda.LoadConfig(opts.configPath)
			if err != nil {
				return err
			}
			opts.config = cfg
			if opts.debug || cfg.Debug {
				opts.logger = retropda.NewLogger(true)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", opts.configPath, "path to pda.yaml")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	root.AddCommand(
		newListCmd(opts),
		newInstallCmd(opts),
		newPathCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

func (o *cliOptions) store() *retropda.ManifestStore {
	return retropda.NewManifestStore(o.config)
}

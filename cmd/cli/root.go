package main

import (
	"fmt"

	"github.com/cxd309/tilt-engine/internal/config"
	"github.com/cxd309/tilt-engine/internal/observability"
	"github.com/spf13/cobra"
)

// options collects the persistent flags and the configuration they resolve to.
type options struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// newRootCommand builds a fresh command tree so tests never share flag state.
func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "tilt-engine",
		Short:         "Point-mass ball motion in a walled field",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if opts.logLevel != "" {
				cfg.Logger.Level = opts.logLevel
			}
			opts.cfg = cfg
			observability.InitializeLogger(cfg.Logger)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./tilt-engine.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logger.level (debug, info, warn, error)")

	root.AddCommand(newRunCommand(opts), newPlayCommand(opts))
	return root
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/cxd309/tilt-engine/internal/observability"
	"github.com/cxd309/tilt-engine/internal/play"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newPlayCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Tilt a ball around the terminal with the arrow keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			game := play.New(screen, opts.cfg.Play, observability.GetLogger().Named("play"))
			if err := game.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cxd309/tilt-engine/internal/engine"
	"github.com/cxd309/tilt-engine/internal/observability"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand(opts *options) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run a simulation input from a file (or stdin) and print the log as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
				name string
			)
			if len(args) > 0 {
				name = args[0]
				data, err = os.ReadFile(name)
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			format, err = resolveFormat(format, name)
			if err != nil {
				return err
			}

			logger := observability.GetLogger().Named("engine")
			logger.Debug("running simulation", zap.String("input", name), zap.String("format", format))

			var result string
			if format == "yaml" {
				result, err = engine.RunYAML(string(data), logger)
			} else {
				result, err = engine.RunJSON(string(data), logger)
			}
			if err != nil {
				return fmt.Errorf("simulation error: %w", err)
			}

			if pretty {
				var buf bytes.Buffer
				if err := json.Indent(&buf, []byte(result), "", "  "); err != nil {
					return fmt.Errorf("formatting output: %w", err)
				}
				result = buf.String()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "auto", "input format: auto, json or yaml")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
	return cmd
}

// resolveFormat picks the decoder; auto means YAML for .yaml/.yml files and JSON otherwise.
func resolveFormat(format, name string) (string, error) {
	switch format {
	case "json", "yaml":
		return format, nil
	case "auto", "":
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			return "yaml", nil
		}
		return "json", nil
	default:
		return "", fmt.Errorf("unknown input format %q", format)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

// errInvalidInput is returned in strict mode when a validator rejects an input.
var errInvalidInput = errors.New("invalid input")

// commandKey carries the running command name in the context for the logger.
type commandKey struct{}

// app is shared by every command.
type app struct {
	cfg    Config
	log    *slog.Logger
	output outputFormat
	strict bool
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}
	var output string

	root := &cobra.Command{
		Use:           appName,
		Short:         "Transliterate, convert case, escape and validate strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			f, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			a.output = f
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			a.log.DebugContext(cmd.Context(), "starting", slog.String("output", string(f)))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&output, "output", "o", cfg.Output, fmt.Sprintf("output format: %s, %s or %s", outputText, outputJSON, outputYAML))
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "exit with status 1 when a validator rejects any input")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (pass inputs starting with \"-\" after --)", err)
	})

	root.AddCommand(a.transformCommands()...)
	root.AddCommand(a.validateCommands()...)

	return root
}

// logResult records a finished batch at debug level.
func (a *app) logResult(ctx context.Context, count int) {
	a.log.DebugContext(ctx, "processed", logger.Count(count))
}

// Command textkit exposes the strutil transformations and validators on the
// command line. Inputs are taken from the arguments, or read line by line from
// stdin when none are given. Inputs starting with "-" go after "--" so they
// are not read as flags.
//
//	textkit camel --pascal foo_bar baz-qux
//	textkit is-date --format dd.mm.yyyy 29.02.2020
//	textkit is-int -- -5 42
//	cat names.txt | textkit ascii
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/textkit/pkg/logger"
)

const appName = "textkit"

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	opts, err := cfg.logOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	log := logger.New(append(opts, logger.WithOutput(os.Stderr))...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(cfg, log)
	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		if errors.Is(err, errInvalidInput) {
			return 1
		}
		log.ErrorContext(ctx, "command failed", logger.Command(cmd.Name()), logger.Error(err))
		return 1
	}
	return 0
}

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/introducer"
	"github.com/aretw0/introducer/pkg/adapters/phrasebook"
)

func newWatchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [name]",
		Short: "Re-print the introduction whenever the phrasebook changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := append(c.options(cmd), introducer.WithWatcherErrorHandler(func(err error) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: phrasebook reload failed, keeping previous greetings: %v\n", err)
			}))
			intro, book, err := introducer.Open(opts...)
			if err != nil {
				return err
			}
			if book == nil {
				return errors.New("no phrasebook configured: use --phrasebook or INTRODUCER_PHRASEBOOK")
			}

			return watchIntroductions(ctx, cmd, c, intro, book, name)
		},
	}
}

func watchIntroductions(ctx context.Context, cmd *cobra.Command, c *cli, intro *introducer.Introducer, book *introducer.Phrasebook, name string) error {
	printIntro := func() {
		text, err := intro.Introduce(name)
		if err != nil {
			c.logger.Error("introduction failed", "error", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}
	printIntro()

	events, err := book.Watch(ctx)
	if err != nil {
		return err
	}

	source := phrasebook.NewSource(events)
	if err := source.Start(ctx); err != nil {
		return err
	}

	for e := range source.Events() {
		c.logger.Debug("phrasebook event", "event", e.String())
		if ev, ok := e.(phrasebook.Event); ok && ev.Type == phrasebook.EventError {
			continue
		}
		printIntro()
	}
	return nil
}

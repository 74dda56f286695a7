package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/introducer"
)

func newIdentityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity [name]",
		Short: "Print the identity sentence without a greeting",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), introducer.FormatIdentity(args[0]))
		},
	}
}

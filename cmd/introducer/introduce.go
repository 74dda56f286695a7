package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type introduction struct {
	Name         string `json:"name"`
	Introduction string `json:"introduction"`
}

func newIntroduceCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "introduce [name]",
		Short: "Print a self-introduction",
		Long: `Print "<greeting> My name is <name>.". The name is used verbatim,
including surrounding whitespace or an empty string.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			intro, _, err := c.open(cmd)
			if err != nil {
				return err
			}

			text, err := intro.Introduce(name)
			if err != nil {
				return fmt.Errorf("failed to introduce: %w", err)
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(introduction{Name: name, Introduction: text})
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

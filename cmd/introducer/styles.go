package main

import (
	"errors"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newStylesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the greeting styles of a phrasebook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, book, err := c.open(cmd)
			if err != nil {
				return err
			}
			if book == nil {
				return errors.New("no phrasebook configured: use --phrasebook or INTRODUCER_PHRASEBOOK")
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Style", "Greeting", "Source"})
			table.SetAutoWrapText(false)
			table.SetAutoFormatHeaders(true)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetCenterSeparator("")
			table.SetColumnSeparator("")
			table.SetRowSeparator("")
			table.SetHeaderLine(false)
			table.SetBorder(false)

			for _, style := range book.Styles() {
				greeting, err := book.Lookup(style)
				if err != nil {
					return err
				}
				source, _ := book.Source(style)
				table.Append([]string{style, greeting, source})
			}
			table.Render()
			return nil
		},
	}
}

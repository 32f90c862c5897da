package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarete/kombi/ascii"
	"github.com/clarete/kombi/examples/color"
)

func newColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "color <hex>...",
		Short: "Convert #RRGGBB colors to rgb()",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			theme := a.theme(out)
			for _, arg := range args {
				c, err := color.Parse(arg)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "%s %s\n", arg, ascii.Color(theme.Accent, "%s", c)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

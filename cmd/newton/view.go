package main

import (
	"github.com/spf13/cobra"
)

func viewCmd(opts *options) *cobra.Command {
	scale := 1

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window that shows the fractal as it renders",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runView(cmd.Context(), opts, scale)
		},
	}

	cmd.Flags().IntVar(&scale, "scale", scale, "window pixels per frame pixel")

	return cmd
}

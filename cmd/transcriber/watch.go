package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newWatchCommand(configFlag *string, stdin *os.File, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Transcribe pending videos, then keep watching for new ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configFlag, cmd.Flags().Changed("config"), stdin, stdout)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			return a.watch(cmd.Context())
		},
	}
}

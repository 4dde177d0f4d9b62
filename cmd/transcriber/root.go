package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

func newRootCommand(stdin *os.File, stdout io.Writer) *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:           "transcriber",
		Short:         "Transcribe a folder of videos into transcripts and subtitles",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configFlag, cmd.Flags().Changed("config"), stdin, stdout)
			if err != nil {
				return err
			}
			defer a.close(cmd.Context())

			return a.runBatch(cmd.Context())
		},
	}
	rootCmd.SetOut(stdout)

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", defaultConfigPath, "Configuration file path")

	rootCmd.AddCommand(newWatchCommand(&configFlag, stdin, stdout))

	return rootCmd
}

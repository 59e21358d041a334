package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mlproject/mlproject/internal/common"
	"github.com/spf13/cobra"
)

func newArtifactCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifact",
		Short: "Inspect binary artifacts written by the pipeline",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "info <file>",
		Short: "Print the encoding and size of a binary artifact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := a.files.InspectBin(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "path: %s\ncompression: %s\nsize: %s (%s)\n",
				args[0], info.Compression, humanize.Bytes(uint64(info.Size)), common.FormatSize(info.Size))
			return nil
		},
	})

	return cmd
}

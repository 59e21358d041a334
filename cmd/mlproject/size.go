package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mlproject/mlproject/internal/common"
	"github.com/spf13/cobra"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size <file>...",
		Short: "Print the approximate size of files in kilobytes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				info, err := a.files.Fs().Stat(path)
				if err != nil {
					return err
				}
				a.logger.With("path", path, "size", humanize.Bytes(uint64(info.Size()))).Debug("file size computed")

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, common.FormatSize(info.Size()))
			}
			return nil
		},
	}
}

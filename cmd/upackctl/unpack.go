package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newUnpackCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Unpack a container file back to one decimal value per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			header, blocks, err := ReadContainer(in)
			if err != nil {
				return err
			}
			if header.ElementWidth != 32 {
				return fmt.Errorf("upackctl unpack: element width %d not supported yet", header.ElementWidth)
			}
			values := UnpackU32Blocks(blocks, header.Transform)

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			w := bufio.NewWriter(out)
			for _, v := range values {
				fmt.Fprintln(w, v)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input container file (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output file, one decimal value per line (required)")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

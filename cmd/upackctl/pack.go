package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func parseTransform(name string) (uint8, error) {
	switch name {
	case "plain":
		return transformPlain, nil
	case "delta":
		return transformDelta, nil
	case "delta1":
		return transformDelta1, nil
	case "adaptive":
		return transformAdaptiv, nil
	default:
		return 0, fmt.Errorf("unknown transform %q (want plain, delta, delta1, adaptive)", name)
	}
}

func readValues(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []uint32
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", line, err)
		}
		values = append(values, uint32(v))
	}
	return values, scanner.Err()
}

func newPackCmd() *cobra.Command {
	var inPath, outPath, transformName string

	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Pack a newline-separated list of uint32 values",
		RunE: func(cmd *cobra.Command, args []string) error {
			transform, err := parseTransform(transformName)
			if err != nil {
				return err
			}
			values, err := readValues(inPath)
			if err != nil {
				return err
			}
			blocks := PackU32Blocks(values, transform)

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			header := Header{ElementWidth: 32, Transform: transform, Count: uint32(len(values))}
			if err := WriteContainer(out, header, blocks); err != nil {
				return err
			}

			rawBytes := len(values) * 4
			var packedBytes int
			for _, b := range blocks {
				packedBytes += len(b.Data)
			}
			fmt.Printf("packed %d values: %d raw bytes -> %d packed bytes (%.2fx)\n",
				len(values), rawBytes, packedBytes, float64(rawBytes)/float64(max(packedBytes, 1)))
			return nil
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input file, one decimal uint32 per line (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "output container file (required)")
	cmd.Flags().StringVar(&transformName, "transform", "plain", "plain, delta, delta1, or adaptive")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("out")
	return cmd
}

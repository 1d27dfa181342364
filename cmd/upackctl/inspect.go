package main

import (
	"fmt"
	"os"

	"github.com/dchest/siphash"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/lnx-search/upack-go/internal/lane"
)

// fingerprintKey0/1 are fixed, non-secret keys: the fingerprint is a
// content-identity check for deduplication and test fixtures, not a MAC.
const (
	fingerprintKey0 = 0x646e6170636b7532
	fingerprintKey1 = 0x75706163746e6170
)

// blockSummary is the YAML-serializable view of one packed block.
type blockSummary struct {
	Index        int    `json:"index"`
	Elements     int    `json:"elements"`
	BitWidth     int    `json:"bitWidth"`
	BytesWritten int    `json:"bytesWritten"`
	Fingerprint  string `json:"fingerprint"`
}

type inspectSummary struct {
	ElementWidth int            `json:"elementWidth"`
	Transform    string         `json:"transform"`
	TotalCount   int            `json:"totalCount"`
	TotalBytes   int            `json:"totalBytes"`
	Blocks       []blockSummary `json:"blocks"`
}

var transformNames = map[uint8]string{
	transformPlain:   "plain",
	transformDelta:   "delta",
	transformDelta1:  "delta1",
	transformAdaptiv: "adaptive",
}

func newInspectCmd() *cobra.Command {
	var inPath string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report per-block bit widths, sizes and content fingerprints for a container file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				fmt.Printf("lane backend: %s (hardware SIMD available: %v)\n", lane.CurrentLevel(), lane.HasSIMD())
			}
			in, err := os.Open(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			header, blocks, err := ReadContainer(in)
			if err != nil {
				return err
			}

			summary := inspectSummary{
				ElementWidth: int(header.ElementWidth),
				Transform:    transformNames[header.Transform],
				TotalCount:   int(header.Count),
			}
			for i, b := range blocks {
				summary.TotalBytes += len(b.Data)
				fp := siphash.Hash(fingerprintKey0, fingerprintKey1, b.Data)
				summary.Blocks = append(summary.Blocks, blockSummary{
					Index:        i,
					Elements:     b.N,
					BitWidth:     int(b.Width),
					BytesWritten: len(b.Data),
					Fingerprint:  fmt.Sprintf("%016x", fp),
				})
			}

			doc, err := yaml.Marshal(summary)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(doc)
			return err
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "input container file (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also report the detected SIMD backend")
	cmd.MarkFlagRequired("in")
	return cmd
}

package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
)

func generate(n int, dist string, seed int64) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	values := make([]uint32, n)
	switch dist {
	case "ascending":
		v := uint32(0)
		for i := range values {
			v += uint32(rng.Intn(4))
			values[i] = v
		}
	case "random":
		for i := range values {
			values[i] = rng.Uint32()
		}
	default: // "sorted-small": small deltas with an occasional outlier
		v := uint32(0)
		for i := range values {
			v += uint32(rng.Intn(8))
			if rng.Intn(500) == 0 {
				v += uint32(rng.Intn(1 << 20))
			}
			values[i] = v
		}
	}
	return values
}

func gzipSize(values []uint32) (int, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	raw := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[4*i:], v)
	}
	if _, err := zw.Write(raw); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func newBenchCmd() *cobra.Command {
	var n int
	var dist string
	var seed int64
	var transformName string
	var baseline bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark pack throughput, optionally against a gzip baseline, on synthetic data",
		RunE: func(cmd *cobra.Command, args []string) error {
			transform, err := parseTransform(transformName)
			if err != nil {
				return err
			}
			runID := uuid.New().String()
			values := generate(n, dist, seed)

			start := time.Now()
			blocks := PackU32Blocks(values, transform)
			packDuration := time.Since(start)

			packedBytes := 0
			for _, b := range blocks {
				packedBytes += len(b.Data)
			}
			rawBytes := 4 * len(values)

			fmt.Printf("run %s\n", runID)
			fmt.Printf("  distribution:  %s (seed=%d)\n", dist, seed)
			fmt.Printf("  transform:     %s\n", transformName)
			fmt.Printf("  elements:      %d\n", len(values))
			fmt.Printf("  raw bytes:     %d\n", rawBytes)
			fmt.Printf("  upack bytes:   %d (%.2fx)\n", packedBytes, float64(rawBytes)/float64(packedBytes))
			if baseline {
				gz, err := gzipSize(values)
				if err != nil {
					return err
				}
				fmt.Printf("  gzip bytes:    %d (%.2fx)\n", gz, float64(rawBytes)/float64(gz))
			}
			fmt.Printf("  pack time:     %s (%.1f Mvalues/s)\n", packDuration, float64(len(values))/packDuration.Seconds()/1e6)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 1_000_000, "number of synthetic uint32 values to generate")
	cmd.Flags().StringVar(&dist, "dist", "sorted-small", "ascending, random, or sorted-small")
	cmd.Flags().Int64Var(&seed, "seed", 1, "PRNG seed")
	cmd.Flags().StringVar(&transformName, "transform", "delta", "plain, delta, delta1, or adaptive")
	cmd.Flags().BoolVar(&baseline, "baseline", false, "also compress with gzip and report the ratio")
	return cmd
}

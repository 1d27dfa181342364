// Command upackctl packs and unpacks streams of unsigned integers using the
// upack bit-packing codec, and benchmarks it against a general-purpose
// compressor.
//
// Usage:
//
//	upackctl pack -in values.txt -out values.upk -transform delta1
//	upackctl unpack -in values.upk -out values.txt
//	upackctl inspect -in values.upk
//	upackctl bench -n 1000000 -dist ascending
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "upackctl",
		Short: "Pack, unpack and benchmark upack-encoded integer streams",
	}
	rootCmd.AddCommand(newPackCmd(), newUnpackCmd(), newInspectCmd(), newBenchCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

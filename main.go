// Package main points at the rfsim command line tool.
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "RFSim - SIMD register file simulator. Run 'go run ./cmd/rfsim help'.")
	os.Exit(2)
}

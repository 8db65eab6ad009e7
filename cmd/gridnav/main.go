// Command gridnav plans rectangular-robot paths on occupancy-grid maps
// using an artificial potential field, and ships a scenario catalogue
// with benchmarking, charting and run-history storage.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	ctx := context.Background()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "gridnav:", err)
		os.Exit(1)
	}
}

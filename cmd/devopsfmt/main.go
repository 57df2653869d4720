// Command devopsfmt formats the raw output of devopsfetch.sh as tables.
//
// Usage:
//
//	devopsfetch.sh -p | devopsfmt ports
//	devopsfmt docker_images images.txt
//	devopsfmt -o json nginx < nginx.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

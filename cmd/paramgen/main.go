// SPDX-License-Identifier: EPL-2.0

// Command paramgen is a demo CLI over this module's ADM splicing and
// recon-gain packages, in the no-flag-library, os.Args style of the
// teacher's examples/resampler command.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "splice":
		err = runSplice(os.Args[2:])
	case "recongain":
		err = runReconGain(os.Args[2:])
	case "normalize":
		err = runNormalize(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "paramgen:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  paramgen splice <input.wav> <outDir> <prefix>")
	fmt.Println("  paramgen recongain <original.wav> <decoded.wav>")
	fmt.Println("  paramgen normalize <input.wav|.aiff> <output.wav> <targetRate>")
}

// formatFromPath maps a file's extension to an ingest registry key.
func formatFromPath(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

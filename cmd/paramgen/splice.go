// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/go-iamf/paramgen"
)

// runSplice reads an ADM-BWF WAV file, parses its axml object list, and
// writes one WAV file per object into outDir.
func runSplice(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("splice: usage: paramgen splice <input.wav> <outDir> <prefix>")
	}
	inPath, outDir, prefix := args[0], args[1], args[2]

	paths, err := paramgen.SpliceADMFile(inPath, outDir, prefix, 0)
	if err != nil {
		return fmt.Errorf("splicing %s: %w", inPath, err)
	}

	fmt.Printf("wrote %d file(s):\n", len(paths))
	for _, p := range paths {
		fmt.Println(" ", p)
	}
	return nil
}

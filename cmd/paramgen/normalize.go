// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-iamf/paramgen/audio"
	"github.com/go-iamf/paramgen/formats/wav"
	"github.com/go-iamf/paramgen/ingest"
)

// runNormalize prepares a spliced per-object render (paramgen splice's
// output, or any WAV/AIFF file at a rate that disagrees with the rest of a
// scenario) for recon-gain comparison: it decodes the file, resamples and
// downmixes it to targetRate mono 16-bit PCM via audio.ResampleToMono16,
// and writes the result out as a canonical WAV so paramgen recongain's
// stereo-pair loader can consume it on equal footing with the rest of a
// scenario's renders.
func runNormalize(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("normalize: usage: paramgen normalize <input.wav|.aiff> <output.wav> <targetRate>")
	}
	inPath, outPath := args[0], args[1]
	targetRate, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("normalize: invalid targetRate %q: %w", args[2], err)
	}

	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	reg := ingest.NewRegistry()
	dec, ok := reg.Get(formatFromPath(inPath))
	if !ok {
		return fmt.Errorf("normalize: no decoder registered for %s", inPath)
	}

	src, err := dec.Decode(f)
	if err != nil {
		return fmt.Errorf("normalize: decoding %s: %w", inPath, err)
	}
	defer src.Close()

	pcm16, rate, err := audio.ResampleToMono16(src, targetRate, 4096)
	if err != nil && err != io.EOF {
		return fmt.Errorf("normalize: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := wav.WriteWAV16(out, rate, pcm16); err != nil {
		return fmt.Errorf("normalize: writing %s: %w", outPath, err)
	}

	fmt.Printf("wrote %d samples at %d Hz to %s\n", len(pcm16), rate, outPath)
	return nil
}

// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/go-iamf/paramgen/channel"
	"github.com/go-iamf/paramgen/ingest"
	"github.com/go-iamf/paramgen/recongain"
)

// runReconGain decodes a stereo original and its decoded counterpart, and
// prints the recon-gain flag, demixed labels and gain vector of the
// mono-to-stereo layer transition (the DemixedR2 gain).
func runReconGain(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("recongain: usage: paramgen recongain <original.wav> <decoded.wav>")
	}

	original, err := loadStereoLabeledFrame(args[0])
	if err != nil {
		return fmt.Errorf("loading original: %w", err)
	}
	decoded, err := loadStereoLabeledFrame(args[1])
	if err != nil {
		return fmt.Errorf("loading decoded: %w", err)
	}

	engine := recongain.NewEngine()
	accumulated := channel.Numbers{Surround: 1}
	layer := channel.Numbers{Surround: 2}

	flag, gains, labels, err := engine.ComputeLayer(accumulated, layer, original, decoded)
	if err != nil {
		return fmt.Errorf("computing recon gain: %w", err)
	}

	fmt.Printf("recon_gain_flag: %012b\n", flag)
	fmt.Printf("demixed channels this transition introduces: %v\n", labels)
	fmt.Printf("gain vector: %v\n", gains)
	return nil
}

func loadStereoLabeledFrame(path string) (channel.LabeledFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reg := ingest.NewRegistry()
	dec, ok := reg.Get("wav")
	if !ok {
		return nil, fmt.Errorf("no wav decoder registered")
	}

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if src.Channels() != 2 {
		return nil, fmt.Errorf("%s: want a stereo file, got %d channels", path, src.Channels())
	}

	deinterleaved, err := ingest.Deinterleave(src)
	if err != nil {
		return nil, err
	}

	frame, err := ingest.AssignLabels(deinterleaved, []channel.Label{channel.L2, channel.R2})
	if err != nil {
		return nil, err
	}
	frame[channel.Mono] = ingest.DeriveMonoReference(frame[channel.L2], frame[channel.R2])
	// This demo has no independent DemixedR2 rendering to compare against, so
	// it stands the right channel in for it. A real caller would decode the
	// encoder's actual demixed-mono-to-stereo reconstruction here instead.
	frame[channel.DemixedR2] = frame[channel.R2]
	return frame, nil
}

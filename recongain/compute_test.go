// SPDX-License-Identifier: EPL-2.0

package recongain

import (
	"math"
	"testing"

	"github.com/go-iamf/paramgen/channel"
)

func TestDefaultComputerBelowFirstThreshold(t *testing.T) {
	original := channel.LabeledFrame{
		channel.DemixedR2: {1},
		channel.Mono:      {100000},
	}
	decoded := channel.LabeledFrame{
		channel.DemixedR2: {1},
	}

	gain, err := (DefaultComputer{}).ComputeReconGain(channel.DemixedR2, original, decoded)
	if err != nil {
		t.Fatalf("ComputeReconGain: %v", err)
	}
	if gain != 0 {
		t.Errorf("gain = %v, want 0", gain)
	}
}

func TestDefaultComputerAboveSecondThreshold(t *testing.T) {
	original := channel.LabeledFrame{
		channel.DemixedR2: {1000},
		channel.Mono:      {1000},
	}
	decoded := channel.LabeledFrame{
		channel.DemixedR2: {900},
	}

	gain, err := (DefaultComputer{}).ComputeReconGain(channel.DemixedR2, original, decoded)
	if err != nil {
		t.Fatalf("ComputeReconGain: %v", err)
	}
	if gain != 1 {
		t.Errorf("gain = %v, want 1", gain)
	}
}

func TestDefaultComputerBetweenThresholds(t *testing.T) {
	original := channel.LabeledFrame{
		channel.DemixedR2: {1000},
		channel.Mono:      {10000},
	}
	decoded := channel.LabeledFrame{
		channel.DemixedR2: {10000},
	}

	gain, err := (DefaultComputer{}).ComputeReconGain(channel.DemixedR2, original, decoded)
	if err != nil {
		t.Fatalf("ComputeReconGain: %v", err)
	}
	if math.Abs(gain-0.1) > 1e-9 {
		t.Errorf("gain = %v, want 0.1", gain)
	}
}

func TestDefaultComputerUnknownLabel(t *testing.T) {
	_, err := (DefaultComputer{}).ComputeReconGain(channel.Mono, channel.LabeledFrame{}, channel.LabeledFrame{})
	if err == nil {
		t.Fatal("ComputeReconGain: want error for a non-demixed label")
	}
}

func TestDefaultComputerMissingSamples(t *testing.T) {
	original := channel.LabeledFrame{channel.Mono: {1}}
	_, err := (DefaultComputer{}).ComputeReconGain(channel.DemixedR2, original, channel.LabeledFrame{})
	if err == nil {
		t.Fatal("ComputeReconGain: want error when the demixed label's own samples are missing")
	}
}

// SPDX-License-Identifier: EPL-2.0

// Package audioelement models the external audio-element definitions the
// parameter registry reads: scalable channel-layout elements built from
// cumulative layers.
package audioelement

import (
	"fmt"

	"github.com/go-iamf/paramgen/channel"
)

// validSurroundCounts and validHeightCounts enumerate the layouts spec.md
// §3 allows: {1,2,3,5,7} surround channels, {0,2,4} height channels.
var (
	validSurroundCounts = map[int]bool{1: true, 2: true, 3: true, 5: true, 7: true}
	validHeightCounts   = map[int]bool{0: true, 2: true, 4: true}
)

// Layer is one cumulative channel layer of a scalable channel layout.
type Layer struct {
	Channels           channel.Numbers
	ReconGainIsPresent bool
}

// Validate checks the layer's channel numbers are within the surround/height
// counts spec.md §3 allows.
func (l Layer) Validate() error {
	if !validSurroundCounts[l.Channels.Surround] {
		return fmt.Errorf("audioelement: unsupported surround channel count %d", l.Channels.Surround)
	}
	if !validHeightCounts[l.Channels.Height] {
		return fmt.Errorf("audioelement: unsupported height channel count %d", l.Channels.Height)
	}
	return nil
}

// AudioElement is the subset of an external audio-element definition the
// registry and recon-gain engine need: an ordered, cumulative stack of
// scalable channel layers.
type AudioElement struct {
	Layers []Layer
}

// Validate checks every layer independently.
func (a AudioElement) Validate() error {
	for i, l := range a.Layers {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("audioelement: layer %d: %w", i, err)
		}
	}
	return nil
}

// ChannelNumbersForLayers returns the Numbers of every layer, in order.
func (a AudioElement) ChannelNumbersForLayers() []channel.Numbers {
	out := make([]channel.Numbers, len(a.Layers))
	for i, l := range a.Layers {
		out[i] = l.Channels
	}
	return out
}

// ReconGainIsPresentFlags returns the recon_gain_is_present_flag of every
// layer, in order.
func (a AudioElement) ReconGainIsPresentFlags() []bool {
	out := make([]bool, len(a.Layers))
	for i, l := range a.Layers {
		out[i] = l.ReconGainIsPresent
	}
	return out
}

// SPDX-License-Identifier: EPL-2.0

package recongain

import (
	"log/slog"
	"math"

	"github.com/go-iamf/paramgen/channel"
)

// bitPosition maps a demixed label to its bit in the 12-bit recon_gain_flag,
// per spec.md §4.8. Several labels alias the same bit because a given layer
// transition only ever produces one of them: bit 0 is "the demixed left
// channel, whatever layer introduced it", bit 2 the analogous right channel.
// Bits 1 and 11 are reserved for center and LFE and are never set.
var bitPosition = map[channel.Label]uint{
	channel.DemixedL7:   0,
	channel.DemixedL5:   0,
	channel.DemixedL3:   0,
	channel.DemixedR7:   2,
	channel.DemixedR5:   2,
	channel.DemixedR3:   2,
	channel.DemixedR2:   2,
	channel.DemixedLs5:  3,
	channel.DemixedRs5:  4,
	channel.DemixedLtf2: 5,
	channel.DemixedRtf2: 6,
	channel.DemixedLrs7: 7,
	channel.DemixedRrs7: 8,
	channel.DemixedLtb4: 9,
	channel.DemixedRtb4: 10,
}

// PackGains converts a set of per-label recon gains into the wire-ready
// 12-bit flag plus 12-byte gain vector of spec.md §4.8. Gains for labels
// outside bitPosition are logged and skipped rather than failing the block:
// an encoder may compute gains for channels this layer doesn't carry.
func PackGains(gains map[channel.Label]float64) (uint16, [12]byte, error) {
	var flag uint16
	var vector [12]byte

	for label, gain := range gains {
		bit, ok := bitPosition[label]
		if !ok {
			slog.Error("recongain: skipping gain for unrecognized label", "label", label)
			continue
		}
		flag |= 1 << bit
		vector[bit] = quantizeGain(gain)
	}

	return flag, vector, nil
}

// quantizeGain maps a [0, 1] linear gain to the 8-bit fixed-point encoding
// spec.md §4.8 assigns to the gain vector: round(gain * 255), clamped.
func quantizeGain(gain float64) byte {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	return byte(math.Round(gain * 255))
}

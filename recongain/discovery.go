// SPDX-License-Identifier: EPL-2.0

package recongain

import (
	"fmt"

	"github.com/go-iamf/paramgen/channel"
)

// FindDemixedChannels reports which channels a layer transition from
// accumulated to layer introduces recon gain for. It mirrors the surround
// and height transition table walked by the original encoder's
// GetChannelsFromLayer/FindDemixedChannels pair: every surround count added
// on top of accumulated.Surround contributes the channels folded into it,
// and a height increase (or a surround increase past 3 while height holds at
// 2) contributes the corresponding height pair.
func FindDemixedChannels(accumulated, layer channel.Numbers) ([]channel.Label, error) {
	var demixed []channel.Label

	for surround := accumulated.Surround + 1; surround <= layer.Surround; surround++ {
		switch surround {
		case 2:
			if accumulated.Surround == 1 {
				demixed = append(demixed, channel.DemixedR2)
			}
		case 3:
			demixed = append(demixed, channel.DemixedL3, channel.DemixedR3)
		case 5:
			demixed = append(demixed, channel.DemixedLs5, channel.DemixedRs5)
		case 7:
			demixed = append(demixed, channel.DemixedL7, channel.DemixedR7, channel.DemixedLrs7, channel.DemixedRrs7)
		default:
			// Surround counts outside the scalable layout table (1, 4, 6)
			// introduce no recon-gain channels of their own; only a count
			// past the largest defined layout (7) is an error.
			if surround > 7 {
				return nil, fmt.Errorf("%w: %d", ErrUnsupportedSurroundCount, surround)
			}
		}
	}

	if accumulated.Height == 2 {
		switch {
		case layer.Height == 4:
			demixed = append(demixed, channel.DemixedLtb4, channel.DemixedRtb4)
		case layer.Height == 2 && accumulated.Surround == 3 && layer.Surround > 3:
			demixed = append(demixed, channel.DemixedLtf2, channel.DemixedRtf2)
		}
	}

	return demixed, nil
}

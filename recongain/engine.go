// SPDX-License-Identifier: EPL-2.0

package recongain

import (
	"fmt"

	"github.com/go-iamf/paramgen/channel"
)

// Engine composes FindDemixedChannels, a Computer, and PackGains into the
// per-layer recon gain subblock payload spec.md §4.8/§4.9 describes.
type Engine struct {
	Computer Computer
}

// NewEngine returns an Engine backed by DefaultComputer.
func NewEngine() Engine {
	return Engine{Computer: DefaultComputer{}}
}

// ComputeLayer computes the recon_gain_flag and gain vector for a single
// layer, given the channel numbers accumulated through layers below it, this
// layer's own channel numbers, and the original/decoded PCM for the current
// analysis window.
func (e Engine) ComputeLayer(accumulated, layer channel.Numbers, original, decoded channel.LabeledFrame) (uint16, [12]byte, []channel.Label, error) {
	demixed, err := FindDemixedChannels(accumulated, layer)
	if err != nil {
		return 0, [12]byte{}, nil, err
	}

	gains := make(map[channel.Label]float64, len(demixed))
	for _, label := range demixed {
		gain, err := e.Computer.ComputeReconGain(label, original, decoded)
		if err != nil {
			return 0, [12]byte{}, nil, fmt.Errorf("recongain: layer %+v: %w", layer, err)
		}
		gains[label] = gain
	}

	flag, vector, err := PackGains(gains)
	if err != nil {
		return 0, [12]byte{}, nil, err
	}
	return flag, vector, demixed, nil
}

// SPDX-License-Identifier: EPL-2.0

// Package ingest turns rendered PCM audio files into the
// channel.LabeledFrame windows the recongain engine and paramblock
// assembler compare against each other. It reuses the audio.Source /
// audio.Decoder abstraction and the formats/* codec adapters, adding a
// deinterleave-and-label step and a widened, 32-bit sample path the
// original 16-bit-oriented decoders did not need.
package ingest

import (
	"github.com/go-iamf/paramgen/audio"
	"github.com/go-iamf/paramgen/formats/aiff"
	"github.com/go-iamf/paramgen/formats/wav"
)

// NewRegistry returns an audio.Registry with a decoder registered for every
// container this module ingests as a per-object/per-label render: canonical
// PCM WAV and AIFF. Recon-gain comparison needs the original and decoded
// renders sample-for-sample, so only the pack's lossless containers are
// registered — a lossy codec re-encode of either side would corrupt the
// very differences the gain computation measures.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

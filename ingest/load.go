// SPDX-License-Identifier: EPL-2.0

package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-iamf/paramgen/audio"
	"github.com/go-iamf/paramgen/channel"
)

// LoadLabeledFrame decodes one render file per channel label — as an
// external renderer or the adm/splicer package would produce, one WAV or
// AIFF file per object/channel — and packs them into a single
// channel.LabeledFrame at a common sample rate. Files whose decoded
// rate does not match targetRate are resampled with audio.NewResampler;
// files carrying more than one channel are folded to mono with
// audio.NewMonoMixer before being assigned to their label, since a
// per-label render is expected to already be a single channel.
func LoadLabeledFrame(reg *audio.Registry, files map[channel.Label]string, targetRate int) (channel.LabeledFrame, error) {
	frame := make(channel.LabeledFrame, len(files))

	for label, path := range files {
		samples, err := loadOneLabel(reg, path, targetRate)
		if err != nil {
			return nil, fmt.Errorf("ingest: loading %s (%s): %w", label, path, err)
		}
		frame[label] = samples
	}

	return frame, nil
}

func loadOneLabel(reg *audio.Registry, path string, targetRate int) ([]channel.Sample, error) {
	format := formatFromExtension(path)
	dec, ok := reg.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if src.SampleRate() != targetRate {
		src = audio.NewResampler(src, targetRate)
	}
	if src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}

	deinterleaved, err := Deinterleave(src)
	if err != nil {
		return nil, err
	}
	if len(deinterleaved) == 0 {
		return nil, nil
	}
	return deinterleaved[0], nil
}

// formatFromExtension maps a file's extension to the registry key this
// package's decoders are registered under.
func formatFromExtension(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

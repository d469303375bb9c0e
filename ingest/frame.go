// SPDX-License-Identifier: EPL-2.0

package ingest

import (
	"fmt"
	"io"

	"github.com/go-iamf/paramgen/audio"
	"github.com/go-iamf/paramgen/channel"
	"github.com/go-iamf/paramgen/utils"
)

// Deinterleave drains src to EOF and splits its interleaved float32 stream
// into one channel.Sample slice per channel, widening every sample to the
// module's internal 32-bit representation via utils.Float32ToInt32.
func Deinterleave(src audio.Source) ([][]channel.Sample, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, fmt.Errorf("ingest: source reports %d channels", channels)
	}

	bufSize := src.BufSize()
	if bufSize <= 0 {
		bufSize = 4096
	}
	// Round the buffer down to a whole number of frames so a partial frame
	// is never split across two ReadSamples calls.
	bufSize -= bufSize % channels
	if bufSize == 0 {
		bufSize = channels
	}
	buf := make([]float32, bufSize)

	out := make([][]channel.Sample, channels)

	for {
		n, err := src.ReadSamples(buf)
		for i := 0; i < n; i++ {
			ch := i % channels
			out[ch] = append(out[ch], utils.Float32ToInt32(buf[i]))
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ingest: reading samples: %w", err)
		}
		if n == 0 {
			return out, nil
		}
	}
}

// AssignLabels zips deinterleaved per-channel sample slices to caller-given
// channel labels in the same order the source's channels are interleaved.
func AssignLabels(deinterleaved [][]channel.Sample, labels []channel.Label) (channel.LabeledFrame, error) {
	if len(deinterleaved) != len(labels) {
		return nil, fmt.Errorf("%w: %d channels, %d labels", ErrLabelCountMismatch, len(deinterleaved), len(labels))
	}

	frame := make(channel.LabeledFrame, len(labels))
	for i, label := range labels {
		frame[label] = deinterleaved[i]
	}
	return frame, nil
}

// DeriveMonoReference downmixes a left/right pair into the mono reference
// signal recongain's mixedReferenceFor table expects when a scenario decodes
// only a stereo file and never separately renders its mono ancestor layer.
// It generalizes the teacher's audio.MonoMixer averaging rule to the
// int32 sample domain.
func DeriveMonoReference(left, right []channel.Sample) []channel.Sample {
	n := min(len(left), len(right))
	mono := make([]channel.Sample, n)
	for i := 0; i < n; i++ {
		mono[i] = channel.Sample((int64(left[i]) + int64(right[i])) / 2)
	}
	return mono
}

// SPDX-License-Identifier: EPL-2.0

package paramblock

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-iamf/paramgen/channel"
	"github.com/go-iamf/paramgen/paramdef"
	"github.com/go-iamf/paramgen/registry"
)

// GenerateReconGain drains the registry's recon-gain queue and assembles one
// Block per queued metadata record. original and decoded map an audio
// element id to the LabeledFrame of PCM for the current analysis window,
// per spec.md §6.
func (a *Assembler) GenerateReconGain(original, decoded map[uint32]channel.LabeledFrame) ([]WithData, error) {
	pending := a.registry.DrainQueue(paramdef.ReconGain)
	out := make([]WithData, 0, len(pending))
	for _, meta := range pending {
		block, err := a.assembleReconGainBlock(meta, original, decoded)
		if err != nil {
			return nil, err
		}
		out = append(out, block)
	}
	return out, nil
}

func (a *Assembler) assembleReconGainBlock(meta registry.BlockMetadata, original, decoded map[uint32]channel.LabeledFrame) (WithData, error) {
	perID, ok := a.registry.PerID(meta.ParameterID)
	if !ok {
		return WithData{}, fmt.Errorf("%w: %d", registry.ErrUnknownParameterID, meta.ParameterID)
	}

	duration, start, end, err := a.resolveWindow(perID.Definition, meta)
	if err != nil {
		return WithData{}, err
	}
	if err := validateSubblockCount(perID.Definition, meta, duration); err != nil {
		return WithData{}, err
	}

	originalFrame, ok := original[perID.AudioElementID]
	if !ok {
		return WithData{}, fmt.Errorf("%w: audio element id %d (original)", ErrMissingFrame, perID.AudioElementID)
	}
	decodedFrame, ok := decoded[perID.AudioElementID]
	if !ok {
		return WithData{}, fmt.Errorf("%w: audio element id %d (decoded)", ErrMissingFrame, perID.AudioElementID)
	}

	accumulated, layers := accumulateLayers(perID.LayerChannels)

	subblocks := make([]Subblock, len(meta.Subblocks))
	var mismatches []string

	for i, sb := range meta.Subblocks {
		input, ok := sb.Data.(ReconGainSubblockInput)
		if !ok {
			return WithData{}, fmt.Errorf("%w: parameter id %d, subblock %d",
				ErrWrongSubblockPayload, meta.ParameterID, i)
		}
		if perID.NumLayers > 1 && len(input.Layers) != perID.NumLayers {
			return WithData{}, fmt.Errorf("%w: parameter id %d, subblock %d, have %d layers, want %d",
				ErrLayerCountMismatch, meta.ParameterID, i, len(input.Layers), perID.NumLayers)
		}

		for k := 0; k < perID.NumLayers; k++ {
			flag, vector, demixed, err := a.engine.ComputeLayer(accumulated[k], layers[k], originalFrame, decodedFrame)
			if err != nil {
				return WithData{}, fmt.Errorf("paramblock: parameter id %d, subblock %d, layer %d: %w",
					meta.ParameterID, i, k, err)
			}

			if perID.ReconGainFlags[k] != (len(demixed) > 0) {
				return WithData{}, fmt.Errorf("%w: parameter id %d, layer %d", ErrPresenceFlagMismatch, meta.ParameterID, k)
			}

			if a.shouldLogVerbose() {
				slog.Debug("paramblock: computed recon gain",
					"parameter_id", meta.ParameterID, "subblock", i, "layer", k, "demixed", demixed)
			}

			if !meta.OverrideComputedReconGains {
				if diff := diffReconGainLayer(flag, vector, input.Layers[k]); diff != "" {
					slog.Error("paramblock: recon gain mismatch",
						"parameter_id", meta.ParameterID, "subblock", i, "layer", k, "diff", diff)
					mismatches = append(mismatches, fmt.Sprintf("subblock %d, layer %d: %s", i, k, diff))
				}
			}
		}

		subblocks[i] = Subblock{Duration: subblockDuration(sb, meta), ReconGainLayers: input.Layers}
	}

	if len(mismatches) > 0 {
		return WithData{}, fmt.Errorf("%w: parameter id %d:\n%s",
			ErrReconGainMismatch, meta.ParameterID, strings.Join(mismatches, "\n"))
	}

	return WithData{
		Block: Block{
			ParameterID:    meta.ParameterID,
			StartTimestamp: start,
			EndTimestamp:   end,
			Subblocks:      subblocks,
		},
		StartTimestamp: start,
		EndTimestamp:   end,
	}, nil
}

// diffReconGainLayer returns a human-readable description of every byte
// index at which computed disagrees with supplied, or "" if they match.
func diffReconGainLayer(computedFlag uint16, computedVector [12]byte, supplied ReconGainLayer) string {
	var bad []string
	if computedFlag != supplied.Flag {
		bad = append(bad, fmt.Sprintf("flag %012b != %012b", computedFlag, supplied.Flag))
	}
	for i := 0; i < 12; i++ {
		if computedVector[i] != supplied.Vector[i] {
			bad = append(bad, fmt.Sprintf("byte %d: %d != %d", i, computedVector[i], supplied.Vector[i]))
		}
	}
	if len(bad) == 0 {
		return ""
	}
	return strings.Join(bad, ", ")
}

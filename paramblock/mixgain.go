// SPDX-License-Identifier: EPL-2.0

package paramblock

import (
	"fmt"

	"github.com/go-iamf/paramgen/mixgain"
	"github.com/go-iamf/paramgen/paramdef"
	"github.com/go-iamf/paramgen/registry"
)

// GenerateMixGain drains the registry's mix-gain queue and assembles one
// Block per queued metadata record.
func (a *Assembler) GenerateMixGain() ([]WithData, error) {
	pending := a.registry.DrainQueue(paramdef.MixGain)
	out := make([]WithData, 0, len(pending))
	for _, meta := range pending {
		block, err := a.assembleMixGainBlock(meta)
		if err != nil {
			return nil, err
		}
		out = append(out, block)
	}
	return out, nil
}

func (a *Assembler) assembleMixGainBlock(meta registry.BlockMetadata) (WithData, error) {
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

	subblocks := make([]Subblock, len(meta.Subblocks))
	for i, sb := range meta.Subblocks {
		input, ok := sb.Data.(MixGainSubblockInput)
		if !ok {
			return WithData{}, fmt.Errorf("%w: parameter id %d, subblock %d",
				ErrWrongSubblockPayload, meta.ParameterID, i)
		}
		data, err := mixgain.Build(input.Animation)
		if err != nil {
			return WithData{}, fmt.Errorf("paramblock: parameter id %d, subblock %d: %w", meta.ParameterID, i, err)
		}
		subblocks[i] = Subblock{Duration: subblockDuration(sb, meta), MixGain: &data}
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

// subblockDuration resolves one subblock's duration: its own if
// constant_subblock_duration is 0, else the record's constant value.
func subblockDuration(sb registry.SubblockMetadata, meta registry.BlockMetadata) uint32 {
	if meta.ConstantSubblockDuration == 0 && sb.Duration != nil {
		return *sb.Duration
	}
	return meta.ConstantSubblockDuration
}

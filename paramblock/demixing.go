// SPDX-License-Identifier: EPL-2.0

package paramblock

import (
	"fmt"

	"github.com/go-iamf/paramgen/demixing"
	"github.com/go-iamf/paramgen/paramdef"
	"github.com/go-iamf/paramgen/registry"
)

// GenerateDemixing drains the registry's demixing queue and assembles one
// Block per queued metadata record. Per spec.md §4.6 every demixing record
// must carry exactly one subblock.
func (a *Assembler) GenerateDemixing() ([]WithData, error) {
	pending := a.registry.DrainQueue(paramdef.Demixing)
	out := make([]WithData, 0, len(pending))
	for _, meta := range pending {
		block, err := a.assembleDemixingBlock(meta)
		if err != nil {
			return nil, err
		}
		out = append(out, block)
	}
	return out, nil
}

func (a *Assembler) assembleDemixingBlock(meta registry.BlockMetadata) (WithData, error) {
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
	if err := demixing.ValidateSubblockCount(len(meta.Subblocks)); err != nil {
		return WithData{}, fmt.Errorf("paramblock: parameter id %d: %w", meta.ParameterID, err)
	}

	sb := meta.Subblocks[0]
	input, ok := sb.Data.(DemixingSubblockInput)
	if !ok {
		return WithData{}, fmt.Errorf("%w: parameter id %d, subblock 0", ErrWrongSubblockPayload, meta.ParameterID)
	}
	data, err := demixing.Build(input.Mode, input.ReservedBits)
	if err != nil {
		return WithData{}, fmt.Errorf("paramblock: parameter id %d: %w", meta.ParameterID, err)
	}

	return WithData{
		Block: Block{
			ParameterID:    meta.ParameterID,
			StartTimestamp: start,
			EndTimestamp:   end,
			Subblocks:      []Subblock{{Duration: subblockDuration(sb, meta), Demixing: &data}},
		},
		StartTimestamp: start,
		EndTimestamp:   end,
	}, nil
}

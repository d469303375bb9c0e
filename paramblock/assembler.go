// SPDX-License-Identifier: EPL-2.0

package paramblock

import (
	"fmt"

	"github.com/go-iamf/paramgen/channel"
	"github.com/go-iamf/paramgen/paramdef"
	"github.com/go-iamf/paramgen/recongain"
	"github.com/go-iamf/paramgen/registry"
	"github.com/go-iamf/paramgen/timing"
)

// Assembler composes a Registry, a timing.Module, and a recongain.Engine
// into the three GenerateX entry points of spec.md §4.10.
type Assembler struct {
	registry *registry.Registry
	timing   timing.Module
	engine   recongain.Engine

	// VerboseFirstBlockOnly gates the extra per-label recon-gain logging
	// GenerateReconGain emits: per spec.md §9's redesign note this replaces
	// the source's mutable "have we logged yet" instance state.
	VerboseFirstBlockOnly bool
	loggedVerboseOnce      bool
}

// NewAssembler returns an Assembler backed by reg, timingModule, and engine.
func NewAssembler(reg *registry.Registry, timingModule timing.Module, engine recongain.Engine, verboseFirstBlockOnly bool) *Assembler {
	return &Assembler{
		registry:              reg,
		timing:                timingModule,
		engine:                engine,
		VerboseFirstBlockOnly: verboseFirstBlockOnly,
	}
}

// shouldLogVerbose reports whether this call should emit the extra
// per-label logging, and records that a block has now been processed.
func (a *Assembler) shouldLogVerbose() bool {
	if !a.VerboseFirstBlockOnly {
		return true
	}
	log := !a.loggedVerboseOnce
	a.loggedVerboseOnce = true
	return log
}

// resolveWindow implements spec.md §4.10 steps 1-2: resolve this record's
// duration from its mode, then confirm the timing module agrees with the
// requested start timestamp.
func (a *Assembler) resolveWindow(def paramdef.Definition, meta registry.BlockMetadata) (duration uint32, start, end uint64, err error) {
	duration = def.Duration
	if def.Mode == paramdef.ModePerBlock {
		duration = meta.Duration
	}

	start, end, err = a.timing.GetNextParameterBlockTimestamps(meta.ParameterID, meta.StartTimestamp, duration)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("paramblock: parameter id %d: %w", meta.ParameterID, err)
	}
	if start != meta.StartTimestamp {
		return 0, 0, 0, fmt.Errorf("%w: parameter id %d, requested %d, got %d",
			ErrTimestampMismatch, meta.ParameterID, meta.StartTimestamp, start)
	}
	return duration, start, end, nil
}

// validateSubblockCount implements spec.md §4.10 step 3.
func validateSubblockCount(def paramdef.Definition, meta registry.BlockMetadata, duration uint32) error {
	if def.Mode != paramdef.ModePerBlock {
		return nil
	}

	if meta.ConstantSubblockDuration == 0 {
		for i, sb := range meta.Subblocks {
			if sb.Duration == nil {
				return fmt.Errorf("%w: parameter id %d, subblock %d",
					ErrMissingSubblockDuration, meta.ParameterID, i)
			}
		}
		if int(meta.NumSubblocks) != len(meta.Subblocks) {
			return fmt.Errorf("%w: parameter id %d, declared %d, supplied %d",
				ErrSubblockCountMismatch, meta.ParameterID, meta.NumSubblocks, len(meta.Subblocks))
		}
		return nil
	}

	expected := duration / meta.ConstantSubblockDuration
	if duration%meta.ConstantSubblockDuration != 0 {
		expected++
	}
	if meta.NumSubblocks != expected || int(meta.NumSubblocks) != len(meta.Subblocks) {
		return fmt.Errorf("%w: parameter id %d, declared %d, derived %d, supplied %d",
			ErrSubblockCountMismatch, meta.ParameterID, meta.NumSubblocks, expected, len(meta.Subblocks))
	}
	return nil
}

// accumulateLayers walks an audio element's layer channel numbers in order,
// pairing each layer with the cumulative numbers of every layer below it.
func accumulateLayers(layerChannels []channel.Numbers) (accumulated, layers []channel.Numbers) {
	accumulated = make([]channel.Numbers, len(layerChannels))
	prev := channel.Numbers{}
	for i, n := range layerChannels {
		accumulated[i] = prev
		prev = n
	}
	return accumulated, layerChannels
}

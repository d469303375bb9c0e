// SPDX-License-Identifier: EPL-2.0

// Package registry implements the parameter registry (spec.md §4.4): it
// correlates parameter ids with their definitions and, for recon-gain
// parameters, with the scalable channel layout of the audio element they
// describe. The per-id metadata is written only by Initialize. The queues of
// pending block metadata are held in the same Registry and are modified by
// AddMetadata and DrainQueue without locking, so a Registry is not safe for
// concurrent use.
package registry

import (
	"fmt"

	"github.com/go-iamf/paramgen/audioelement"
	"github.com/go-iamf/paramgen/channel"
	"github.com/go-iamf/paramgen/paramdef"
)

// PerIDMetadata is the immutable, per-parameter-id snapshot spec.md §3
// describes. Parameter-block builders hold read-only references to it.
type PerIDMetadata struct {
	Type           paramdef.Type
	Definition     paramdef.Definition
	NumLayers      int
	ReconGainFlags []bool
	LayerChannels  []channel.Numbers
	AudioElementID uint32
}

// SubblockMetadata is one subblock of an incoming ParameterBlockMetadata
// record. Data holds the type-specific payload (a mixgain, demixing, or
// recon-gain variant); the registry never inspects it, it only routes the
// enclosing BlockMetadata to the queue matching its parameter id's type.
type SubblockMetadata struct {
	// Duration is non-nil only when the per-id metadata's
	// ConstantSubblockDuration is 0, per spec.md §4.10 rule 3.
	Duration *uint32
	Data     any
}

// BlockMetadata is the Go analogue of ParameterBlockObuMetadata: everything
// needed to build one parameter block for a given parameter id.
type BlockMetadata struct {
	ParameterID              uint32
	StartTimestamp           uint64
	Duration                 uint32
	ConstantSubblockDuration uint32
	NumSubblocks             uint32
	Subblocks                []SubblockMetadata

	// OverrideComputedReconGains is only meaningful for recon-gain records.
	// When false the assembler recomputes every gain and requires a
	// bit-for-bit match against Subblocks' user-supplied values, per
	// spec.md §4.10 rule 4; when true the user-supplied values are taken
	// as-is and no recomputation happens.
	OverrideComputedReconGains bool
}

// Registry holds per-id metadata and the typed queues of pending block
// metadata awaiting assembly.
type Registry struct {
	perID map[uint32]PerIDMetadata
	queue map[paramdef.Type][]BlockMetadata
}

// New returns an empty Registry. Call Initialize before AddMetadata.
func New() *Registry {
	return &Registry{
		perID: make(map[uint32]PerIDMetadata),
		queue: make(map[paramdef.Type][]BlockMetadata),
	}
}

// Initialize walks defs, builds a PerIDMetadata snapshot for each parameter
// id, and dereferences ReconGain definitions' AudioElementID against
// audioElements. Per spec.md §9 the audio-element back-reference is resolved
// here and only here; the registry never retains a pointer to the element.
func (r *Registry) Initialize(
	audioElements map[uint32]audioelement.AudioElement,
	defs map[uint32]paramdef.Definition,
) error {
	for id, def := range defs {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("registry: parameter id %d: %w", id, err)
		}

		meta := PerIDMetadata{
			Type:       def.Type,
			Definition: def,
		}

		if def.Type == paramdef.ReconGain {
			element, ok := audioElements[def.AudioElementID]
			if !ok {
				return fmt.Errorf("%w: audio element id %d, parameter id %d",
					ErrAudioElementNotFound, def.AudioElementID, id)
			}
			if err := element.Validate(); err != nil {
				return fmt.Errorf("registry: parameter id %d: %w", id, err)
			}
			meta.AudioElementID = def.AudioElementID
			meta.NumLayers = len(element.Layers)
			meta.ReconGainFlags = element.ReconGainIsPresentFlags()
			meta.LayerChannels = element.ChannelNumbersForLayers()
		}

		r.perID[id] = meta
	}

	return nil
}

// PerID returns the PerIDMetadata registered for id.
func (r *Registry) PerID(id uint32) (PerIDMetadata, bool) {
	meta, ok := r.perID[id]
	return meta, ok
}

// AddMetadata routes meta into the typed queue matching its parameter id's
// registered type. Unknown ids fail per spec.md §4.4.
func (r *Registry) AddMetadata(meta BlockMetadata) error {
	perID, ok := r.perID[meta.ParameterID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownParameterID, meta.ParameterID)
	}
	r.queue[perID.Type] = append(r.queue[perID.Type], meta)
	return nil
}

// DrainQueue returns and clears every BlockMetadata queued for t.
func (r *Registry) DrainQueue(t paramdef.Type) []BlockMetadata {
	pending := r.queue[t]
	r.queue[t] = nil
	return pending
}

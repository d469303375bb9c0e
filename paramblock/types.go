// SPDX-License-Identifier: EPL-2.0

// Package paramblock assembles registry-queued metadata plus the mixgain,
// demixing, and recongain builders into OBU-ready parameter blocks, per
// spec.md §4.10.
package paramblock

import (
	"github.com/go-iamf/paramgen/demixing"
	"github.com/go-iamf/paramgen/mixgain"
)

// ReconGainLayer is one RG_layer of a ReconGainInfoParameterData: the 12-bit
// presence flag plus the 12-byte gain vector of spec.md §4.8.
type ReconGainLayer struct {
	Flag   uint16
	Vector [12]byte
}

// Subblock is one assembled subblock. Exactly one of MixGain, Demixing, or
// ReconGainLayers is populated, matching the enclosing block's parameter
// type.
type Subblock struct {
	Duration       uint32
	MixGain        *mixgain.Data
	Demixing       *demixing.Data
	ReconGainLayers []ReconGainLayer
}

// Block is the Go analogue of a ParameterBlock: a parameter id, its
// [start, end) window, and its subblocks.
type Block struct {
	ParameterID    uint32
	StartTimestamp uint64
	EndTimestamp   uint64
	Subblocks      []Subblock
}

// WithData pairs an assembled Block with the timing window the caller
// requested it for, mirroring ParameterBlockWithData.
type WithData struct {
	Block          Block
	StartTimestamp uint64
	EndTimestamp   uint64
}

// MixGainSubblockInput is the per-subblock input a mix-gain metadata record
// carries, queued via registry.SubblockMetadata.Data.
type MixGainSubblockInput struct {
	Animation mixgain.Animation
}

// DemixingSubblockInput is the per-subblock input a demixing metadata record
// carries, queued via registry.SubblockMetadata.Data.
type DemixingSubblockInput struct {
	Mode         demixing.Mode
	ReservedBits uint8
}

// ReconGainSubblockInput is the per-subblock input a recon-gain metadata
// record carries: one user-supplied layer entry per audio-element layer,
// queued via registry.SubblockMetadata.Data.
type ReconGainSubblockInput struct {
	Layers []ReconGainLayer
}

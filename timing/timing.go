// SPDX-License-Identifier: EPL-2.0

// Package timing defines the timing-module contract (spec.md C5): an
// external collaborator that assigns [start, end) timestamps to successive
// parameter blocks of a given parameter id. This package is a contract plus
// a concrete reference implementation, not the encoder's real timeline —
// a full encoder wires its own Module that tracks frame boundaries across
// every OBU type, not just parameter blocks.
package timing

import "fmt"

// Module assigns [start, end) timestamps to parameter blocks. Implementations
// must reject out-of-order calls for a given parameter id: per spec.md §5,
// successive metadata records for one id arrive and must be timestamped in
// FIFO order.
type Module interface {
	// GetNextParameterBlockTimestamps returns the [start, end) window for the
	// next block of parameterID, given its duration. requestedStart is the
	// caller's expectation, forwarded so implementations can validate it.
	GetNextParameterBlockTimestamps(parameterID uint32, requestedStart uint64, duration uint32) (start, end uint64, err error)
}

// SequentialModule is a reference Module that assigns contiguous,
// non-overlapping windows per parameter id starting at timestamp 0. It never
// itself rejects a requestedStart; callers compare the returned start
// against what they requested, per spec.md §4.10 step 2.
type SequentialModule struct {
	next map[uint32]uint64
}

// NewSequentialModule returns an empty SequentialModule.
func NewSequentialModule() *SequentialModule {
	return &SequentialModule{next: make(map[uint32]uint64)}
}

// GetNextParameterBlockTimestamps implements Module.
func (m *SequentialModule) GetNextParameterBlockTimestamps(parameterID uint32, requestedStart uint64, duration uint32) (uint64, uint64, error) {
	if duration == 0 {
		return 0, 0, fmt.Errorf("timing: parameter id %d: duration must be > 0", parameterID)
	}
	start := m.next[parameterID]
	end := start + uint64(duration)
	m.next[parameterID] = end
	return start, end, nil
}

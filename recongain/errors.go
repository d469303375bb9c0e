// SPDX-License-Identifier: EPL-2.0

package recongain

import "errors"

var (
	// ErrUnsupportedSurroundCount is returned when a layer transition would
	// require more than 7 surround channels.
	ErrUnsupportedSurroundCount = errors.New("recongain: unsupported number of surround channels")
	// ErrSamplesNotFound is returned when ComputeReconGain cannot find the
	// original, mixed-reference, or decoded samples it needs for a label.
	ErrSamplesNotFound = errors.New("recongain: required samples not found for label")
)

// SPDX-License-Identifier: EPL-2.0

package splicer

import "errors"

var (
	// ErrChannelCountMismatch is returned when the total track-UID count
	// across all objects does not equal the input fmt chunk's channel count.
	ErrChannelCountMismatch = errors.New("splicer: total track-UID count does not match fmt channel count")
	// ErrDataNotBlockAligned is returned when the input data chunk's size is
	// not an integral multiple of the input fmt chunk's block align.
	ErrDataNotBlockAligned = errors.New("splicer: data chunk size is not a multiple of block align")
)

// SPDX-License-Identifier: EPL-2.0

package bw64

import "errors"

var (
	// ErrBadMagic is returned when the top-level chunk is not RIFF/BW64
	// wrapping WAVE.
	ErrBadMagic = errors.New("bw64: not a RIFF/BW64 WAVE file")
	// ErrMissingFormatChunk is returned when no "fmt " sub-chunk is present.
	ErrMissingFormatChunk = errors.New("bw64: missing fmt chunk")
	// ErrMissingDataChunk is returned when no "data" sub-chunk is present.
	ErrMissingDataChunk = errors.New("bw64: missing data chunk")
	// ErrTruncatedChunk is returned when a chunk header or its declared
	// payload extends past the end of the file.
	ErrTruncatedChunk = errors.New("bw64: chunk extends past end of file")
	// ErrZeroChannels is returned when the fmt chunk declares zero channels.
	ErrZeroChannels = errors.New("bw64: fmt chunk declares zero channels")
	// ErrShortFormatChunk is returned when the fmt chunk is smaller than the
	// 16 bytes a canonical PCM descriptor requires.
	ErrShortFormatChunk = errors.New("bw64: fmt chunk shorter than 16 bytes")
	// ErrDataNotBlockAligned is returned when the data chunk's declared size
	// is not a multiple of the fmt chunk's block align.
	ErrDataNotBlockAligned = errors.New("bw64: data chunk size is not a multiple of block align")
)

// SPDX-License-Identifier: EPL-2.0

// Package bw64 parses the chunked RIFF/BW64 container ADM-BWF files use: a
// top-level RIFF (or BW64) chunk wrapping WAVE, followed by an ordered
// sequence of sub-chunks. It produces a chunk index and the canonical fmt
// descriptor the splicer and ADM interpreter need, without decoding any PCM
// itself.
//
// Parsing is hand-rolled over encoding/binary rather than built on a RIFF
// library: the splicer needs exact file offsets for every chunk (including
// raw, unparsed axml bytes) that higher-level WAV decoders in this module's
// ingest package do not expose.
package bw64

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Format is the canonical fmt sub-chunk descriptor, spec.md §4.1.
type Format struct {
	FormatTag     uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Chunk is one sub-chunk's location: its four-character id, the file offset
// of its payload (immediately after the 8-byte id+size header), and the
// payload's declared size.
type Chunk struct {
	ID     string
	Offset int64
	Size   uint32
}

// Index is the result of parsing a RIFF/BW64 file: the fmt descriptor, the
// full ordered chunk list, the data chunk's location, and the raw axml
// payload if present.
type Index struct {
	Format    Format
	Chunks    []Chunk
	DataChunk Chunk
	AXML      []byte
}

// Read parses r's RIFF/BW64/WAVE structure and returns its chunk index. r
// must support Seek so axml and other sub-chunk payloads can be read without
// buffering the whole file.
func Read(r io.ReadSeeker) (*Index, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("bw64: seeking to end: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("bw64: seeking to start: %w", err)
	}

	var outer [12]byte
	if _, err := io.ReadFull(r, outer[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	magic := string(outer[0:4])
	if magic != "RIFF" && magic != "BW64" {
		return nil, ErrBadMagic
	}
	if string(outer[8:12]) != "WAVE" {
		return nil, ErrBadMagic
	}

	idx := &Index{}
	offset := int64(12)

	for offset < size {
		var header [8]byte
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, fmt.Errorf("bw64: seeking to chunk at %d: %w", offset, err)
		}
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return nil, fmt.Errorf("%w: chunk header at offset %d", ErrTruncatedChunk, offset)
		}

		id := string(header[0:4])
		payloadSize := binary.LittleEndian.Uint32(header[4:8])
		payloadOffset := offset + 8

		if payloadOffset+int64(payloadSize) > size {
			return nil, fmt.Errorf("%w: chunk %q at offset %d, size %d", ErrTruncatedChunk, id, offset, payloadSize)
		}

		chunk := Chunk{ID: id, Offset: payloadOffset, Size: payloadSize}
		idx.Chunks = append(idx.Chunks, chunk)

		switch id {
		case "fmt ":
			format, err := readFormat(r, payloadOffset, payloadSize)
			if err != nil {
				return nil, err
			}
			idx.Format = format
		case "data":
			idx.DataChunk = chunk
		case "axml":
			payload := make([]byte, payloadSize)
			if _, err := r.Seek(payloadOffset, io.SeekStart); err != nil {
				return nil, fmt.Errorf("bw64: seeking to axml payload: %w", err)
			}
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, fmt.Errorf("%w: axml chunk: %v", ErrTruncatedChunk, err)
			}
			idx.AXML = payload
		}

		offset = payloadOffset + int64(payloadSize)
		if payloadSize%2 == 1 {
			offset++ // RIFF chunks are word-aligned; skip the pad byte.
		}
	}

	if !hasChunk(idx.Chunks, "fmt ") {
		return nil, ErrMissingFormatChunk
	}
	if !hasChunk(idx.Chunks, "data") {
		return nil, ErrMissingDataChunk
	}
	if idx.Format.Channels == 0 {
		return nil, ErrZeroChannels
	}
	if idx.Format.BlockAlign != 0 && idx.DataChunk.Size%uint32(idx.Format.BlockAlign) != 0 {
		return nil, fmt.Errorf("%w: data size %d, block align %d", ErrDataNotBlockAligned, idx.DataChunk.Size, idx.Format.BlockAlign)
	}

	return idx, nil
}

func readFormat(r io.ReadSeeker, offset int64, size uint32) (Format, error) {
	if size < 16 {
		return Format{}, ErrShortFormatChunk
	}
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return Format{}, fmt.Errorf("bw64: seeking to fmt payload: %w", err)
	}
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Format{}, fmt.Errorf("%w: fmt chunk", ErrTruncatedChunk)
	}
	return Format{
		FormatTag:     binary.LittleEndian.Uint16(buf[0:2]),
		Channels:      binary.LittleEndian.Uint16(buf[2:4]),
		SampleRate:    binary.LittleEndian.Uint32(buf[4:8]),
		ByteRate:      binary.LittleEndian.Uint32(buf[8:12]),
		BlockAlign:    binary.LittleEndian.Uint16(buf[12:14]),
		BitsPerSample: binary.LittleEndian.Uint16(buf[14:16]),
	}, nil
}

func hasChunk(chunks []Chunk, id string) bool {
	for _, c := range chunks {
		if c.ID == id {
			return true
		}
	}
	return false
}

// ReadAt reads exactly len(dst) bytes from r starting at the chunk payload
// offset off, for splicer use.
func ReadAt(r io.ReadSeeker, off int64, dst []byte) error {
	if _, err := r.Seek(off, io.SeekStart); err != nil {
		return fmt.Errorf("bw64: seeking to %d: %w", off, err)
	}
	_, err := io.ReadFull(r, dst)
	return err
}

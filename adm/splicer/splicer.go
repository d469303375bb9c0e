// SPDX-License-Identifier: EPL-2.0

// Package splicer writes one canonical WAV file per ADM audio object, given
// an already-parsed chunk index and object->track-UID table. It generalizes
// the teacher's fixed mono 16-bit WriteWAV16 into an arbitrary
// channel-count, arbitrary bit-depth writer, per spec.md §4.3.
package splicer

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-iamf/paramgen/adm/bw64"
	"github.com/go-iamf/paramgen/adm/interpreter"
)

// Splice writes one WAV file per object in objects, named
// "<prefix>_converted<k>.wav" for k = 1, 2, ..., into outDir. On any failure
// every file this call created is removed before the error is returned, per
// spec.md §4.3 step 5 and §5's cleanup requirement.
func Splice(r io.ReadSeeker, idx *bw64.Index, objects []interpreter.Object, outDir, prefix string) ([]string, error) {
	if len(objects) == 0 {
		return nil, nil
	}

	totalChannels := 0
	for _, obj := range objects {
		totalChannels += len(obj.TrackUIDs)
	}
	if totalChannels != int(idx.Format.Channels) {
		return nil, fmt.Errorf("%w: %d tracks across %d objects, fmt declares %d channels",
			ErrChannelCountMismatch, totalChannels, len(objects), idx.Format.Channels)
	}
	if idx.Format.BlockAlign == 0 || idx.DataChunk.Size%uint32(idx.Format.BlockAlign) != 0 {
		return nil, fmt.Errorf("%w: data size %d, block align %d",
			ErrDataNotBlockAligned, idx.DataChunk.Size, idx.Format.BlockAlign)
	}

	data := make([]byte, idx.DataChunk.Size)
	if err := bw64.ReadAt(r, idx.DataChunk.Offset, data); err != nil {
		return nil, fmt.Errorf("splicer: reading data chunk: %w", err)
	}

	bytesPerSample := int(idx.Format.BitsPerSample+7) / 8
	numFrames := int(idx.DataChunk.Size) / int(idx.Format.BlockAlign)

	var written []string
	cleanup := func() {
		for _, path := range written {
			os.Remove(path)
		}
	}

	channelOffset := 0
	for k, obj := range objects {
		m := len(obj.TrackUIDs)
		if m == 0 {
			channelOffset += m
			continue
		}

		path, err := spliceOne(outDir, prefix, k+1, idx.Format, data, int(idx.Format.BlockAlign), bytesPerSample, channelOffset, m, numFrames)
		if err != nil {
			cleanup()
			return nil, err
		}
		written = append(written, path)
		channelOffset += m
	}

	return written, nil
}

func spliceOne(outDir, prefix string, index int, format bw64.Format, data []byte, inputBlockAlign, bytesPerSample, channelOffset, channels, numFrames int) (string, error) {
	outBlockAlign := channels * bytesPerSample
	outData := make([]byte, numFrames*outBlockAlign)

	srcChannelByteOffset := channelOffset * bytesPerSample
	copyWidth := channels * bytesPerSample
	for f := 0; f < numFrames; f++ {
		src := f*inputBlockAlign + srcChannelByteOffset
		dst := f * outBlockAlign
		copy(outData[dst:dst+copyWidth], data[src:src+copyWidth])
	}

	path := filepath.Join(outDir, fmt.Sprintf("%s_converted%d.wav", prefix, index))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("splicer: creating %s: %w", path, err)
	}
	defer f.Close()

	if err := writeWAV(f, format.FormatTag, uint16(channels), format.SampleRate, format.BitsPerSample, outData); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("splicer: writing %s: %w", path, err)
	}
	return path, nil
}

// writeWAV writes a canonical RIFF/WAVE file with exactly two sub-chunks,
// fmt (16 bytes) and data, per spec.md §6.
func writeWAV(w io.Writer, formatTag, channels uint16, sampleRate uint32, bitsPerSample uint16, data []byte) error {
	bytesPerSample := uint32(bitsPerSample+7) / 8
	blockAlign := uint16(channels) * uint16(bytesPerSample)
	byteRate := sampleRate * uint32(channels) * bytesPerSample
	dataSize := uint32(len(data))
	riffSize := 4 + (8 + 16) + (8 + dataSize)

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], formatTag)
	binary.LittleEndian.PutUint16(header[22:24], channels)
	binary.LittleEndian.PutUint32(header[24:28], sampleRate)
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	_, err := w.Write(data)
	return err
}

// SPDX-License-Identifier: EPL-2.0

package splicer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-iamf/paramgen/adm/bw64"
	"github.com/go-iamf/paramgen/adm/interpreter"
)

// admBwfWithOneStereoObject is byte-for-byte the stereo ADM-BWF fixture from
// spec.md's seed scenario 1: fmt declares 2 channels, data is 8 bytes, axml
// describes one audioObject referencing track UIDs L and R.
var admBwfWithOneStereoObject = []byte(
	"RIFF" +
		"\xb8\x00\x00\x00" +
		"WAVE" +
		"fmt " +
		"\x10\x00\x00\x00" +
		"\x01\x00" +
		"\x02\x00" +
		"\x01\x00\x00\x00" +
		"\x04\x00\x00\x00" +
		"\x04\x00" +
		"\x10\x00" +
		"data" +
		"\x08\x00\x00\x00" +
		"\x01\x23\x45\x67\x89\xab\xcd\xef" +
		"axml" +
		"\x7c\x00\x00\x00" +
		"<topLevel><audioObject><audioTrackUIDRef>L</audioTrackUIDRef>" +
		"<audioTrackUIDRef>R</audioTrackUIDRef></audioObject></topLevel>")

var expectedOutputForStereoObject = []byte(
	"RIFF" +
		"\x2c\x00\x00\x00" +
		"WAVE" +
		"fmt " +
		"\x10\x00\x00\x00" +
		"\x01\x00" +
		"\x02\x00" +
		"\x01\x00\x00\x00" +
		"\x04\x00\x00\x00" +
		"\x04\x00" +
		"\x10\x00" +
		"data" +
		"\x08\x00\x00\x00" +
		"\x01\x23\x45\x67\x89\xab\xcd\xef")

var admBwfWithOneStereoAndOneMonoObject = []byte(
	"RIFF" +
		"\xf5\x00\x00\x00" +
		"WAVE" +
		"fmt " +
		"\x10\x00\x00\x00" +
		"\x01\x00" +
		"\x03\x00" +
		"\x01\x00\x00\x00" +
		"\x06\x00\x00\x00" +
		"\x06\x00" +
		"\x10\x00" +
		"data" +
		"\x0c\x00\x00\x00" +
		"\x01\x23\x45\x67\xaa\xbb\x89\xab\xcd\xef\xcc\xdd" +
		"axml" +
		"\xbd\x00\x00\x00" +
		"<topLevel><audioObject><audioTrackUIDRef>L</audioTrackUIDRef>" +
		"<audioTrackUIDRef>R</audioTrackUIDRef></audioObject>" +
		"<audioObject><audioTrackUIDRef>M</audioTrackUIDRef></audioObject></topLevel>")

var expectedOutputForMonoObject = []byte(
	"RIFF" +
		"\x28\x00\x00\x00" +
		"WAVE" +
		"fmt " +
		"\x10\x00\x00\x00" +
		"\x01\x00" +
		"\x01\x00" +
		"\x01\x00\x00\x00" +
		"\x02\x00\x00\x00" +
		"\x02\x00" +
		"\x10\x00" +
		"data" +
		"\x04\x00\x00\x00" +
		"\xaa\xbb\xcc\xdd")

var invalidWavFileWithInconsistentDataChunkSize = []byte(
	"RIFF" +
		"\xb8\x00\x00\x00" +
		"WAVE" +
		"fmt " +
		"\x10\x00\x00\x00" +
		"\x01\x00" +
		"\x02\x00" +
		"\x01\x00\x00\x00" +
		"\x04\x00\x00\x00" +
		"\x04\x00" +
		"\x10\x00" +
		"axml" +
		"\x7c\x00\x00\x00" +
		"<topLevel><audioObject><audioTrackUIDRef>L</audioTrackUIDRef>" +
		"<audioTrackUIDRef>R</audioTrackUIDRef></audioObject></topLevel>" +
		"data" +
		"\x0a\x00\x00\x00" +
		"\x01\x23\x45\x67\x89\xab\xcd\xef")

func readAndParse(t *testing.T, file []byte) (*bw64.Index, []interpreter.Object) {
	t.Helper()
	idx, err := bw64.Read(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("bw64.Read: %v", err)
	}
	objects, err := interpreter.Parse(idx.AXML, 10)
	if err != nil {
		t.Fatalf("interpreter.Parse: %v", err)
	}
	return idx, objects
}

func TestSpliceStereoObjectStripsAxmlAndRecomputesSizes(t *testing.T) {
	idx, objects := readAndParse(t, admBwfWithOneStereoObject)
	outDir := t.TempDir()

	paths, err := Splice(bytes.NewReader(admBwfWithOneStereoObject), idx, objects, outDir, "prefix")
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if len(paths) != 1 {
		t.Fatalf("got %d output files, want 1", len(paths))
	}
	if got, want := filepath.Base(paths[0]), "prefix_converted1.wav"; got != want {
		t.Errorf("output name = %q, want %q", got, want)
	}

	got, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !bytes.Equal(got, expectedOutputForStereoObject) {
		t.Errorf("output = %x, want %x", got, expectedOutputForStereoObject)
	}
}

func TestSpliceOutputsOneWavFilePerObject(t *testing.T) {
	idx, objects := readAndParse(t, admBwfWithOneStereoAndOneMonoObject)
	outDir := t.TempDir()

	paths, err := Splice(bytes.NewReader(admBwfWithOneStereoAndOneMonoObject), idx, objects, outDir, "prefix")
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d output files, want 2", len(paths))
	}

	stereo, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("reading stereo output: %v", err)
	}
	if !bytes.Equal(stereo, expectedOutputForStereoObject) {
		t.Errorf("stereo output = %x, want %x", stereo, expectedOutputForStereoObject)
	}

	mono, err := os.ReadFile(paths[1])
	if err != nil {
		t.Fatalf("reading mono output: %v", err)
	}
	if !bytes.Equal(mono, expectedOutputForMonoObject) {
		t.Errorf("mono output = %x, want %x", mono, expectedOutputForMonoObject)
	}
}

func TestSpliceFailsAndLeavesNoOutputOnInconsistentDataChunk(t *testing.T) {
	_, err := bw64.Read(bytes.NewReader(invalidWavFileWithInconsistentDataChunkSize))
	if err == nil {
		t.Fatal("bw64.Read: want error for an inconsistent data chunk size")
	}

	outDir := t.TempDir()
	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d files in outDir, want 0", len(entries))
	}
}

func TestSpliceCleansUpEarlierOutputsWhenALaterObjectFails(t *testing.T) {
	idx, objects := readAndParse(t, admBwfWithOneStereoAndOneMonoObject)
	outDir := t.TempDir()

	// The stereo object is written first and would succeed on its own; make
	// the mono object's target path a directory so its os.Create fails,
	// forcing Splice to hit the mid-batch cleanup path.
	blocked := filepath.Join(outDir, "prefix_converted2.wav")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	paths, err := Splice(bytes.NewReader(admBwfWithOneStereoAndOneMonoObject), idx, objects, outDir, "prefix")
	if err == nil {
		t.Fatal("Splice: want error when a later object's output cannot be created")
	}
	if paths != nil {
		t.Errorf("got paths %v, want nil", paths)
	}

	if _, err := os.Stat(filepath.Join(outDir, "prefix_converted1.wav")); !os.IsNotExist(err) {
		t.Errorf("prefix_converted1.wav still exists after cleanup, stat err = %v", err)
	}
}

func TestSpliceZeroObjectsSucceedsWithNoFiles(t *testing.T) {
	idx, _ := readAndParse(t, admBwfWithOneStereoObject)
	outDir := t.TempDir()

	paths, err := Splice(bytes.NewReader(admBwfWithOneStereoObject), idx, nil, outDir, "prefix")
	if err != nil {
		t.Fatalf("Splice: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %d paths, want 0", len(paths))
	}
}

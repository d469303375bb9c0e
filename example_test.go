// SPDX-License-Identifier: EPL-2.0

package paramgen_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-iamf/paramgen"
)

// admBwfWithOneStereoObject is the same minimal ADM-BWF fixture
// adm/splicer's tests use: a stereo fmt chunk, two data frames, and an axml
// chunk describing a single audioObject over both tracks.
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

// Example_spliceADMFile demonstrates the top-level convenience entry point:
// given an ADM-BWF WAV file on disk, produce one plain WAV file per
// audioObject it describes.
func Example_spliceADMFile() {
	dir, err := os.MkdirTemp("", "paramgen-example-*")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "scene.wav")
	if err := os.WriteFile(inPath, admBwfWithOneStereoObject, 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	outDir := filepath.Join(dir, "out")
	paths, err := paramgen.SpliceADMFile(inPath, outDir, "scene", 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("wrote %d file(s)\n", len(paths))
	fmt.Println(filepath.Base(paths[0]))
	// Output:
	// wrote 1 file(s)
	// scene_converted1.wav
}

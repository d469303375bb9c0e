// SPDX-License-Identifier: EPL-2.0

package paramgen

import (
	"os"

	"github.com/go-iamf/paramgen/adm/bw64"
	"github.com/go-iamf/paramgen/adm/interpreter"
	"github.com/go-iamf/paramgen/adm/splicer"
)

// SpliceADMFile is a high-level convenience function that reads an ADM-BWF
// WAV file at path, parses its axml object list, and writes one canonical
// WAV file per object into outDir. It composes adm/bw64, adm/interpreter,
// and adm/splicer the way a caller who only needs the end result, not
// control over each step, would want to.
//
// importanceThreshold is forwarded to interpreter.Parse: objects whose
// audioObject/importance falls below it are dropped before splicing.
func SpliceADMFile(path, outDir, prefix string, importanceThreshold int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	idx, err := bw64.Read(f)
	if err != nil {
		return nil, err
	}

	objects, err := interpreter.Parse(idx.AXML, importanceThreshold)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	return splicer.Splice(f, idx, objects, outDir, prefix)
}

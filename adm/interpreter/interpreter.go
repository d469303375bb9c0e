// SPDX-License-Identifier: EPL-2.0

// Package interpreter extracts ordered audioObject -> audioTrackUIDRef
// lists from an ADM axml payload, per spec.md §4.2. A full DOM is
// unnecessary for this: a streaming tag-matcher over audioObject and
// audioTrackUIDRef elements suffices, so this parses with encoding/xml's
// token-at-a-time Decoder rather than building a tree.
package interpreter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Object is one audioObject's ordered list of referenced track UIDs.
type Object struct {
	TrackUIDs []string
}

// Parse walks axml and returns the ordered list of audioObjects whose
// importance is at or above importanceThreshold. An audioObject with no
// importance attribute is treated as maximally important and is never
// dropped. Namespaces are not required: elements are matched by local name
// only, per spec.md §4.2 and §6.
func Parse(axml []byte, importanceThreshold int) ([]Object, error) {
	dec := xml.NewDecoder(bytes.NewReader(axml))

	var objects []Object
	var current *Object
	currentImportance := math.MaxInt32

	inTrackRef := false
	var trackRef strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "audioObject":
				current = &Object{}
				currentImportance = math.MaxInt32
				for _, attr := range t.Attr {
					if attr.Name.Local != "importance" {
						continue
					}
					if v, err := strconv.Atoi(attr.Value); err == nil {
						currentImportance = v
					}
				}
			case "audioTrackUIDRef":
				if current != nil {
					inTrackRef = true
					trackRef.Reset()
				}
			}
		case xml.CharData:
			if inTrackRef {
				trackRef.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "audioTrackUIDRef":
				if current != nil && inTrackRef {
					current.TrackUIDs = append(current.TrackUIDs, strings.TrimSpace(trackRef.String()))
				}
				inTrackRef = false
			case "audioObject":
				if current != nil {
					if currentImportance >= importanceThreshold {
						objects = append(objects, *current)
					}
					current = nil
				}
			}
		}
	}

	return objects, nil
}

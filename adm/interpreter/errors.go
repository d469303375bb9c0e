// SPDX-License-Identifier: EPL-2.0

package interpreter

import "errors"

// ErrMalformedXML is returned when the axml payload is not well-formed XML.
var ErrMalformedXML = errors.New("interpreter: malformed axml payload")

// SPDX-License-Identifier: EPL-2.0

package ingest

import "errors"

var (
	// ErrUnsupportedFormat is returned when no decoder is registered for a
	// requested format key.
	ErrUnsupportedFormat = errors.New("ingest: no decoder registered for format")
	// ErrLabelCountMismatch is returned when the number of channel labels
	// supplied to AssignLabels does not match the deinterleaved channel count.
	ErrLabelCountMismatch = errors.New("ingest: channel label count does not match source channel count")
)

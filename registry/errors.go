// SPDX-License-Identifier: EPL-2.0

package registry

import "errors"

var (
	// ErrAudioElementNotFound is returned when a ReconGain definition's
	// AudioElementID has no matching entry in the audio-elements map.
	ErrAudioElementNotFound = errors.New("registry: audio element not found for recon gain parameter")
	// ErrUnknownParameterID is returned by AddMetadata when the parameter
	// id was never registered via Initialize.
	ErrUnknownParameterID = errors.New("registry: no per-id metadata found for parameter id")
)

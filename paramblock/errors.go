// SPDX-License-Identifier: EPL-2.0

package paramblock

import "errors"

var (
	// ErrTimestampMismatch is returned when the timing module's returned
	// start does not match the metadata's requested start_timestamp.
	ErrTimestampMismatch = errors.New("paramblock: timing module returned an unexpected start timestamp")
	// ErrSubblockCountMismatch is returned when a mode=1 record's declared
	// subblock count disagrees with the count derivable from duration and
	// constant_subblock_duration.
	ErrSubblockCountMismatch = errors.New("paramblock: declared subblock count disagrees with derived count")
	// ErrMissingSubblockDuration is returned when constant_subblock_duration
	// is 0 and a subblock lacks an explicit duration.
	ErrMissingSubblockDuration = errors.New("paramblock: per-subblock duration required when constant_subblock_duration is 0")
	// ErrWrongSubblockPayload is returned when a subblock's Data does not
	// hold the type this builder expects.
	ErrWrongSubblockPayload = errors.New("paramblock: subblock payload has the wrong type for this parameter")
	// ErrLayerCountMismatch is returned when the user-supplied recon-gain
	// layer count disagrees with the audio element's num_layers.
	ErrLayerCountMismatch = errors.New("paramblock: recon-gain layer count disagrees with audio element's num_layers")
	// ErrPresenceFlagMismatch is returned when recon_gain_is_present_flags[k]
	// disagrees with whether layer k actually demixes any channel.
	ErrPresenceFlagMismatch = errors.New("paramblock: recon_gain_is_present_flag disagrees with the computed demix set")
	// ErrMissingFrame is returned when the original or decoded PCM map lacks
	// the audio element id a recon-gain record needs.
	ErrMissingFrame = errors.New("paramblock: no PCM frame supplied for audio element id")
	// ErrReconGainMismatch is returned when a recomputed recon-gain layer
	// disagrees with the user-supplied value and overrides are disallowed.
	ErrReconGainMismatch = errors.New("paramblock: computed recon gain disagrees with user-supplied value")
)

// SPDX-License-Identifier: EPL-2.0

package mixgain

import "errors"

var (
	// ErrOverflow is returned when a source animation value cannot be
	// narrowed losslessly to its wire width.
	ErrOverflow = errors.New("mixgain: value overflows destination width")
	// ErrUnknownAnimationType is returned for any AnimationType outside
	// {Step, Linear, Bezier}.
	ErrUnknownAnimationType = errors.New("mixgain: unrecognized animation type")
)

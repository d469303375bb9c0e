// SPDX-License-Identifier: EPL-2.0

// Package mixgain translates step/linear/bezier mix-gain animations into the
// fixed-width integer subblock payloads spec.md §4.5 describes.
package mixgain

import "fmt"

// AnimationType tags which fields of Animation are meaningful.
type AnimationType int

const (
	Step AnimationType = iota
	Linear
	Bezier
)

// Animation is the source-side animation, expressed in wide integers per
// spec.md §4.5 ("source values arrive as 32-bit or larger integers").
type Animation struct {
	Type                     AnimationType
	StartPointValue          int64
	EndPointValue            int64
	ControlPointValue        int64
	ControlPointRelativeTime int64
}

// Data is the narrowed, wire-ready subblock payload.
type Data struct {
	Type                     AnimationType
	StartPointValue          int16
	EndPointValue            int16
	ControlPointValue        int16
	ControlPointRelativeTime uint8
}

// Build narrows a to its wire-width Data, failing with ErrOverflow if any
// field does not fit, or ErrUnknownAnimationType if a.Type is unrecognized.
func Build(a Animation) (Data, error) {
	var out Data
	out.Type = a.Type

	start, err := toInt16(a.StartPointValue)
	if err != nil {
		return Data{}, fmt.Errorf("mixgain: start_point_value: %w", err)
	}
	out.StartPointValue = start

	switch a.Type {
	case Step:
		return out, nil
	case Linear:
		end, err := toInt16(a.EndPointValue)
		if err != nil {
			return Data{}, fmt.Errorf("mixgain: end_point_value: %w", err)
		}
		out.EndPointValue = end
		return out, nil
	case Bezier:
		end, err := toInt16(a.EndPointValue)
		if err != nil {
			return Data{}, fmt.Errorf("mixgain: end_point_value: %w", err)
		}
		control, err := toInt16(a.ControlPointValue)
		if err != nil {
			return Data{}, fmt.Errorf("mixgain: control_point_value: %w", err)
		}
		relTime, err := toUint8(a.ControlPointRelativeTime)
		if err != nil {
			return Data{}, fmt.Errorf("mixgain: control_point_relative_time: %w", err)
		}
		out.EndPointValue = end
		out.ControlPointValue = control
		out.ControlPointRelativeTime = relTime
		return out, nil
	default:
		return Data{}, fmt.Errorf("%w: %d", ErrUnknownAnimationType, a.Type)
	}
}

func toInt16(v int64) (int16, error) {
	if v < -32768 || v > 32767 {
		return 0, fmt.Errorf("%w: %d does not fit in int16", ErrOverflow, v)
	}
	return int16(v), nil
}

func toUint8(v int64) (uint8, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %d does not fit in uint8", ErrOverflow, v)
	}
	return uint8(v), nil
}

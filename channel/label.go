// SPDX-License-Identifier: EPL-2.0

// Package channel defines the closed set of channel labels, cumulative
// channel-layer counts, and labeled-PCM-frame types shared by the parameter
// block generator and the recon-gain engine.
package channel

// Label identifies a single channel of an original or demixed layout.
type Label int

const (
	Unknown Label = iota

	Mono
	L2
	R2
	L3
	R3
	C
	LFE
	Ls5
	Rs5
	Ltf2
	Rtf2
	L7
	R7
	Lrs7
	Rrs7
	Ltb4
	Rtb4

	DemixedR2
	DemixedL3
	DemixedR3
	DemixedLs5
	DemixedRs5
	DemixedL5
	DemixedR5
	DemixedL7
	DemixedR7
	DemixedLrs7
	DemixedRrs7
	DemixedLtf2
	DemixedRtf2
	DemixedLtb4
	DemixedRtb4
)

var labelNames = map[Label]string{
	Unknown:     "unknown",
	Mono:        "mono",
	L2:          "L2",
	R2:          "R2",
	L3:          "L3",
	R3:          "R3",
	C:           "C",
	LFE:         "LFE",
	Ls5:         "Ls5",
	Rs5:         "Rs5",
	Ltf2:        "Ltf2",
	Rtf2:        "Rtf2",
	L7:          "L7",
	R7:          "R7",
	Lrs7:        "Lrs7",
	Rrs7:        "Rrs7",
	Ltb4:        "Ltb4",
	Rtb4:        "Rtb4",
	DemixedR2:   "DemixedR2",
	DemixedL3:   "DemixedL3",
	DemixedR3:   "DemixedR3",
	DemixedLs5:  "DemixedLs5",
	DemixedRs5:  "DemixedRs5",
	DemixedL5:   "DemixedL5",
	DemixedR5:   "DemixedR5",
	DemixedL7:   "DemixedL7",
	DemixedR7:   "DemixedR7",
	DemixedLrs7: "DemixedLrs7",
	DemixedRrs7: "DemixedRrs7",
	DemixedLtf2: "DemixedLtf2",
	DemixedRtf2: "DemixedRtf2",
	DemixedLtb4: "DemixedLtb4",
	DemixedRtb4: "DemixedRtb4",
}

// String implements fmt.Stringer so labels read naturally in log lines.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return "invalid"
}

// Numbers describes a cumulative channel layer: how many surround, LFE, and
// height channels it carries. Layer k's Numbers are always a superset of
// layer k-1's.
type Numbers struct {
	Surround int
	LFE      int
	Height   int
}

// Sample is the internal PCM sample representation. Decoders normalize to
// this width regardless of the source bit depth.
type Sample = int32

// LabeledFrame maps a channel label to its sequence of PCM samples for the
// current analysis window.
type LabeledFrame map[Label][]Sample

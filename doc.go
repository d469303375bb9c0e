// SPDX-License-Identifier: EPL-2.0

// Package paramgen generates IAMF parameter blocks (mix-gain, demixing,
// recon-gain) and splices ADM-BWF WAV files into per-object WAV renders.
//
// # Package layout
//
// The parameter-block pipeline:
//   - channel: the closed set of channel labels and cumulative layer counts
//     mix-gain, demixing, and recon-gain all key off of.
//   - paramdef: flat, tagged-variant parameter definitions (mix-gain,
//     demixing, recon-gain), replacing a polymorphic base-class hierarchy.
//   - audioelement: scalable channel-layout audio elements the recon-gain
//     path resolves parameter ids against.
//   - registry: correlates parameter ids with their definitions and queues
//     incoming per-block metadata for assembly.
//   - timing: assigns [start, end) timestamps to successive parameter
//     blocks of a given parameter id.
//   - mixgain, demixing, recongain: the three parameter-type payloads and,
//     for recongain, the demixed-channel discovery and gain computation
//     engine.
//   - paramblock: the assembler that turns registry metadata plus
//     mixgain/demixing/recongain inputs into wire-ready parameter blocks.
//
// The ADM-BWF pipeline:
//   - adm/bw64: parses the RIFF/BW64 chunk structure and extracts the raw
//     axml payload without decoding any PCM.
//   - adm/interpreter: parses axml into an ordered list of audioObjects and
//     their referenced track UIDs.
//   - adm/splicer: writes one canonical WAV file per audioObject.
//
// Feeding recon-gain from real files:
//   - ingest: decodes WAV and AIFF renders (one file per
//     channel label, as adm/splicer or an external renderer would produce)
//     into the channel.LabeledFrame maps recongain compares.
//
// SpliceADMFile is a high-level convenience wrapper over the ADM-BWF
// pipeline for callers who don't need control over each step:
//
//	paths, err := paramgen.SpliceADMFile("scene.wav", "out", "scene", 0)
//
// See cmd/paramgen for a demo CLI over both pipelines.
package paramgen

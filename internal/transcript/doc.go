// Package transcript defines timed transcript data and its boundary parsers.
//
// A transcript is an ordered sequence of words, each carrying the interval in
// the source media during which it was spoken. Words arrive from a
// transcription provider (JSON payloads) or from a subtitle file (SRT cues
// with synthesized per-word timing). All parsers validate the ordering
// invariant: start times must be monotonically non-decreasing, and every word
// must end at or after it starts. Downstream matching assumes that invariant
// and never re-checks it.
package transcript

// Package clip turns a search query and a timed transcript into a playback
// window: it dispatches the query variant once, drives the match engine,
// projects the winning token span onto absolute media timestamps, and
// re-chunks the span's words into fixed-size subtitle frames for word-by-word
// caption rendering. Pre-timed cue sources bypass matching entirely and feed
// the frame builder directly.
package clip

// Package match implements the transcript alignment engine: text
// normalization, fuzzy similarity scoring, exhaustive sliding-window search,
// and two-anchor segmentation for long queries.
//
// The pipeline is pure computation over in-memory token sequences. Scores
// are integers in [0, 100]; a window is accepted only when its score meets
// the caller's threshold. Ties on the maximum score resolve to the earliest
// window so results stay deterministic regardless of scan order.
package match

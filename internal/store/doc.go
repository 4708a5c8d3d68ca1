// Package store caches provider transcripts in SQLite so repeat searches
// against the same video skip the transcription round-trip. The cache is
// guarded by a file lock against concurrent CLI runs sharing a cache
// directory.
package store

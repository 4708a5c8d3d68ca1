package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"clipseek/internal/transcript"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale caches are cheap to rebuild, so a mismatch just asks the
// user to clear.
const schemaVersion = 1

// ErrSchemaMismatch indicates the cache database was written by a different
// schema version.
var ErrSchemaMismatch = errors.New("cache schema version mismatch")

// Entry describes one cached transcript.
type Entry struct {
	VideoID   string
	WordCount int
	CreatedAt time.Time
}

// Store manages transcript cache persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database under dir, taking a
// file lock so concurrent runs do not interleave writes.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "cache.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("cache directory %s is locked by another clipseek process", dir)
	}

	dbPath := filepath.Join(dir, "transcripts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close releases the database connection and the cache lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

func (s *Store) initSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case version != schemaVersion:
		return fmt.Errorf("%w: cache has version %d, expected %d (run 'clipseek cache clear')",
			ErrSchemaMismatch, version, schemaVersion)
	}
	return nil
}

// Save stores or replaces the cached transcript for a video.
func (s *Store) Save(ctx context.Context, videoID string, words []transcript.Word) error {
	payload, err := json.Marshal(words)
	if err != nil {
		return fmt.Errorf("marshal words: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (video_id, words_json, word_count, created_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(video_id) DO UPDATE SET
             words_json = excluded.words_json,
             word_count = excluded.word_count,
             created_at = excluded.created_at`,
		videoID, string(payload), len(words), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save transcript %s: %w", videoID, err)
	}
	return nil
}

// Get returns the cached words for a video, reporting whether a cached entry
// existed.
func (s *Store) Get(ctx context.Context, videoID string) ([]transcript.Word, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT words_json FROM transcripts WHERE video_id = ?", videoID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load transcript %s: %w", videoID, err)
	}
	var words []transcript.Word
	if err := json.Unmarshal([]byte(payload), &words); err != nil {
		return nil, false, fmt.Errorf("decode cached transcript %s: %w", videoID, err)
	}
	return words, true, nil
}

// List returns all cache entries, newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT video_id, word_count, created_at FROM transcripts ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var createdAt string
		if err := rows.Scan(&entry.VideoID, &entry.WordCount, &createdAt); err != nil {
			return nil, fmt.Errorf("scan transcript row: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			entry.CreatedAt = ts
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcripts: %w", err)
	}
	return entries, nil
}

// Delete removes one cached transcript. Deleting an absent entry is not an
// error.
func (s *Store) Delete(ctx context.Context, videoID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM transcripts WHERE video_id = ?", videoID); err != nil {
		return fmt.Errorf("delete transcript %s: %w", videoID, err)
	}
	return nil
}

// Clear removes every cached transcript.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM transcripts"); err != nil {
		return fmt.Errorf("clear transcripts: %w", err)
	}
	return nil
}

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
	_ "modernc.org/sqlite"

	"studify/internal/config"
	"studify/internal/fileutil"
	"studify/internal/logging"
	"studify/internal/registry"
)

// minFreeBytes is the free-space floor below which writes are refused. The
// payloads themselves are tiny; the floor exists so a nearly full volume
// degrades with a clear storage error instead of a half-written database.
const minFreeBytes = 16 * 1024 * 1024

// ErrLocked indicates another process holds the data directory lock.
var ErrLocked = errors.New("data directory is locked by another studify process")

// Store is the durable SQLite-backed Backend.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger

	// freeSpace reports available bytes on the volume holding path.
	// Replaced in tests to exercise the quota path.
	freeSpace func(path string) (uint64, error)
}

// Open initializes or connects to the collection database and acquires the
// single-writer lock for the data directory.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	if err := fileutil.CheckWritableDir(cfg.Paths.DataDir); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Paths.DataDir, "studify.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire data lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "library.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{
		db:        db,
		path:      dbPath,
		lock:      lock,
		logger:    logging.NewComponentLogger(logger, "storage"),
		freeSpace: freeSpace,
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return store, nil
}

// Close closes the database connection and releases the data directory lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var dbErr error
	if s.db != nil {
		dbErr = s.db.Close()
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil && dbErr == nil {
			dbErr = fmt.Errorf("release data lock: %w", err)
		}
	}
	return dbErr
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the payload stored under key, or ok=false when absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection %q: %w", key, err)
	}
	return payload, true, nil
}

// Save replaces the payload stored under key. Writes are refused with a
// storage error when the volume is nearly full.
func (s *Store) Save(ctx context.Context, key string, payload []byte) error {
	if free, err := s.freeSpace(filepath.Dir(s.path)); err != nil {
		s.logger.Warn("free space check failed", logging.Error(err))
	} else if free < minFreeBytes+uint64(len(payload)) {
		return registry.Wrap(registry.ErrStorage, key, "save",
			fmt.Sprintf("insufficient free space (%d bytes available)", free), nil)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (key, payload, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, timestamp,
	)
	if err != nil {
		return registry.Wrap(registry.ErrStorage, key, "save", "", err)
	}
	return nil
}

// Remove deletes the payload stored under key.
func (s *Store) Remove(ctx context.Context, key string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key)
	if err != nil {
		return false, registry.Wrap(registry.ErrStorage, key, "remove", "", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

func freeSpace(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return stat.Bavail * uint64(stat.Bsize), nil
}

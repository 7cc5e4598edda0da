package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/husein14azimi/house-price-prediction-simple-lr/housing"
	"github.com/husein14azimi/house-price-prediction-simple-lr/regression"
	"github.com/husein14azimi/house-price-prediction-simple-lr/storage/sqlite/migrations"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ListingStore persists the user-entered listings.
type ListingStore interface {
	// Save stores or updates a listing.
	Save(ctx context.Context, listing housing.Listing) error
	// Get retrieves a listing by ID.
	Get(ctx context.Context, id string) (*housing.Listing, error)
	// Delete removes a listing.
	Delete(ctx context.Context, id string) error
	// DeleteAll removes every listing.
	DeleteAll(ctx context.Context) error
	// List returns all listings in insertion order.
	List(ctx context.Context) ([]housing.Listing, error)
}

// CachedFit is a stored fit result together with the fingerprint of the
// listing collection it was computed from.
type CachedFit struct {
	Fingerprint uint64
	Result      regression.FitResult
	CreatedAt   time.Time
}

// FitStore caches the most recent fit result. Exactly one cached fit exists
// at a time; saving replaces the previous one.
type FitStore interface {
	// SaveFit stores the fit result computed from the collection identified
	// by fingerprint, replacing any previous cached fit.
	SaveFit(ctx context.Context, fingerprint uint64, result *regression.FitResult) error
	// GetFit returns the cached fit, or ErrNotFound when none exists.
	GetFit(ctx context.Context) (*CachedFit, error)
	// InvalidateFit drops the cached fit.
	InvalidateFit(ctx context.Context) error
}

// Store is the SQLite-backed storage providing access to the listing and
// fit-cache stores.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the specified data directory.
// If dataDir is empty, defaults to ~/.houseprice/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".houseprice", "data")
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "houseprice.db")

	// WAL mode for better concurrency between readers and the writer
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Listings returns a ListingStore backed by this store.
func (s *Store) Listings() ListingStore {
	return &listingStore{store: s}
}

// Fits returns a FitStore backed by this store.
func (s *Store) Fits() FitStore {
	return &fitStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Listing Store ====================

type listingStore struct {
	store *Store
}

var _ ListingStore = (*listingStore)(nil)

// Save stores or updates a listing.
func (s *listingStore) Save(ctx context.Context, listing housing.Listing) error {
	if err := listing.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO listings (id, area, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			area = excluded.area,
			price = excluded.price,
			updated_at = excluded.updated_at
	`, listing.ID, listing.Area, listing.Price, listing.CreatedAt, listing.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}
	return nil
}

// Get retrieves a listing by ID.
func (s *listingStore) Get(ctx context.Context, id string) (*housing.Listing, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, area, price, created_at, updated_at
		FROM listings WHERE id = ?
	`, id)

	var l housing.Listing
	if err := row.Scan(&l.ID, &l.Area, &l.Price, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning listing: %w", err)
	}

	return &l, nil
}

// Delete removes a listing.
func (s *listingStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM listings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every listing.
func (s *listingStore) DeleteAll(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return fmt.Errorf("deleting listings: %w", err)
	}
	return nil
}

// List returns all listings in insertion order.
func (s *listingStore) List(ctx context.Context) ([]housing.Listing, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, area, price, created_at, updated_at
		FROM listings
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	var listings []housing.Listing //nolint:prealloc // size unknown from query
	for rows.Next() {
		var l housing.Listing
		if err := rows.Scan(&l.ID, &l.Area, &l.Price, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}

	return listings, nil
}

// ==================== Fit Store ====================

type fitStore struct {
	store *Store
}

var _ FitStore = (*fitStore)(nil)

// SaveFit stores the latest fit result, replacing any previous one.
func (s *fitStore) SaveFit(ctx context.Context, fingerprint uint64, result *regression.FitResult) error {
	if result == nil {
		return errors.New("nil fit result")
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO fits (id, fingerprint, slope, intercept, r_squared, rmse, formula, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			slope = excluded.slope,
			intercept = excluded.intercept,
			r_squared = excluded.r_squared,
			rmse = excluded.rmse,
			formula = excluded.formula,
			created_at = excluded.created_at
	`, strconv.FormatUint(fingerprint, 10),
		result.Line.Slope, result.Line.Intercept,
		result.RSquared, result.RMSE, result.Formula, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("saving fit: %w", err)
	}
	return nil
}

// GetFit returns the cached fit, or ErrNotFound when none exists.
func (s *fitStore) GetFit(ctx context.Context) (*CachedFit, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT fingerprint, slope, intercept, r_squared, rmse, formula, created_at
		FROM fits WHERE id = 1
	`)

	var cached CachedFit
	var fingerprint string
	if err := row.Scan(&fingerprint,
		&cached.Result.Line.Slope, &cached.Result.Line.Intercept,
		&cached.Result.RSquared, &cached.Result.RMSE,
		&cached.Result.Formula, &cached.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning fit: %w", err)
	}

	fp, err := strconv.ParseUint(fingerprint, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing fit fingerprint: %w", err)
	}
	cached.Fingerprint = fp

	return &cached, nil
}

// InvalidateFit drops the cached fit.
func (s *fitStore) InvalidateFit(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM fits WHERE id = 1"); err != nil {
		return fmt.Errorf("invalidating fit: %w", err)
	}
	return nil
}

// Package store persists emulated ARM resources in SQLite.
//
// Every resource is one row holding its JSON document. Rows are keyed by
// the lowercased resource ID because ARM IDs are case-insensitive, and
// carry the parent key and type so collections can be listed without
// parsing IDs again.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/yaroslav/azrest/models"
	"github.com/yaroslav/azrest/server/internal/metrics"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS resources (
	id              TEXT PRIMARY KEY,
	resource_id     TEXT NOT NULL,
	parent_id       TEXT NOT NULL,
	subscription_id TEXT NOT NULL,
	type            TEXT NOT NULL,
	name            TEXT NOT NULL,
	name_key        TEXT NOT NULL,
	body            TEXT NOT NULL,
	etag            TEXT NOT NULL,
	created_at      TEXT NOT NULL,
	updated_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_resources_parent_type
	ON resources (parent_id, type, name_key);
CREATE INDEX IF NOT EXISTS idx_resources_subscription_type
	ON resources (subscription_id, type, name_key);

CREATE TABLE IF NOT EXISTS resource_keys (
	id            TEXT PRIMARY KEY,
	primary_key   TEXT NOT NULL,
	secondary_key TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);
`

// Tables lists the tables the store owns.
var Tables = []string{"resources", "resource_keys"}

// Document is one stored resource.
type Document struct {
	// ID is the resource ID in the case the caller first used.
	ID string

	// ParentKey is the lowercased ID of the owning resource or scope.
	ParentKey string

	// SubscriptionID is the lowercased subscription, empty at tenant scope.
	SubscriptionID string

	// Type is the resource type, e.g. "Microsoft.Cache/redisEnterprise".
	Type string

	// Name is the last segment of ID.
	Name string

	// Body is the JSON document returned to clients.
	Body []byte

	// ETag is the current entity tag.
	ETag string

	// CreatedAt is when the resource was first stored.
	CreatedAt time.Time

	// UpdatedAt is when the resource was last written.
	UpdatedAt time.Time
}

// Key returns the lookup key of the document.
func (d *Document) Key() string {
	return strings.ToLower(d.ID)
}

// Keys are the access keys of a resource.
type Keys struct {
	Primary   string
	Secondary string
	UpdatedAt time.Time
}

// Store provides resource persistence on top of a SQLite connection.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens the SQLite database at path with WAL journaling and a busy
// timeout. MemoryPath opens a private in-memory database.
//
// SQLite allows a single writer, so the pool holds one connection.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)
	if path == MemoryPath {
		dsn = "file::memory:?_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// New creates a Store on an open database.
//
// Parameters:
//   - db: database opened with Open
//   - logger: zap logger; nil disables logging
func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger.With(zap.String("component", "store"))}
}

// Migrate creates the schema if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable and refreshes pool metrics.
func (s *Store) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	stats := s.db.Stats()
	metrics.ObservePool(stats.OpenConnections, stats.Idle, stats.InUse, stats.MaxOpenConnections)
	return err
}

// Get returns the document stored under key.
// Returns models.ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, key string) (doc *Document, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("get", start, ignoreNotFound(err)) }()

	row := s.db.QueryRowContext(ctx, `
		SELECT resource_id, parent_id, subscription_id, type, name, body, etag, created_at, updated_at
		FROM resources WHERE id = ?`, strings.ToLower(key))
	return scanDocument(row)
}

// MutateFunc computes the document to store from the current one, which
// is nil when the resource does not exist. Returning an error aborts the
// write and is passed through unchanged.
type MutateFunc func(current *Document) (*Document, error)

// Mutate reads the document under key, calls fn, and stores its result
// in one transaction. It reports whether the row was created.
func (s *Store) Mutate(ctx context.Context, key string, fn MutateFunc) (doc *Document, created bool, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("mutate", start, err) }()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := scanDocument(tx.QueryRowContext(ctx, `
		SELECT resource_id, parent_id, subscription_id, type, name, body, etag, created_at, updated_at
		FROM resources WHERE id = ?`, strings.ToLower(key)))
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, false, err
	}

	next, err := fn(current)
	if err != nil {
		return nil, false, err
	}

	now := time.Now().UTC()
	next.UpdatedAt = now
	if current != nil {
		next.CreatedAt = current.CreatedAt
	} else if next.CreatedAt.IsZero() {
		next.CreatedAt = now
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO resources (id, resource_id, parent_id, subscription_id, type, name, name_key, body, etag, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			body = excluded.body,
			etag = excluded.etag,
			updated_at = excluded.updated_at`,
		next.Key(), next.ID, strings.ToLower(next.ParentKey), strings.ToLower(next.SubscriptionID),
		strings.ToLower(next.Type), next.Name, strings.ToLower(next.Name), string(next.Body), next.ETag,
		formatTime(next.CreatedAt), formatTime(next.UpdatedAt),
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to write resource: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit resource: %w", err)
	}

	if current == nil {
		metrics.ResourcesStored.WithLabelValues(strings.ToLower(next.Type)).Inc()
		s.logger.Debug("resource created", zap.String("resource_id", next.ID))
	}
	return next, current == nil, nil
}

// Delete removes the document under key together with every resource
// nested below it. It reports whether the document existed.
func (s *Store) Delete(ctx context.Context, key string) (deleted bool, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("delete", start, err) }()

	key = strings.ToLower(key)
	prefix := key + "/"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT type, COUNT(*) FROM resources
		WHERE id = ? OR substr(id, 1, ?) = ?
		GROUP BY type`, key, len(prefix), prefix)
	if err != nil {
		return false, fmt.Errorf("failed to count resources: %w", err)
	}
	removed := make(map[string]int)
	for rows.Next() {
		var resourceType string
		var count int
		if err := rows.Scan(&resourceType, &count); err != nil {
			rows.Close()
			return false, fmt.Errorf("failed to scan resource count: %w", err)
		}
		removed[resourceType] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("failed to count resources: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM resources WHERE id = ?`, key)
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete resource: %w", err)
	}
	if n == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM resources WHERE substr(id, 1, ?) = ?`, len(prefix), prefix); err != nil {
		return false, fmt.Errorf("failed to delete nested resources: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM resource_keys WHERE id = ? OR substr(id, 1, ?) = ?`, key, len(prefix), prefix); err != nil {
		return false, fmt.Errorf("failed to delete keys: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}

	for resourceType, count := range removed {
		metrics.ResourcesStored.WithLabelValues(resourceType).Sub(float64(count))
	}
	s.logger.Debug("resource deleted", zap.String("resource_id", key), zap.Int("nested", total(removed)-1))
	return true, nil
}

// ListQuery selects one page of a collection.
type ListQuery struct {
	// ParentKey restricts results to direct children of one resource or scope.
	ParentKey string

	// SubscriptionID restricts results to one subscription when ParentKey is empty.
	SubscriptionID string

	// Type is the resource type to list.
	Type string

	// After is the name of the last item of the previous page.
	After string

	// AfterKey is the lookup key of that item. Names repeat across
	// resource groups in subscription-wide listings, so the key breaks
	// ties between equal names.
	AfterKey string

	// Limit is the page size.
	Limit int
}

// List returns one page of documents ordered by name, then key. more
// reports whether another page follows.
func (s *Store) List(ctx context.Context, q ListQuery) (docs []*Document, more bool, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("list", start, err) }()

	if q.Limit <= 0 {
		return nil, false, fmt.Errorf("%w: page size must be positive", models.ErrInvalidRequest)
	}

	query := `
		SELECT resource_id, parent_id, subscription_id, type, name, body, etag, created_at, updated_at
		FROM resources WHERE type = ? AND (name_key > ? OR (name_key = ? AND id > ?))`
	after := strings.ToLower(q.After)
	args := []any{strings.ToLower(q.Type), after, after, strings.ToLower(q.AfterKey)}
	if q.ParentKey != "" || q.SubscriptionID == "" {
		query += ` AND parent_id = ?`
		args = append(args, strings.ToLower(q.ParentKey))
	} else {
		query += ` AND subscription_id = ?`
		args = append(args, strings.ToLower(q.SubscriptionID))
	}
	query += ` ORDER BY name_key, id LIMIT ?`
	args = append(args, q.Limit+1)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("failed to list resources: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, false, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to list resources: %w", err)
	}

	if len(docs) > q.Limit {
		return docs[:q.Limit], true, nil
	}
	return docs, false, nil
}

// NameTaken reports whether a resource of the given type and name exists
// under parentKey, or anywhere in the subscription when parentKey is
// empty. An empty resourceType matches any type.
func (s *Store) NameTaken(ctx context.Context, parentKey, subscriptionID, resourceType, name string) (taken bool, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("name_taken", start, err) }()

	query := `SELECT COUNT(*) FROM resources WHERE name_key = ?`
	args := []any{strings.ToLower(name)}
	if resourceType != "" {
		query += ` AND type = ?`
		args = append(args, strings.ToLower(resourceType))
	}
	if parentKey != "" {
		query += ` AND parent_id = ?`
		args = append(args, strings.ToLower(parentKey))
	} else {
		query += ` AND subscription_id = ?`
		args = append(args, strings.ToLower(subscriptionID))
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check name: %w", err)
	}
	return count > 0, nil
}

// GetKeys returns the access keys of a resource.
// Returns models.ErrNotFound when none were generated yet.
func (s *Store) GetKeys(ctx context.Context, key string) (keys *Keys, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("get_keys", start, ignoreNotFound(err)) }()

	var updated string
	keys = &Keys{}
	err = s.db.QueryRowContext(ctx, `
		SELECT primary_key, secondary_key, updated_at FROM resource_keys WHERE id = ?`,
		strings.ToLower(key)).Scan(&keys.Primary, &keys.Secondary, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}
	keys.UpdatedAt = parseTime(updated)
	return keys, nil
}

// PutKeys stores the access keys of a resource.
func (s *Store) PutKeys(ctx context.Context, key string, keys Keys) (err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery("put_keys", start, err) }()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO resource_keys (id, primary_key, secondary_key, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			primary_key = excluded.primary_key,
			secondary_key = excluded.secondary_key,
			updated_at = excluded.updated_at`,
		strings.ToLower(key), keys.Primary, keys.Secondary, formatTime(time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	return nil
}

// Counts returns the number of rows in each table.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Tables))
	for _, table := range Tables {
		var n int64
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// RefreshGauges recomputes the per-type resource gauge from the table.
func (s *Store) RefreshGauges(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, `SELECT type, COUNT(*) FROM resources GROUP BY type`)
	if err != nil {
		return fmt.Errorf("failed to count resources: %w", err)
	}
	defer rows.Close()

	metrics.ResourcesStored.Reset()
	for rows.Next() {
		var resourceType string
		var count int
		if err := rows.Scan(&resourceType, &count); err != nil {
			return fmt.Errorf("failed to scan resource count: %w", err)
		}
		metrics.ResourcesStored.WithLabelValues(resourceType).Set(float64(count))
	}
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*Document, error) {
	var doc Document
	var body, created, updated string
	err := row.Scan(&doc.ID, &doc.ParentKey, &doc.SubscriptionID, &doc.Type, &doc.Name,
		&body, &doc.ETag, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read resource: %w", err)
	}
	doc.Body = []byte(body)
	doc.CreatedAt = parseTime(created)
	doc.UpdatedAt = parseTime(updated)
	return &doc, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func ignoreNotFound(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	return err
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

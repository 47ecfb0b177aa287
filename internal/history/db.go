package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/newslens/newslens/internal/model"
)

// HistoryDB provides SQLite-based storage for analysis runs.
// It manages connection pooling and provides methods for saving and
// replaying past runs.
//
// Design decision: We use a single database file for all runs rather than
// one file per keyword. This keeps listing cheap and makes backup a single
// file copy.
type HistoryDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures HistoryDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a HistoryDB at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*HistoryDB, error) {
	dbPath := filepath.Join(dbDir, "newslens.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite connection string: mode=rw prevents creating new
	// files, mode=rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer; multiple connections buy nothing here.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	hdb := &HistoryDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := hdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection.
func (hdb *HistoryDB) Close() error {
	return hdb.db.Close()
}

// Path returns the database file path.
func (hdb *HistoryDB) Path() string {
	return hdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (hdb *HistoryDB) createTables() error {
	schema := `
	-- Runs record one completed analysis each
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		keyword TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		requested INTEGER NOT NULL,
		collected INTEGER NOT NULL,
		skipped INTEGER NOT NULL,
		top_n INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_keyword ON runs(keyword);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);

	-- The ranked keyword table of a run, one row per keyword
	CREATE TABLE IF NOT EXISTS run_keywords (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		rank INTEGER NOT NULL,
		token TEXT NOT NULL,
		article_count INTEGER NOT NULL,
		total_frequency INTEGER NOT NULL,
		PRIMARY KEY (run_id, rank)
	);

	-- The collected article list of a run
	CREATE TABLE IF NOT EXISTS run_articles (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		title TEXT NOT NULL,
		link TEXT NOT NULL,
		original_link TEXT,
		published_at DATETIME,
		PRIMARY KEY (run_id, position)
	);
	`

	_, err := hdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveRun persists a completed analysis result and returns its run ID.
// The run, its keyword ranking, and its article list are written in one
// transaction.
func (hdb *HistoryDB) SaveRun(ctx context.Context, result *model.AnalysisResult) (int64, error) {
	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (keyword, started_at, requested, collected, skipped, top_n)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.Keyword,
		result.StartedAt.UTC().Format("2006-01-02 15:04:05"),
		result.Requested,
		result.Collected,
		result.Skipped,
		result.TopN,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	for rank, stat := range result.Keywords {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_keywords (run_id, rank, token, article_count, total_frequency)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, rank+1, stat.Token, stat.ArticleCount, stat.TotalFrequency,
		); err != nil {
			return 0, fmt.Errorf("failed to insert keyword row: %w", err)
		}
	}

	for _, ref := range result.Articles {
		var published any
		if !ref.PublishedAt.IsZero() {
			published = ref.PublishedAt.UTC().Format("2006-01-02 15:04:05")
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_articles (run_id, position, title, link, original_link, published_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			runID, ref.Position, ref.Title, ref.Link, ref.OriginalLink, published,
		); err != nil {
			return 0, fmt.Errorf("failed to insert article row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// RunSummary contains summary information about a stored run.
// This is used for listing history without loading full rankings.
type RunSummary struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Keyword is the search keyword the run analyzed.
	Keyword string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Requested, Collected, and Skipped are the run's article counts.
	Requested int
	Collected int
	Skipped   int

	// TopN is the per-article keyword cap used for the run.
	TopN int
}

// ListRuns returns the most recent runs, newest first.
// A limit of zero or less returns all runs.
func (hdb *HistoryDB) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	query := `
	SELECT id, keyword, started_at, requested, collected, skipped, top_n
	FROM runs
	ORDER BY started_at DESC, id DESC
	`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := hdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var results []RunSummary
	for rows.Next() {
		var summary RunSummary
		var startedAt string

		if err := rows.Scan(
			&summary.ID,
			&summary.Keyword,
			&startedAt,
			&summary.Requested,
			&summary.Collected,
			&summary.Skipped,
			&summary.TopN,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		summary.StartedAt = parseTimestamp(startedAt)
		results = append(results, summary)
	}

	return results, rows.Err()
}

// GetRun reconstructs a stored run as a full analysis result.
// Returns nil with no error when the run ID does not exist.
func (hdb *HistoryDB) GetRun(ctx context.Context, id int64) (*model.AnalysisResult, error) {
	var result model.AnalysisResult
	var startedAt string

	err := hdb.db.QueryRowContext(ctx,
		`SELECT keyword, started_at, requested, collected, skipped, top_n
		 FROM runs WHERE id = ?`, id,
	).Scan(
		&result.Keyword,
		&startedAt,
		&result.Requested,
		&result.Collected,
		&result.Skipped,
		&result.TopN,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	result.StartedAt = parseTimestamp(startedAt)

	keywords, err := hdb.runKeywords(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Keywords = keywords

	articles, err := hdb.runArticles(ctx, id)
	if err != nil {
		return nil, err
	}
	result.Articles = articles

	return &result, nil
}

// runKeywords loads the ranked keyword table of a run.
func (hdb *HistoryDB) runKeywords(ctx context.Context, runID int64) ([]model.KeywordStat, error) {
	rows, err := hdb.db.QueryContext(ctx,
		`SELECT token, article_count, total_frequency
		 FROM run_keywords WHERE run_id = ? ORDER BY rank`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run keywords: %w", err)
	}
	defer rows.Close()

	var stats []model.KeywordStat
	for rows.Next() {
		var stat model.KeywordStat
		if err := rows.Scan(&stat.Token, &stat.ArticleCount, &stat.TotalFrequency); err != nil {
			return nil, fmt.Errorf("failed to scan keyword row: %w", err)
		}
		stats = append(stats, stat)
	}

	return stats, rows.Err()
}

// runArticles loads the collected article list of a run.
func (hdb *HistoryDB) runArticles(ctx context.Context, runID int64) ([]model.ArticleRef, error) {
	rows, err := hdb.db.QueryContext(ctx,
		`SELECT position, title, link, original_link, published_at
		 FROM run_articles WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run articles: %w", err)
	}
	defer rows.Close()

	var refs []model.ArticleRef
	for rows.Next() {
		var ref model.ArticleRef
		var originalLink, publishedAt sql.NullString

		if err := rows.Scan(&ref.Position, &ref.Title, &ref.Link, &originalLink, &publishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		ref.OriginalLink = originalLink.String
		if publishedAt.Valid {
			ref.PublishedAt = parseTimestamp(publishedAt.String)
		}
		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

// DeleteRun removes a run and its dependent rows.
// Returns false when the run ID does not exist.
func (hdb *HistoryDB) DeleteRun(ctx context.Context, id int64) (bool, error) {
	// Dependent tables carry ON DELETE CASCADE, but SQLite only honors it
	// with foreign keys enabled, so delete explicitly.
	tx, err := hdb.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	for _, stmt := range []string{
		"DELETE FROM run_keywords WHERE run_id = ?",
		"DELETE FROM run_articles WHERE run_id = ?",
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return false, fmt.Errorf("failed to delete run rows: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit delete: %w", err)
	}

	return affected > 0, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

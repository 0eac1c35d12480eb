package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tacravensolutionsllc-dotcom/blogsmith/internal/trends"
)

// Archive is the long-term sqlite store of fetched news items. The JSON data
// cache only ever holds the latest fetch; the archive keeps everything seen,
// keyed by link, so older headlines survive cache replacement.
type Archive struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

// Open creates or opens the archive database, creating parent directories
// as needed.
func Open(dbPath string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating archive dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	a := &Archive{readDB: readDB, writeDB: writeDB}
	if err := a.init(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *Archive) init() error {
	_, err := a.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS items (
			link        TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			source      TEXT NOT NULL DEFAULT '',
			published   TEXT NOT NULL DEFAULT '',
			archived_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_items_archived ON items(archived_at DESC);
		CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (a *Archive) Close() error {
	var errs []error
	if a.readDB != nil {
		errs = append(errs, a.readDB.Close())
	}
	if a.writeDB != nil {
		errs = append(errs, a.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Record upserts a batch of fetched items. Re-fetched links refresh their
// title and description but keep their original archive timestamp.
func (a *Archive) Record(items []trends.NewsItem, now time.Time) error {
	tx, err := a.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO items (link, title, description, category, source, published, archived_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(link) DO UPDATE SET
			title = excluded.title,
			description = excluded.description
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if item.Link == "" {
			continue
		}
		_, err := stmt.Exec(item.Link, item.Title, item.Description, item.Category, item.Source, item.Date, now)
		if err != nil {
			return fmt.Errorf("archiving %s: %w", item.Link, err)
		}
	}

	return tx.Commit()
}

// Recent returns the most recently archived items, newest first.
func (a *Archive) Recent(limit int) ([]trends.NewsItem, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := a.readDB.Query(`
		SELECT link, title, description, category, source, published
		FROM items ORDER BY archived_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var items []trends.NewsItem
	for rows.Next() {
		var item trends.NewsItem
		if err := rows.Scan(&item.Link, &item.Title, &item.Description, &item.Category, &item.Source, &item.Date); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Prune deletes items archived before now minus retention and returns how
// many were removed.
func (a *Archive) Prune(retention time.Duration, now time.Time) (int64, error) {
	res, err := a.writeDB.Exec("DELETE FROM items WHERE archived_at < ?", now.Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("pruning archive: %w", err)
	}
	return res.RowsAffected()
}

// SourceCount is one row of the per-source breakdown.
type SourceCount struct {
	Source string
	Count  int
}

// Stats summarizes the archive contents.
type Stats struct {
	Total     int
	Size      int64
	BySource  []SourceCount
	OldestAge time.Duration
}

// Stats reports item counts, the on-disk size of dbPath, and a per-source
// breakdown ordered by volume.
func (a *Archive) Stats(dbPath string, now time.Time) (Stats, error) {
	var s Stats
	if err := a.readDB.QueryRow("SELECT COUNT(*) FROM items").Scan(&s.Total); err != nil {
		return s, fmt.Errorf("counting items: %w", err)
	}

	rows, err := a.readDB.Query(`
		SELECT source, COUNT(*) FROM items GROUP BY source ORDER BY COUNT(*) DESC, source
	`)
	if err != nil {
		return s, fmt.Errorf("counting by source: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sc SourceCount
		if err := rows.Scan(&sc.Source, &sc.Count); err != nil {
			return s, err
		}
		s.BySource = append(s.BySource, sc)
	}
	if err := rows.Err(); err != nil {
		return s, err
	}

	if s.Total > 0 {
		var oldest time.Time
		err := a.readDB.QueryRow("SELECT archived_at FROM items ORDER BY archived_at ASC LIMIT 1").Scan(&oldest)
		if err == nil {
			s.OldestAge = now.Sub(oldest)
		}
	}

	if fi, err := os.Stat(dbPath); err == nil {
		s.Size = fi.Size()
	}
	return s, nil
}

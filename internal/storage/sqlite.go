package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite query cache. The cache is disposable: it is rebuilt
// wholesale from the graph model and never the source of truth.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the cache database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS articles (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			authors_json TEXT NOT NULL,
			year INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS edges (
			from_key TEXT NOT NULL,
			to_key TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_edges_to ON edges(to_key);
		CREATE INDEX IF NOT EXISTS idx_articles_year ON articles(year);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild clears the cache and repopulates it from a graph model.
// Returns the number of articles and edges loaded.
func (d *DB) Rebuild(m *Model) (articles, edges int, err error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return 0, 0, fmt.Errorf("clearing articles: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM edges`); err != nil {
		return 0, 0, fmt.Errorf("clearing edges: %w", err)
	}

	for _, a := range m.Articles {
		authorsJSON, err := json.Marshal(a.Author)
		if err != nil {
			return 0, 0, fmt.Errorf("encoding authors for %s: %w", a.Key, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO articles (key, title, authors_json, year) VALUES (?, ?, ?, ?)`,
			a.Key, a.Title, string(authorsJSON), a.Year,
		); err != nil {
			return 0, 0, fmt.Errorf("inserting article %s: %w", a.Key, err)
		}
		articles++
	}

	for _, e := range m.Edges {
		if _, err := tx.Exec(
			`INSERT INTO edges (from_key, to_key) VALUES (?, ?)`,
			e.From, e.To,
		); err != nil {
			return 0, 0, fmt.Errorf("inserting edge %s -> %s: %w", e.From, e.To, err)
		}
		edges++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return articles, edges, nil
}

// ListArticles returns articles ordered by year then key. A zero year means
// all years.
func (d *DB) ListArticles(year int) ([]ModelArticle, error) {
	query := `SELECT key, title, authors_json, year FROM articles`
	var args []interface{}
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY year, key`

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []ModelArticle
	for rows.Next() {
		var a ModelArticle
		var authorsJSON string
		if err := rows.Scan(&a.Key, &a.Title, &authorsJSON, &a.Year); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		if err := json.Unmarshal([]byte(authorsJSON), &a.Author); err != nil {
			return nil, fmt.Errorf("decoding authors for %s: %w", a.Key, err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// CitationCount pairs an article with its in-degree.
type CitationCount struct {
	Key       string `json:"key"`
	Title     string `json:"title"`
	Citations int    `json:"citations"`
}

// CitationCounts returns every article with how often it is cited within
// the set, most cited first.
func (d *DB) CitationCounts() ([]CitationCount, error) {
	rows, err := d.db.Query(`
		SELECT a.key, a.title, COUNT(e.to_key)
		FROM articles a
		LEFT JOIN edges e ON e.to_key = a.key
		GROUP BY a.key, a.title
		ORDER BY COUNT(e.to_key) DESC, a.key`)
	if err != nil {
		return nil, fmt.Errorf("querying citation counts: %w", err)
	}
	defer rows.Close()

	var counts []CitationCount
	for rows.Next() {
		var c CitationCount
		if err := rows.Scan(&c.Key, &c.Title, &c.Citations); err != nil {
			return nil, fmt.Errorf("scanning citation count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// YearCount is the number of articles published in one year.
type YearCount struct {
	Year     int `json:"year"`
	Articles int `json:"articles"`
}

// YearHistogram returns article counts per publication year, ascending.
func (d *DB) YearHistogram() ([]YearCount, error) {
	rows, err := d.db.Query(`
		SELECT year, COUNT(*) FROM articles GROUP BY year ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("querying year histogram: %w", err)
	}
	defer rows.Close()

	var counts []YearCount
	for rows.Next() {
		var c YearCount
		if err := rows.Scan(&c.Year, &c.Articles); err != nil {
			return nil, fmt.Errorf("scanning year count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

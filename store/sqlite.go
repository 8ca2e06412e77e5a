// Package store persists decoded weather bulletins to an embedded SQLite
// database, in the same role the ACARS ingest pipeline's sqlite store
// plays for its own parsed messages: a queryable local record of
// everything that passed through the parser.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS reports (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	station     TEXT NOT NULL,
	kind        TEXT NOT NULL,
	received_at TEXT NOT NULL,
	raw_text    TEXT NOT NULL,
	decoded_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS reports_station_idx ON reports(station);
CREATE INDEX IF NOT EXISTS reports_kind_idx ON reports(kind);
`

// DB wraps a SQLite connection used to persist decoded reports.
type DB struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Record is a persisted decoded report.
type Record struct {
	ID          int64
	Station     string
	Kind        string // "metar" or "taf"
	ReceivedAt  time.Time
	RawText     string
	DecodedJSON string
}

// Insert stores a decoded report and returns its assigned ID.
func (d *DB) Insert(r Record) (int64, error) {
	res, err := d.db.Exec(
		`INSERT INTO reports (station, kind, received_at, raw_text, decoded_json) VALUES (?, ?, ?, ?, ?)`,
		r.Station, r.Kind, r.ReceivedAt.UTC().Format(time.RFC3339), r.RawText, r.DecodedJSON,
	)
	if err != nil {
		return 0, fmt.Errorf("insert report: %w", err)
	}
	return res.LastInsertId()
}

// QueryParams filters a call to Query.
type QueryParams struct {
	Station string // exact match, empty means no filter
	Kind    string // exact match, empty means no filter
	Limit   int    // defaults to 100
}

// Query retrieves reports matching the given parameters, most recent first.
func (d *DB) Query(p QueryParams) ([]Record, error) {
	query := `SELECT id, station, kind, received_at, raw_text, decoded_json FROM reports WHERE 1=1`
	var args []any
	if p.Station != "" {
		query += " AND station = ?"
		args = append(args, p.Station)
	}
	if p.Kind != "" {
		query += " AND kind = ?"
		args = append(args, p.Kind)
	}
	limit := p.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var r Record
		var receivedAt string
		if err := rows.Scan(&r.ID, &r.Station, &r.Kind, &receivedAt, &r.RawText, &r.DecodedJSON); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r.ReceivedAt, _ = time.Parse(time.RFC3339, receivedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByStation returns the number of stored reports grouped by station.
func (d *DB) CountByStation() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT station, COUNT(*) FROM reports GROUP BY station ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("count by station: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[string]int)
	for rows.Next() {
		var station string
		var count int
		if err := rows.Scan(&station, &count); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts[station] = count
	}
	return counts, rows.Err()
}

// Package store provides a SQLite-backed revision journal for outline
// documents. Every persist records a timestamped full-document copy, pruned
// to the newest few per document. The journal is a recovery safety net, not
// an undo stack; nothing in the editor rewinds state from it.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS revisions (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	doc_path  TEXT NOT NULL,
	content   TEXT NOT NULL,
	hash      TEXT NOT NULL,
	lines     INTEGER NOT NULL,
	created   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_revisions_doc ON revisions(doc_path, created);
`

// Revision is one recorded document snapshot.
type Revision struct {
	ID      int64
	Hash    string
	Lines   int
	Created time.Time
	Content string
}

// Journal is a SQLite-backed revision log. All methods are safe to call on a
// nil receiver, so the editor runs fine when the journal cannot be opened.
type Journal struct {
	mu   sync.Mutex
	db   *sql.DB
	keep int
}

// Open creates or opens a journal database at the given path. keep bounds how
// many revisions are retained per document.
func Open(dbPath string, keep int) (*Journal, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db: %w", err)
	}

	// SQLite pragmas for performance.
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if keep <= 0 {
		keep = 20
	}
	return &Journal{db: db, keep: keep}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j == nil {
		return nil
	}
	return j.db.Close()
}

// ContentHash returns the short content hash used to deduplicate revisions.
func ContentHash(content string) string {
	h := sha256.Sum256([]byte(content))
	return hex.EncodeToString(h[:8])
}

// Record stores a revision of the document. Recording content identical to
// the latest revision is a no-op. No-op on nil receiver; failures are logged,
// never surfaced, so the journal cannot get in the way of editing.
func (j *Journal) Record(docPath, content string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	hash := ContentHash(content)
	var latest string
	err := j.db.QueryRow(
		"SELECT hash FROM revisions WHERE doc_path = ? ORDER BY id DESC LIMIT 1",
		docPath,
	).Scan(&latest)
	if err == nil && latest == hash {
		return
	}

	lines := strings.Count(content, "\n") + 1
	_, err = j.db.Exec(
		"INSERT INTO revisions (doc_path, content, hash, lines, created) VALUES (?, ?, ?, ?, ?)",
		docPath, content, hash, lines, time.Now().Unix(),
	)
	if err != nil {
		log.Warn().Err(err).Str("doc", docPath).Msg("failed to record revision")
		return
	}
	j.prune(docPath)
}

// Latest returns the newest revision for a document.
func (j *Journal) Latest(docPath string) (Revision, bool) {
	if j == nil {
		return Revision{}, false
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	var r Revision
	var created int64
	err := j.db.QueryRow(
		"SELECT id, hash, lines, created, content FROM revisions WHERE doc_path = ? ORDER BY id DESC LIMIT 1",
		docPath,
	).Scan(&r.ID, &r.Hash, &r.Lines, &created, &r.Content)
	if err != nil {
		return Revision{}, false
	}
	r.Created = time.Unix(created, 0)
	return r, true
}

// Revisions returns up to limit revisions for a document, newest first.
func (j *Journal) Revisions(docPath string, limit int) []Revision {
	if j == nil {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	if limit <= 0 {
		limit = j.keep
	}
	rows, err := j.db.Query(
		"SELECT id, hash, lines, created, content FROM revisions WHERE doc_path = ? ORDER BY id DESC LIMIT ?",
		docPath, limit,
	)
	if err != nil {
		log.Warn().Err(err).Str("doc", docPath).Msg("failed to list revisions")
		return nil
	}
	defer rows.Close()

	var out []Revision
	for rows.Next() {
		var r Revision
		var created int64
		if err := rows.Scan(&r.ID, &r.Hash, &r.Lines, &created, &r.Content); err != nil {
			continue
		}
		r.Created = time.Unix(created, 0)
		out = append(out, r)
	}
	return out
}

// prune drops all but the newest keep revisions for a document.
// Caller holds the lock.
func (j *Journal) prune(docPath string) {
	res, err := j.db.Exec(
		`DELETE FROM revisions WHERE doc_path = ? AND id NOT IN (
			SELECT id FROM revisions WHERE doc_path = ? ORDER BY id DESC LIMIT ?
		)`,
		docPath, docPath, j.keep,
	)
	if err != nil {
		log.Warn().Err(err).Str("doc", docPath).Msg("failed to prune revisions")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Str("doc", docPath).Msg("pruned old revisions")
	}
}

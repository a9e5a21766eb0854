// Package cache stores rendered derivation output in a local SQLite
// database so unchanged schemas are not re-derived on every build.
// Entries are content-addressed: the key is a digest of the type's
// structure plus the requested interface list.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/funvibe/deriva/internal/typeinfo"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS derivations (
	fingerprint TEXT PRIMARY KEY,
	type_name   TEXT NOT NULL,
	rendered    TEXT NOT NULL,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached rendering for a fingerprint, if present.
func (s *Store) Get(fingerprint string) (string, bool, error) {
	var rendered string
	err := s.db.QueryRow(
		"SELECT rendered FROM derivations WHERE fingerprint = ?", fingerprint,
	).Scan(&rendered)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return rendered, true, nil
}

// Put stores a rendering, replacing any previous entry for the fingerprint.
func (s *Store) Put(fingerprint, typeName, rendered string) error {
	_, err := s.db.Exec(
		`INSERT INTO derivations (fingerprint, type_name, rendered) VALUES (?, ?, ?)
		 ON CONFLICT(fingerprint) DO UPDATE SET type_name = excluded.type_name, rendered = excluded.rendered`,
		fingerprint, typeName, rendered,
	)
	if err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Fingerprint computes the content digest of a type description plus the
// interfaces requested for it. Structurally identical requests always map
// to the same digest.
func Fingerprint(ti *typeinfo.ParamTypeInfo, interfaces []string) string {
	var sb strings.Builder
	sb.WriteString(ti.Name)
	sb.WriteString("|")
	for _, p := range ti.Params {
		sb.WriteString(p.Name)
		if p.Kind != nil {
			sb.WriteString(":")
			sb.WriteString(p.Kind.String())
		}
		sb.WriteString(";")
	}
	sb.WriteString("|")
	for _, c := range ti.Constructors {
		sb.WriteString(c.Name)
		sb.WriteString("(")
		for _, a := range c.Args {
			if !a.Explicit {
				sb.WriteString("{")
			}
			sb.WriteString(a.Type.String())
			if !a.Explicit {
				sb.WriteString("}")
			}
			sb.WriteString(",")
		}
		sb.WriteString(")")
	}
	sb.WriteString("|")
	sb.WriteString(strings.Join(interfaces, ","))

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

package server

import (
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Hari-prashath-123/Wire-EDM-AI-simulator/pkg/simulation"
)

// Cache persists parse results keyed by content hash, so re-uploading
// the same file skips the decode/slice pipeline.
type Cache struct {
	db *sql.DB
}

// NewCache opens (or creates) the sqlite cache at path. An empty path
// selects an in-memory database, which the tests use.
func NewCache(path string) (*Cache, error) {
	if path == "" {
		path = ":memory:"
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS model_cache (
		content_hash TEXT PRIMARY KEY,
		filename TEXT,
		result_json TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Fingerprint returns the cache key for a file's content.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// Get looks up a cached parse result by content hash.
func (c *Cache) Get(hash string) (*simulation.Result, bool) {
	var jsonStr string
	err := c.db.QueryRow("SELECT result_json FROM model_cache WHERE content_hash = ?", hash).Scan(&jsonStr)
	if err != nil {
		return nil, false
	}

	var result simulation.Result
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Put stores a parse result under its content hash.
func (c *Cache) Put(hash, filename string, result *simulation.Result) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	_, err = c.db.Exec(
		"INSERT OR REPLACE INTO model_cache (content_hash, filename, result_json) VALUES (?, ?, ?)",
		hash, filename, string(data))
	return err
}

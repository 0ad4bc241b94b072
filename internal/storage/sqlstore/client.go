// Package sqlstore persists engine readings, one MySQL/vitess-compatible
// table per engine (engine_<name>_readings, §4.6), adapted from the
// teacher's vitess client: same DSN-from-config, same driver. Connect only
// pings; each engine's table is ensured lazily on first use.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/witnessos/engine-core/internal/config"
	"github.com/witnessos/engine-core/internal/engine"
	"github.com/witnessos/engine-core/internal/monitoring"
)

// Client owns the SQL connection and the set of engine tables it has
// already ensured exist. Insert and Get are called from the orchestrator's
// per-request goroutines (§4.4 step 8, §4.4 RunMany parallel mode), so
// ensuredMu guards concurrent first-touch access to ensured the same way
// pkg/cache/noop_cache.go guards its in-memory map.
type Client struct {
	DB        *sql.DB
	ensuredMu sync.RWMutex
	ensured   map[string]bool
}

func dsnFrom(cfg config.DatabaseConfig) string {
	user := cfg.User
	if user == "" {
		user = "root"
	}
	host := cfg.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port == 0 {
		port = 15306
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "witnessos"
	}

	params := url.Values{}
	params.Set("parseTime", "true")
	if cfg.TLS {
		params.Set("tls", "preferred")
	}
	auth := user
	if cfg.Password != "" {
		auth = fmt.Sprintf("%s:%s", user, cfg.Password)
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?%s", auth, host, port, dbName, params.Encode())
}

// Connect dials cfg and verifies connectivity with a bounded ping. It does
// not create any engine table up front; tables are ensured lazily, one per
// engine, the first time a reading for that engine is persisted.
func Connect(cfg config.DatabaseConfig) (*Client, error) {
	dsn := dsnFrom(cfg)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Client{DB: db, ensured: make(map[string]bool)}, nil
}

func (c *Client) Close() error { return c.DB.Close() }

func tableName(engineName string) string {
	return fmt.Sprintf("engine_%s_readings", engineName)
}

// ensureTable creates engine_<name>_readings if it does not already exist.
// The schema mirrors the persisted-reading entity of §3.2: id, optional
// user_id, the JSON payload, the three timestamps, and privacy_level.
func (c *Client) ensureTable(ctx context.Context, engineName string) error {
	c.ensuredMu.RLock()
	done := c.ensured[engineName]
	c.ensuredMu.RUnlock()
	if done {
		return nil
	}

	c.ensuredMu.Lock()
	defer c.ensuredMu.Unlock()
	if c.ensured[engineName] {
		return nil
	}

	stmt := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		user_id VARCHAR(128),
		payload_json JSON NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		expires_at TIMESTAMP NULL,
		privacy_level VARCHAR(16) NOT NULL DEFAULT 'standard',
		INDEX idx_user_created (user_id, created_at DESC)
	)`, tableName(engineName))

	if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("ensure schema for %s: %w", tableName(engineName), err)
	}
	c.ensured[engineName] = true
	return nil
}

// biometricMaxRetention is the hard cap of §4.6 on readings whose privacy
// level is "biometric": no matter the requested retention_days, expires_at
// may never exceed this many days past created_at.
const biometricMaxRetention = 30 * 24 * time.Hour

// Insert persists one StorageEnvelope under its own engine's table.
// Biometric-level readings never receive raw image bytes in payload_json —
// engines are responsible for omitting those before this is called; this
// function only enforces the retention cap, the other half of the §4.6
// biometric constraint.
func (c *Client) Insert(ctx context.Context, env *engine.StorageEnvelope) error {
	engineName := env.EngineName
	if err := c.ensureTable(ctx, engineName); err != nil {
		monitoring.RecordPersistenceOperation("insert", engineName, false)
		return err
	}

	expiresAt := env.ExpiresAt
	if env.PrivacyLevel == engine.PrivacyBiometric {
		capped := env.CreatedAt.Add(biometricMaxRetention)
		if expiresAt == nil || expiresAt.After(capped) {
			expiresAt = &capped
		}
	}

	payload, err := json.Marshal(env)
	if err != nil {
		monitoring.RecordPersistenceOperation("insert", engineName, false)
		return fmt.Errorf("marshal payload for %s: %w", engineName, err)
	}

	stmt := fmt.Sprintf(`INSERT INTO %s (id, user_id, payload_json, created_at, updated_at, expires_at, privacy_level)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE payload_json = VALUES(payload_json), updated_at = VALUES(updated_at)`,
		tableName(engineName))

	_, err = c.DB.ExecContext(ctx, stmt,
		env.ReadingID, nullableString(env.UserID), payload,
		env.CreatedAt, env.UpdatedAt, expiresAt, string(env.PrivacyLevel),
	)
	if err != nil {
		monitoring.RecordPersistenceOperation("insert", engineName, false)
		return fmt.Errorf("insert into %s: %w", tableName(engineName), err)
	}
	monitoring.RecordPersistenceOperation("insert", engineName, true)
	return nil
}

// Get fetches one reading by engine name and id.
func (c *Client) Get(ctx context.Context, engineName, readingID string) (*engine.StorageEnvelope, error) {
	if err := c.ensureTable(ctx, engineName); err != nil {
		return nil, err
	}
	stmt := fmt.Sprintf(`SELECT payload_json FROM %s WHERE id = ?`, tableName(engineName))
	row := c.DB.QueryRowContext(ctx, stmt, readingID)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		return nil, err
	}
	var env engine.StorageEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, fmt.Errorf("unmarshal reading %s/%s: %w", engineName, readingID, err)
	}
	return &env, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

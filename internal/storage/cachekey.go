// Package storage implements the cache-key derivation and reading
// persistence of §4.6: a deterministic calc-key over an engine's validated
// input, a user-scoped key for direct reading lookup, and the SQL-backed
// per-engine reading store (see the sqlstore subpackage).
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// droppedCacheKeyFields are excluded from the canonical payload before
// hashing, so two inputs differing only in these fields share a cache key.
var droppedCacheKeyFields = map[string]bool{
	"cache_key":      true,
	"reading_id":     true,
	"timestamp":      true,
	"admin_api_key":  true,
}

// DeriveCacheKey computes the calc-key for engine's input: drop the
// volatile fields, serialise the remainder as canonical JSON (sorted keys,
// no whitespace), hash it, and take the first 12 hex characters.
func DeriveCacheKey(engineName string, input any) (string, error) {
	canonical, err := canonicalize(input)
	if err != nil {
		return "", fmt.Errorf("canonicalize input for %s: %w", engineName, err)
	}
	sum := sha256.Sum256(canonical)
	hash := hex.EncodeToString(sum[:])[:12]
	return fmt.Sprintf("calc:%s:%s", engineName, hash), nil
}

// UserScopedKey builds the direct-lookup key for one user's reading of a
// given engine and data type.
func UserScopedKey(userID, engineName, dataType, readingID string) string {
	return fmt.Sprintf("user:%s:%s:%s:%s", userID, engineName, dataType, readingID)
}

// canonicalize round-trips input through JSON so struct field ordering is
// irrelevant, drops the volatile top-level fields, then re-marshals with
// map keys in sorted order (Go's encoding/json already sorts map keys, so a
// plain Marshal over the decoded map is canonical).
func canonicalize(input any) ([]byte, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	for field := range droppedCacheKeyFields {
		delete(m, field)
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf []byte
	buf = append(buf, '{')
	for i, k := range keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		kb, _ := json.Marshal(k)
		buf = append(buf, kb...)
		buf = append(buf, ':')
		buf = append(buf, m[k]...)
	}
	buf = append(buf, '}')
	return buf, nil
}

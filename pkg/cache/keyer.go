package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Keyer derives cache keys for the things this project caches: rendered
// response documents and fetched remote documents.
type Keyer interface {
	// ResponseKey generates a key for a rendered response, derived from the
	// request path and raw query string.
	ResponseKey(path, query string) string

	// DocumentKey generates a key for a document fetched from a remote URL.
	DocumentKey(url string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ResponseKey generates a key for a rendered response.
func (k *DefaultKeyer) ResponseKey(path, query string) string {
	return hashKey("response", path, query)
}

// DocumentKey generates a key for a fetched document.
func (k *DefaultKeyer) DocumentKey(url string) string {
	return hashKey("document", url)
}

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, so
// several datasets or tenants can share one cache directory without key
// collisions.
//
// Example usage:
//
//	blogKeyer := NewScopedKeyer(NewDefaultKeyer(), "blog:")
//	shopKeyer := NewScopedKeyer(NewDefaultKeyer(), "shop:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ResponseKey generates a prefixed key for a rendered response.
func (k *ScopedKeyer) ResponseKey(path, query string) string {
	return k.prefix + k.inner.ResponseKey(path, query)
}

// DocumentKey generates a prefixed key for a fetched document.
func (k *ScopedKeyer) DocumentKey(url string) string {
	return k.prefix + k.inner.DocumentKey(url)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Use full SHA-256 hash (64 hex chars / 256 bits) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

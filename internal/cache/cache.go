package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a namespaced cache key. The namespace separates claim
// verification results from fetched article bodies so clearing one kind
// never evicts the other.
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(value))
	return "credlens:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}

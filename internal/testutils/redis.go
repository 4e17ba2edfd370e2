// Package testutils provides utilities for testing, including Redis test helpers
package testutils

import (
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alignment/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing. The
// miniredis server is returned so tests can inspect or corrupt raw keys.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(&redis.Options{Endpoints: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}

// HashTag returns the part of key that Redis Cluster hashes to pick a slot:
// the text inside the first {...} when it is non-empty, otherwise the key.
func HashTag(key string) string {
	start := strings.IndexByte(key, '{')
	if start < 0 {
		return key
	}
	end := strings.IndexByte(key[start+1:], '}')
	if end <= 0 {
		return key
	}
	return key[start+1 : start+1+end]
}

package testutil

import (
	"os"
	"testing"
)

// RedisAddr returns the integration Redis address from TEST_REDIS_ADDR,
// skipping the test when it is not set.
func RedisAddr(t *testing.T) string {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set; skipping Redis integration tests")
	}
	return addr
}

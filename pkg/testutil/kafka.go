package testutil

import (
	"os"
	"strings"
	"testing"
)

// KafkaBrokers returns the integration broker list from TEST_KAFKA_BROKERS
// (comma-separated), skipping the test when it is not set.
func KafkaBrokers(t *testing.T) []string {
	t.Helper()

	env := os.Getenv("TEST_KAFKA_BROKERS")
	if env == "" {
		t.Skip("TEST_KAFKA_BROKERS not set; skipping Kafka integration tests")
	}
	return strings.Split(env, ",")
}

package kafka

import (
	"crypto/tls"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"
)

// Config holds Kafka connection parameters.
type Config struct {
	ConsumerGroup string

	// SASL configuration for authentication.
	SASLMechanism string // "PLAIN" or "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables TLS for Kafka connections.
	TLS         bool
	SASLEnabled bool
}

// resolveSASL returns the SASL mechanism selected by the config.
func resolveSASL(cfg Config) sasl.Mechanism {
	switch cfg.SASLMechanism {
	case "SCRAM-SHA-256":
		m, err := scram.Mechanism(scram.SHA256, cfg.SASLUsername, cfg.SASLPassword)
		if err != nil {
			return nil
		}
		return m
	case "SCRAM-SHA-512":
		m, err := scram.Mechanism(scram.SHA512, cfg.SASLUsername, cfg.SASLPassword)
		if err != nil {
			return nil
		}
		return m
	case "PLAIN", "":
		return &plain.Mechanism{
			Username: cfg.SASLUsername,
			Password: cfg.SASLPassword,
		}
	default:
		return nil
	}
}

// newTransport builds a writer transport honoring TLS and SASL settings.
// Returns nil when neither is enabled so writers fall back to the default
// transport.
func newTransport(cfg Config) *kafkago.Transport {
	if !cfg.TLS && !cfg.SASLEnabled {
		return nil
	}

	t := &kafkago.Transport{}
	if cfg.TLS {
		t.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.SASLEnabled {
		t.SASL = resolveSASL(cfg)
	}
	return t
}

// newDialer is the reader-side counterpart of newTransport. Returns nil when
// neither TLS nor SASL is enabled.
func newDialer(cfg Config) *kafkago.Dialer {
	if !cfg.TLS && !cfg.SASLEnabled {
		return nil
	}

	d := &kafkago.Dialer{}
	if cfg.TLS {
		d.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.SASLEnabled {
		d.SASLMechanism = resolveSASL(cfg)
	}
	return d
}

package kafka

import (
	"testing"
)

func TestNewProducer(t *testing.T) {
	cfg := Config{
		Brokers:       []string{"localhost:9092", "localhost:9093"},
		ConsumerGroup: "test-group",
		TLS:           false,
	}

	p := NewProducer(cfg)
	if p == nil {
		t.Fatal("expected non-nil producer")
	}
	if len(p.brokers) != 2 {
		t.Fatalf("expected 2 brokers, got %d", len(p.brokers))
	}
	if p.brokers[0] != "localhost:9092" {
		t.Errorf("expected broker localhost:9092, got %s", p.brokers[0])
	}
	if p.brokers[1] != "localhost:9093" {
		t.Errorf("expected broker localhost:9093, got %s", p.brokers[1])
	}
	if p.writers == nil {
		t.Fatal("expected writers map to be initialized")
	}
	if len(p.writers) != 0 {
		t.Errorf("expected empty writers map, got %d entries", len(p.writers))
	}
	if p.transport != nil {
		t.Error("expected nil transport when TLS and SASL are disabled")
	}
}

func TestNewProducerWithTLSAndSASL(t *testing.T) {
	cfg := Config{
		Brokers:       []string{"kafka:9093"},
		TLS:           true,
		SASLEnabled:   true,
		SASLMechanism: "SCRAM-SHA-256",
		SASLUsername:  "svc-credit",
		SASLPassword:  "secret",
	}

	p := NewProducer(cfg)
	if p.transport == nil {
		t.Fatal("expected transport when TLS and SASL are enabled")
	}
	if p.transport.TLS == nil {
		t.Error("expected TLS config on transport")
	}
	if p.transport.SASL == nil {
		t.Error("expected SASL mechanism on transport")
	}
}

func TestNewProducerTLSOnly(t *testing.T) {
	cfg := Config{
		Brokers: []string{"kafka:9093"},
		TLS:     true,
	}

	p := NewProducer(cfg)
	if p.transport == nil {
		t.Fatal("expected transport when TLS is enabled")
	}
	if p.transport.TLS == nil {
		t.Error("expected TLS config on transport")
	}
	if p.transport.SASL != nil {
		t.Error("expected no SASL mechanism when SASL is disabled")
	}
}

func TestMessageConstruction(t *testing.T) {
	msg := Message{
		Key:   []byte("loan-42"),
		Value: []byte(`{"loan_id":42,"amount":"500000000"}`),
		Headers: map[string]string{
			"content-type": "application/json",
			"event-type":   "credit.loan.requested",
		},
	}

	if string(msg.Key) != "loan-42" {
		t.Errorf("expected key loan-42, got %s", string(msg.Key))
	}
	if string(msg.Value) != `{"loan_id":42,"amount":"500000000"}` {
		t.Errorf("unexpected value: %s", string(msg.Value))
	}
	if len(msg.Headers) != 2 {
		t.Fatalf("expected 2 headers, got %d", len(msg.Headers))
	}
	if msg.Headers["content-type"] != "application/json" {
		t.Errorf("unexpected content-type header: %s", msg.Headers["content-type"])
	}
	if msg.Headers["event-type"] != "credit.loan.requested" {
		t.Errorf("unexpected event-type header: %s", msg.Headers["event-type"])
	}
}

func TestMessageNilHeaders(t *testing.T) {
	msg := Message{}

	if msg.Headers != nil {
		t.Error("expected nil headers when not set")
	}
}

func TestGetOrCreateWriter(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092"},
	}
	p := NewProducer(cfg)

	w1 := p.getOrCreateWriter("topic-a")
	if w1 == nil {
		t.Fatal("expected non-nil writer")
	}

	// Same topic should return the same writer instance.
	w2 := p.getOrCreateWriter("topic-a")
	if w1 != w2 {
		t.Error("expected same writer instance for same topic")
	}

	// Different topic should return a different writer.
	w3 := p.getOrCreateWriter("topic-b")
	if w3 == nil {
		t.Fatal("expected non-nil writer for topic-b")
	}
	if w1 == w3 {
		t.Error("expected different writer instance for different topic")
	}

	if len(p.writers) != 2 {
		t.Errorf("expected 2 writers, got %d", len(p.writers))
	}
}

func TestProducerClose(t *testing.T) {
	cfg := Config{
		Brokers: []string{"localhost:9092"},
	}
	p := NewProducer(cfg)

	// Create a few writers.
	_ = p.getOrCreateWriter("topic-a")
	_ = p.getOrCreateWriter("topic-b")

	if len(p.writers) != 2 {
		t.Fatalf("expected 2 writers before close, got %d", len(p.writers))
	}

	err := p.Close()
	if err != nil {
		t.Fatalf("unexpected error on close: %v", err)
	}

	if len(p.writers) != 0 {
		t.Errorf("expected 0 writers after close, got %d", len(p.writers))
	}
}

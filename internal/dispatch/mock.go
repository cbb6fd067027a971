package dispatch

import (
	"context"
	"sync"
)

// Record is a message captured by MockProducer.
type Record struct {
	Topic string
	Value []byte
}

// MockProducer is an in-memory Producer for tests. Publishing completes
// synchronously.
type MockProducer struct {
	mu         sync.RWMutex
	records    []Record
	produceErr error
	closed     bool
}

func NewMockProducer() *MockProducer {
	return &MockProducer{}
}

// SetError makes every following Produce fail with err.
func (m *MockProducer) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.produceErr = err
}

func (m *MockProducer) Produce(_ context.Context, topic string, value []byte, done func(error)) {
	m.mu.Lock()
	err := m.produceErr
	if err == nil {
		m.records = append(m.records, Record{Topic: topic, Value: value})
	}
	m.mu.Unlock()

	if done != nil {
		done(err)
	}
}

func (m *MockProducer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// Records returns a copy of everything published so far.
func (m *MockProducer) Records() []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]Record, len(m.records))
	copy(records, m.records)
	return records
}

// RecordsFor returns the records published to topic.
func (m *MockProducer) RecordsFor(topic string) []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Record
	for _, r := range m.records {
		if r.Topic == topic {
			out = append(out, r)
		}
	}
	return out
}

func (m *MockProducer) IsClosed() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.closed
}

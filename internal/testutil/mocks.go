package testutil

import (
	"context"
	"fmt"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (e LogEntry) Message() string {
	return fmt.Sprintf(e.Format, e.Args...)
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Messages returns the formatted messages logged at level.
func (m *MockLogger) Messages(level string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, e := range m.Logs {
		if e.Level == level {
			out = append(out, e.Message())
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (m *MockLogger) Contains(level, substr string) bool {
	for _, msg := range m.Messages(level) {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu     sync.Mutex
	Data   map[string][]byte
	Clears int
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data = make(map[string][]byte)
	m.Clears++
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu              sync.Mutex
	Requests        map[string]int
	CacheHits       int
	CacheMisses     int
	OperationErrors map[string]int
	Flushes         int
	FlushErr        error
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Requests: make(map[string]int), OperationErrors: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[fmt.Sprintf("%s %d", endpoint, status)]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}
func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}
func (m *MockMetrics) IncOperationErrors(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.OperationErrors[operation]++
}
func (m *MockMetrics) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Flushes++
	return m.FlushErr
}

func (m *MockMetrics) FlushCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Flushes
}

// MockArchiveStore implements services.ArchiveStoreInterface in memory.
type MockArchiveStore struct {
	mu        sync.Mutex
	Archives  map[string]*models.MonthlyArchive
	UpsertErr error
	ListErr   error
	GetErr    error
	Upserts   int
}

func NewMockArchiveStore() *MockArchiveStore {
	return &MockArchiveStore{Archives: make(map[string]*models.MonthlyArchive)}
}

func (m *MockArchiveStore) Upsert(_ context.Context, archive *models.MonthlyArchive) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	m.Upserts++
	m.Archives[archive.Month] = archive
	return nil
}

func (m *MockArchiveStore) ListMonths(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	months := make([]string, 0, len(m.Archives))
	for k := range m.Archives {
		months = append(months, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}

func (m *MockArchiveStore) Get(_ context.Context, month string) (*models.MonthlyArchive, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Archives[month], nil
}

package providers

import (
	"bytes"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type transportTestMetrics struct {
	mu       sync.Mutex
	requests map[string]int
}

func (m *transportTestMetrics) IncRequestsTotal(endpoint string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.requests == nil {
		m.requests = map[string]int{}
	}
	m.requests[endpoint] = status
}
func (m *transportTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *transportTestMetrics) IncCacheHits()                                    {}
func (m *transportTestMetrics) IncCacheMisses()                                  {}
func (m *transportTestMetrics) IncOperationErrors(_ string)                      {}
func (m *transportTestMetrics) Flush() error                                     { return nil }

const transportPayload = `{"player1":{"dailyScores":{},"total":0}}`

func compressedServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Request-Id", r.Header.Get(RequestIdHeader))
		w.Header().Set("X-Seen-Accept-Encoding", r.Header.Get("Accept-Encoding"))
		switch r.URL.Query().Get("encoding") {
		case "zstd":
			enc, err := zstd.NewWriter(nil)
			require.NoError(t, err)
			w.Header().Set("Content-Encoding", "zstd")
			w.Write(enc.EncodeAll([]byte(transportPayload), nil))
			enc.Close()
		case "gzip":
			var buf bytes.Buffer
			gz := gzip.NewWriter(&buf)
			gz.Write([]byte(transportPayload))
			gz.Close()
			w.Header().Set("Content-Encoding", "gzip")
			w.Write(buf.Bytes())
		default:
			w.Write([]byte(transportPayload))
		}
	}))
}

func testClient(metrics MetricsProviderInterface) *http.Client {
	return &http.Client{
		Transport: NewInstrumentedTransport(&cacheTestLogger{}, metrics, &decodingTransport{next: http.DefaultTransport}),
	}
}

func fetchBody(t *testing.T, client *http.Client, url string) (*http.Response, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestTransport_DecodesZstd(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	resp, body := fetchBody(t, testClient(&transportTestMetrics{}), srv.URL+"/api/scores?encoding=zstd")
	assert.Equal(t, transportPayload, body)
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
	assert.True(t, resp.Uncompressed)
}

func TestTransport_DecodesGzip(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	resp, body := fetchBody(t, testClient(&transportTestMetrics{}), srv.URL+"/api/scores?encoding=gzip")
	assert.Equal(t, transportPayload, body)
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestTransport_PlainBodyUntouched(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	resp, body := fetchBody(t, testClient(&transportTestMetrics{}), srv.URL+"/api/scores")
	assert.Equal(t, transportPayload, body)
	assert.False(t, resp.Uncompressed)
}

func TestTransport_SetsHeaders(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	resp, _ := fetchBody(t, testClient(&transportTestMetrics{}), srv.URL+"/api/scores")
	assert.Len(t, resp.Header.Get("X-Seen-Request-Id"), 36)
	assert.Equal(t, "zstd, gzip", resp.Header.Get("X-Seen-Accept-Encoding"))
}

func TestTransport_KeepsCallerRequestId(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/scores", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIdHeader, "fixed-id")

	resp, err := testClient(&transportTestMetrics{}).Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "fixed-id", resp.Header.Get("X-Seen-Request-Id"))
}

func TestTransport_RecordsMetrics(t *testing.T) {
	srv := compressedServer(t)
	defer srv.Close()

	metrics := &transportTestMetrics{}
	fetchBody(t, testClient(metrics), srv.URL+"/api/scores?month=2024-02")

	assert.Equal(t, 200, metrics.requests["GET /api/scores"])
}

func TestTransport_RecordsFailure(t *testing.T) {
	srv := compressedServer(t)
	url := srv.URL
	srv.Close()

	metrics := &transportTestMetrics{}
	_, err := testClient(metrics).Get(url + "/api/scores")
	assert.Error(t, err)
	assert.Equal(t, 0, metrics.requests["GET /api/scores"])
	assert.Contains(t, metrics.requests, "GET /api/scores")
}

func TestNewHttpClient_DisablesKeepAlives(t *testing.T) {
	conf := validConfig()
	client := NewHttpClient(conf, &cacheTestLogger{}, &transportTestMetrics{})

	assert.Equal(t, 15*time.Second, client.Timeout)
	it, ok := client.Transport.(*instrumentedTransport)
	require.True(t, ok)
	dt, ok := it.next.(*decodingTransport)
	require.True(t, ok)
	base, ok := dt.next.(*http.Transport)
	require.True(t, ok)
	assert.True(t, base.DisableKeepAlives)
}

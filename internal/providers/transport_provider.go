package providers

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"io"
	"net/http"
	"scoreboard/internal/structures"
	"strings"
	"time"
)

const (
	RequestIdHeader = "X-Request-Id"
	acceptEncoding  = "zstd, gzip"
)

// NewHttpClient builds the client shared by the score services. Connections
// are not kept alive between menu operations.
func NewHttpClient(conf *structures.Config, logger Logger, metrics MetricsProviderInterface) *http.Client {
	base := &http.Transport{
		Proxy:             http.ProxyFromEnvironment,
		DisableKeepAlives: true,
	}
	return &http.Client{
		Timeout:   conf.Http.Timeout,
		Transport: NewInstrumentedTransport(logger, metrics, &decodingTransport{next: base}),
	}
}

type instrumentedTransport struct {
	next    http.RoundTripper
	logger  Logger
	metrics MetricsProviderInterface
}

// NewInstrumentedTransport tags every request with an id, logs it on the
// channel for its method and records count and latency per endpoint.
func NewInstrumentedTransport(logger Logger, metrics MetricsProviderInterface, next http.RoundTripper) http.RoundTripper {
	return &instrumentedTransport{next: next, logger: logger, metrics: metrics}
}

func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	id := req.Header.Get(RequestIdHeader)
	if id == "" {
		id = uuid.NewString()
		req.Header.Set(RequestIdHeader, id)
	}

	logType := GetLogTypeByRequestType(req.Method)
	endpoint := req.Method + " " + req.URL.Path
	t.logger.Debugf(logType, "[%s] %s %s", id, req.Method, req.URL.Redacted())

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	t.metrics.IncRequestsTotal(endpoint, status)
	t.metrics.ObserveRequestDuration(endpoint, duration)

	if err != nil {
		t.logger.Debugf(logType, "[%s] %s failed after %s: %s", id, endpoint, duration, err)
		return nil, err
	}
	t.logger.Debugf(logType, "[%s] %s -> %d in %s", id, endpoint, status, duration)
	return resp, nil
}

// decodingTransport negotiates zstd or gzip and hands callers a plain body.
type decodingTransport struct {
	next http.RoundTripper
}

func (t *decodingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("Accept-Encoding", acceptEncoding)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	encoding := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	var body io.ReadCloser
	switch encoding {
	case "", "identity":
		return resp, nil
	case "zstd":
		dec, err := zstd.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("zstd response: %w", err)
		}
		body = &zstdBody{dec: dec, src: resp.Body}
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("gzip response: %w", err)
		}
		body = &gzipBody{gz: gz, src: resp.Body}
	default:
		return resp, nil
	}

	resp.Body = body
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true
	return resp, nil
}

type zstdBody struct {
	dec *zstd.Decoder
	src io.ReadCloser
}

func (b *zstdBody) Read(p []byte) (int, error) { return b.dec.Read(p) }

func (b *zstdBody) Close() error {
	b.dec.Close()
	return b.src.Close()
}

type gzipBody struct {
	gz  *gzip.Reader
	src io.ReadCloser
}

func (b *gzipBody) Read(p []byte) (int, error) { return b.gz.Read(p) }

func (b *gzipBody) Close() error {
	_ = b.gz.Close()
	return b.src.Close()
}

package services

import (
	"context"
	"fmt"
	"github.com/supabase-community/postgrest-go"
	"io"
	"net/http"
	"scoreboard/internal/models"
	"scoreboard/internal/structures"
	"time"
)

const archivesTable = "monthly_archives"

type ArchiveStoreInterface interface {
	Upsert(ctx context.Context, archive *models.MonthlyArchive) error
	ListMonths(ctx context.Context) ([]string, error)
	Get(ctx context.Context, month string) (*models.MonthlyArchive, error)
}

// ArchiveStore reads and writes monthly_archives through PostgREST.
type ArchiveStore struct {
	creds      *structures.SupabaseCredentials
	httpClient *http.Client
}

// NewArchiveStore sends requests through httpClient's transport so they are
// logged and measured like the daily_scores calls, and bounds them by its
// Timeout.
func NewArchiveStore(creds *structures.SupabaseCredentials, httpClient *http.Client) ArchiveStoreInterface {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ArchiveStore{creds: creds, httpClient: httpClient}
}

// table returns a query builder whose requests carry ctx. postgrest-go
// builds requests without a context, so the binding happens in the
// transport.
func (a *ArchiveStore) table(ctx context.Context) (*postgrest.QueryBuilder, error) {
	client := postgrest.NewClient(a.creds.RestUrl, a.creds.Schema, map[string]string{
		"apikey":        a.creds.ApiKey,
		"Authorization": "Bearer " + a.creds.ApiKey,
	})
	if client.ClientError != nil {
		return nil, client.ClientError
	}
	next := a.httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	client.Transport.Parent = &boundTransport{ctx: ctx, timeout: a.httpClient.Timeout, next: next}
	return client.From(archivesTable), nil
}

// boundTransport runs each request under ctx, limited to timeout when set.
type boundTransport struct {
	ctx     context.Context
	timeout time.Duration
	next    http.RoundTripper
}

func (t *boundTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var ctx context.Context
	var cancel context.CancelFunc
	if t.timeout > 0 {
		ctx, cancel = context.WithTimeout(t.ctx, t.timeout)
	} else {
		ctx, cancel = context.WithCancel(t.ctx)
	}
	resp, err := t.next.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelBody{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelBody releases the request context once the body is drained or
// closed. postgrest-go reads to EOF but never closes.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil {
		b.cancel()
	}
	return n, err
}

func (b *cancelBody) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func (a *ArchiveStore) Upsert(ctx context.Context, archive *models.MonthlyArchive) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query, err := a.table(ctx)
	if err != nil {
		return err
	}
	_, _, err = query.
		Upsert(archive, "month", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("upsert %s archive: %w", archive.Month, err)
	}
	return nil
}

func (a *ArchiveStore) ListMonths(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []struct {
		Month string `json:"month"`
	}
	query, err := a.table(ctx)
	if err != nil {
		return nil, err
	}
	_, err = query.
		Select("month", "", false).
		Order("month", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list archived months: %w", err)
	}
	months := make([]string, 0, len(rows))
	for _, r := range rows {
		months = append(months, r.Month)
	}
	return months, nil
}

// Get returns nil without error when the month was never archived.
func (a *ArchiveStore) Get(ctx context.Context, month string) (*models.MonthlyArchive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var rows []models.MonthlyArchive
	query, err := a.table(ctx)
	if err != nil {
		return nil, err
	}
	_, err = query.
		Select("month,archive_data,created_at", "", false).
		Eq("month", month).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("fetch %s archive: %w", month, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"net/url"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"scoreboard/internal/structures"
	"time"
)

const scoresTable = "daily_scores"

var ErrNothingToArchive = errors.New("no unarchived scores for month")

var ErrUnknownPlayer = errors.New("score belongs to a player outside the roster")

type SupabaseScoreServiceInterface interface {
	FetchScores(ctx context.Context, month models.Month) (models.PlayerScores, error)
	ArchiveMonth(ctx context.Context, month models.Month) (models.PlayerScores, error)
	ListArchivedMonths(ctx context.Context) ([]string, error)
	FetchArchivedMonth(ctx context.Context, month models.Month) (models.PlayerScores, error)
	Roster() models.Roster
}

// SupabaseScoreService reads daily_scores over the PostgREST HTTP interface
// and keeps month archives in an ArchiveStore.
type SupabaseScoreService struct {
	creds   *structures.SupabaseCredentials
	client  *http.Client
	archive ArchiveStoreInterface
	cache   providers.CacheProviderInterface
	logger  providers.Logger
	roster  models.Roster
	now     func() time.Time
}

func NewSupabaseScoreService(creds *structures.SupabaseCredentials, conf *structures.Config, client *http.Client, archive ArchiveStoreInterface, cache providers.CacheProviderInterface, logger providers.Logger) SupabaseScoreServiceInterface {
	return &SupabaseScoreService{
		creds:   creds,
		client:  client,
		archive: archive,
		cache:   cache,
		logger:  logger,
		roster:  models.Roster(conf.Players),
		now:     time.Now,
	}
}

func (s *SupabaseScoreService) Roster() models.Roster {
	return s.roster
}

func (s *SupabaseScoreService) headers() map[string]string {
	return map[string]string{
		"apikey":          s.creds.ApiKey,
		"Authorization":   "Bearer " + s.creds.ApiKey,
		"Accept-Profile":  s.creds.Schema,
		"Content-Profile": s.creds.Schema,
	}
}

func (s *SupabaseScoreService) monthFilter(month models.Month) url.Values {
	start, end := month.Range()
	return url.Values{"date": {"gte." + start, "lte." + end}}
}

func (s *SupabaseScoreService) fetchRecords(ctx context.Context, month models.Month) ([]models.ScoreRecord, error) {
	q := s.monthFilter(month)
	q.Set("select", "*,players(name)")
	q.Set("archived", "eq.false")
	q.Set("order", "date.asc")

	data, err := doRequest(ctx, s.client, http.MethodGet, s.creds.RestUrl+"/"+scoresTable+"?"+q.Encode(), s.headers(), nil)
	if err != nil {
		return nil, err
	}
	var records []models.ScoreRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", scoresTable, err)
	}
	return records, nil
}

func (s *SupabaseScoreService) FetchScores(ctx context.Context, month models.Month) (models.PlayerScores, error) {
	cacheKey := "supabase:scores:" + month.String()
	if data, ok := s.cache.Get(cacheKey); ok {
		var records []models.ScoreRecord
		if err := json.Unmarshal(data, &records); err == nil {
			s.logger.Debugf(providers.TypeGet, "Serving %s scores from cache", month)
			return AggregateRecords(s.roster, month, records, s.logger), nil
		}
	}

	records, err := s.fetchRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(records); err == nil {
		s.cache.Set(cacheKey, data)
	}
	return AggregateRecords(s.roster, month, records, s.logger), nil
}

// ArchiveMonth snapshots the month's unarchived scores into monthly_archives
// and then flags the rows archived. The snapshot is written first so a failed
// flag step can be retried without losing data. Every row in the month is
// flagged, so a row the snapshot cannot hold aborts the archive before
// anything is written.
func (s *SupabaseScoreService) ArchiveMonth(ctx context.Context, month models.Month) (models.PlayerScores, error) {
	records, err := s.fetchRecords(ctx, month)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", month, ErrNothingToArchive)
	}
	for _, rec := range records {
		if _, ok := s.roster.KeyFor(rec.Players.Name); !ok {
			return nil, fmt.Errorf("archive %s: score %d: %w: %q", month, rec.ID, ErrUnknownPlayer, rec.Players.Name)
		}
	}

	scores := AggregateRecords(s.roster, month, records, s.logger)
	err = s.archive.Upsert(ctx, &models.MonthlyArchive{
		Month:       month.String(),
		ArchiveData: scores,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	headers := s.headers()
	headers["Prefer"] = "return=minimal"
	_, err = doRequest(ctx, s.client, http.MethodPatch, s.creds.RestUrl+"/"+scoresTable+"?"+s.monthFilter(month).Encode(), headers, map[string]bool{"archived": true})
	if err != nil {
		return nil, err
	}

	s.cache.Clear()
	s.logger.Infof(providers.TypePost, "Archived %d scores for %s", len(records), month)
	return scores, nil
}

func (s *SupabaseScoreService) ListArchivedMonths(ctx context.Context) ([]string, error) {
	return s.archive.ListMonths(ctx)
}

// FetchArchivedMonth returns nil scores when the month has no archive.
func (s *SupabaseScoreService) FetchArchivedMonth(ctx context.Context, month models.Month) (models.PlayerScores, error) {
	cacheKey := "supabase:archive:" + month.String()
	if data, ok := s.cache.Get(cacheKey); ok {
		var scores models.PlayerScores
		if err := json.Unmarshal(data, &scores); err == nil {
			return NormalizeScores(s.roster, month, scores, s.logger), nil
		}
	}

	archive, err := s.archive.Get(ctx, month.String())
	if err != nil {
		return nil, err
	}
	if archive == nil {
		return nil, nil
	}
	if data, err := json.Marshal(archive.ArchiveData); err == nil {
		s.cache.Set(cacheKey, data)
	}
	return NormalizeScores(s.roster, month, archive.ArchiveData, s.logger), nil
}

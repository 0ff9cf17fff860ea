package services

import (
	"context"
	"fmt"
	json "github.com/goccy/go-json"
	"net/http"
	"net/url"
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
	"scoreboard/internal/structures"
	"strings"
)

type LegacyScoreServiceInterface interface {
	FetchScores(ctx context.Context, month models.Month) (models.PlayerScores, error)
	UpdateScore(ctx context.Context, req *models.UpdateScoreRequest) error
	ArchiveMonth(ctx context.Context, month models.Month) error
	Roster() models.Roster
}

// LegacyScoreService talks to the scoreboard's own REST API.
type LegacyScoreService struct {
	baseUrl string
	client  *http.Client
	cache   providers.CacheProviderInterface
	logger  providers.Logger
	roster  models.Roster
}

func NewLegacyScoreService(conf *structures.Config, client *http.Client, cache providers.CacheProviderInterface, logger providers.Logger) LegacyScoreServiceInterface {
	return &LegacyScoreService{
		baseUrl: strings.TrimRight(conf.Legacy.BaseUrl, "/"),
		client:  client,
		cache:   cache,
		logger:  logger,
		roster:  models.Roster(conf.Players),
	}
}

func (s *LegacyScoreService) Roster() models.Roster {
	return s.roster
}

func (s *LegacyScoreService) FetchScores(ctx context.Context, month models.Month) (models.PlayerScores, error) {
	cacheKey := "legacy:scores:" + month.String()
	data, ok := s.cache.Get(cacheKey)
	if !ok {
		endpoint := s.baseUrl + "/scores?" + url.Values{"month": {month.String()}}.Encode()
		var err error
		data, err = doRequest(ctx, s.client, http.MethodGet, endpoint, nil, nil)
		if err != nil {
			return nil, err
		}
	} else {
		s.logger.Debugf(providers.TypeGet, "Serving %s scores from cache", month)
	}

	var payload models.PlayerScores
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode scores: %w", err)
	}
	if !ok {
		s.cache.Set(cacheKey, data)
	}
	return NormalizeScores(s.roster, month, payload, s.logger), nil
}

func (s *LegacyScoreService) UpdateScore(ctx context.Context, req *models.UpdateScoreRequest) error {
	if err := req.Validate(s.roster); err != nil {
		return fmt.Errorf("invalid update: %w", err)
	}
	_, err := doRequest(ctx, s.client, http.MethodPost, s.baseUrl+"/scores/update", nil, req)
	if err != nil {
		return err
	}
	s.cache.Clear()
	s.logger.Infof(providers.TypePost, "Updated %s on %s", req.PlayerName, req.Date)
	return nil
}

func (s *LegacyScoreService) ArchiveMonth(ctx context.Context, month models.Month) error {
	_, err := doRequest(ctx, s.client, http.MethodPost, s.baseUrl+"/scores/archive", nil, &models.ArchiveRequest{Month: month.String()})
	if err != nil {
		return err
	}
	s.cache.Clear()
	s.logger.Infof(providers.TypePost, "Archived %s", month)
	return nil
}

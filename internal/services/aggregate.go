package services

import (
	"scoreboard/internal/models"
	"scoreboard/internal/providers"
)

// AggregateRecords folds daily_scores rows into per-player month data.
// Rows for unknown players or dates outside month are dropped. A later row
// for the same player and date replaces an earlier one.
func AggregateRecords(roster models.Roster, month models.Month, records []models.ScoreRecord, logger providers.Logger) models.PlayerScores {
	scores := models.NewPlayerScores(roster)
	for i := range records {
		rec := &records[i]
		key, ok := roster.KeyFor(rec.Players.Name)
		if !ok {
			logger.Warnf(providers.TypeApp, "Skipping score %d: unknown player %q", rec.ID, rec.Players.Name)
			continue
		}
		if !month.Contains(rec.Date) {
			logger.Warnf(providers.TypeApp, "Skipping score %d: date %s outside %s", rec.ID, rec.Date, month)
			continue
		}
		daily := rec.DailyScore()
		if rec.Total != 0 && rec.Total != daily.ComputeTotal() {
			logger.Debugf(providers.TypeApp, "Score %d stored total %d, derived %d", rec.ID, rec.Total, daily.ComputeTotal())
		}
		scores[key].DailyScores[rec.Date] = daily
	}
	for _, p := range scores {
		p.Recompute()
	}
	return scores
}

// NormalizeScores applies the same rules to an already aggregated payload:
// unknown player slots and out-of-month dates are dropped and every total is
// derived again. Missing roster slots are filled with empty data.
func NormalizeScores(roster models.Roster, month models.Month, in models.PlayerScores, logger providers.Logger) models.PlayerScores {
	out := models.NewPlayerScores(roster)
	for key, data := range in {
		if _, ok := roster.NameFor(key); !ok {
			logger.Warnf(providers.TypeApp, "Skipping unknown player slot %q", key)
			continue
		}
		if data == nil {
			continue
		}
		for date, daily := range data.DailyScores {
			if daily == nil {
				continue
			}
			if !month.Contains(date) {
				logger.Warnf(providers.TypeApp, "Skipping %s score for %s: outside %s", key, date, month)
				continue
			}
			daily.Date = date
			out[key].DailyScores[date] = daily
		}
	}
	for _, p := range out {
		p.Recompute()
	}
	return out
}

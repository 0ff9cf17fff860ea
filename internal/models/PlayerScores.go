package models

import "sort"

type BonusTotals struct {
	Wordle      int `json:"wordle"`
	Connections int `json:"connections"`
	Strands     int `json:"strands"`
}

// PlayerData is one player's month: daily scores keyed by date plus aggregates.
type PlayerData struct {
	DailyScores  map[string]*DailyScore `json:"dailyScores"`
	Total        int                    `json:"total"`
	TotalBonuses BonusTotals            `json:"totalBonuses"`
}

func NewPlayerData() *PlayerData {
	return &PlayerData{DailyScores: make(map[string]*DailyScore)}
}

// Dates returns the scored dates in ascending order.
func (p *PlayerData) Dates() []string {
	dates := make([]string, 0, len(p.DailyScores))
	for d := range p.DailyScores {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Recompute derives every total from the daily puzzle scores and bonus flags.
func (p *PlayerData) Recompute() {
	p.Total = 0
	p.TotalBonuses = BonusTotals{}
	for _, s := range p.DailyScores {
		if s == nil {
			continue
		}
		s.Total = s.ComputeTotal()
		p.Total += s.Total
		if s.BonusPoints.WordleQuick {
			p.TotalBonuses.Wordle++
		}
		if s.BonusPoints.ConnectionsPerfect {
			p.TotalBonuses.Connections++
		}
		if s.BonusPoints.StrandsSpanagram {
			p.TotalBonuses.Strands++
		}
	}
}

// PlayerScores is keyed by roster slot ("player1", "player2", ...).
type PlayerScores map[string]*PlayerData

func NewPlayerScores(roster Roster) PlayerScores {
	ps := make(PlayerScores, len(roster))
	for _, k := range roster.Keys() {
		ps[k] = NewPlayerData()
	}
	return ps
}

func (ps PlayerScores) Empty() bool {
	for _, p := range ps {
		if p != nil && len(p.DailyScores) > 0 {
			return false
		}
	}
	return true
}

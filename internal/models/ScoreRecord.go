package models

// ScoreRecord is a raw daily_scores row joined with its player.
type ScoreRecord struct {
	ID               int64  `json:"id"`
	Date             string `json:"date"`
	PlayerID         int64  `json:"player_id"`
	Wordle           int    `json:"wordle"`
	Connections      int    `json:"connections"`
	Strands          int    `json:"strands"`
	Total            int    `json:"total"`
	BonusWordle      bool   `json:"bonus_wordle"`
	BonusConnections bool   `json:"bonus_connections"`
	BonusStrands     bool   `json:"bonus_strands"`
	Finalized        bool   `json:"finalized"`
	Archived         bool   `json:"archived"`
	CreatedAt        string `json:"created_at,omitempty"`
	Players          struct {
		Name string `json:"name"`
	} `json:"players"`
}

func (r *ScoreRecord) DailyScore() *DailyScore {
	return &DailyScore{
		Date:        r.Date,
		Wordle:      r.Wordle,
		Connections: r.Connections,
		Strands:     r.Strands,
		BonusPoints: BonusPoints{
			WordleQuick:        r.BonusWordle,
			ConnectionsPerfect: r.BonusConnections,
			StrandsSpanagram:   r.BonusStrands,
		},
		Finalized: r.Finalized,
		Archived:  r.Archived,
	}
}

// MonthlyArchive is a monthly_archives row.
type MonthlyArchive struct {
	Month       string       `json:"month"`
	ArchiveData PlayerScores `json:"archive_data"`
	CreatedAt   string       `json:"created_at,omitempty"`
}

package models

type BonusPoints struct {
	WordleQuick        bool `json:"wordleQuick"`
	ConnectionsPerfect bool `json:"connectionsPerfect"`
	StrandsSpanagram   bool `json:"strandsSpanagram"`
}

// Active lists the puzzles whose bonus was earned, in display order.
func (b BonusPoints) Active() []string {
	var out []string
	if b.WordleQuick {
		out = append(out, PuzzleWordle)
	}
	if b.ConnectionsPerfect {
		out = append(out, PuzzleConnections)
	}
	if b.StrandsSpanagram {
		out = append(out, PuzzleStrands)
	}
	return out
}

const (
	PuzzleWordle      = "Wordle"
	PuzzleConnections = "Connections"
	PuzzleStrands     = "Strands"
)

type DailyScore struct {
	Date        string      `json:"date"`
	Wordle      int         `json:"wordle"`
	Connections int         `json:"connections"`
	Strands     int         `json:"strands"`
	Total       int         `json:"total"`
	BonusPoints BonusPoints `json:"bonusPoints"`
	Finalized   bool        `json:"finalized"`
	Archived    bool        `json:"archived,omitempty"`
}

// ComputeTotal is the puzzle scores plus one point per earned bonus.
func (d *DailyScore) ComputeTotal() int {
	return d.Wordle + d.Connections + d.Strands + len(d.BonusPoints.Active())
}

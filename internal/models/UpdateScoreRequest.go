package models

// ScoreUpdate carries optional values; a nil field is sent as JSON null.
type ScoreUpdate struct {
	Wordle           *int  `json:"wordle"`
	Connections      *int  `json:"connections"`
	Strands          *int  `json:"strands"`
	BonusWordle      *bool `json:"bonusWordle"`
	BonusConnections *bool `json:"bonusConnections"`
	BonusStrands     *bool `json:"bonusStrands"`
}

type UpdateScoreRequest struct {
	Date       string      `json:"date"`
	PlayerName string      `json:"playerName"`
	Scores     ScoreUpdate `json:"scores"`
}

type ArchiveRequest struct {
	Month string `json:"month"`
}

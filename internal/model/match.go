package model

import "time"

// MatchSummary is a record of a finished (or abandoned) match
type MatchSummary struct {
	Board      BoardKind     `json:"board"`
	SideLength int           `json:"side_length"`
	Black      string        `json:"black"` // strategy name for the black seat
	White      string        `json:"white"`
	Score      Score         `json:"score"`
	Winner     Player        `json:"winner"` // None if tied
	Moves      int           `json:"moves"`
	Passes     int           `json:"passes"`
	Finished   bool          `json:"finished"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Duration   time.Duration `json:"duration"`
}

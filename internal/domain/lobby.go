package domain

import "time"

// ScoreboardEntry is a snapshot-friendly view of a lobby player.
type ScoreboardEntry struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Score       int    `json:"score"`
	Finished    bool   `json:"finished"`
}

// Scoreboard captures the ordered standings of a multiplayer lobby.
type Scoreboard struct {
	Code      string            `json:"code"`
	Entries   []ScoreboardEntry `json:"entries"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

package storage

import "gorm.io/gorm"

// MatchRecord is the persisted summary of one completed match.
type MatchRecord struct {
	gorm.Model
	MatchUUID    string  `json:"match_id" gorm:"uniqueIndex"`
	WinnerID     uint    `json:"winner_id"`
	LoserID      uint    `json:"loser_id"`
	WinnerName   string  `json:"winner"`
	LoserName    string  `json:"loser"`
	WinnerRounds int     `json:"winner_rounds"`
	LoserRounds  int     `json:"loser_rounds"`
	RoundsFought int     `json:"rounds_fought"`
	WinnerDamage int     `json:"winner_damage"`
	LoserDamage  int     `json:"loser_damage"`
	Duration     float64 `json:"duration"`
}

// TableName keeps the table name explicit.
func (MatchRecord) TableName() string { return "match_records" }

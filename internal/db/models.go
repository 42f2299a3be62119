package db

import (
	"time"

	"gorm.io/datatypes"
)

// Journal models. The journal mirrors the in-memory collection for
// durability; GameID carries the scoreboard's integer game id, distinct from
// the row's primary key.

type Game struct {
	ID           uint      `gorm:"primaryKey"`
	GameID       int       `gorm:"uniqueIndex;not null"`
	Name         string    `gorm:"size:64;not null"`
	WinCondition string    `gorm:"size:16;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	StartedAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	Players      []Player
	Rounds       []Round
	Events       []Event
}

type Player struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"index;not null;uniqueIndex:idx_players_game_player"`
	PlayerID  string    `gorm:"size:36;not null;uniqueIndex:idx_players_game_player"`
	Name      string    `gorm:"size:64;not null"`
	Color     string    `gorm:"size:16;not null"`
	Lane      int       `gorm:"not null"`
	Score     int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
	Scores    []RoundScore
}

type Round struct {
	ID         uint      `gorm:"primaryKey"`
	GameID     uint      `gorm:"index;not null;uniqueIndex:idx_rounds_game_number"`
	Number     int       `gorm:"not null;uniqueIndex:idx_rounds_game_number"`
	RoundID    string    `gorm:"size:36;not null"`
	RecordedAt time.Time `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
	Scores     []RoundScore
}

type RoundScore struct {
	ID        uint      `gorm:"primaryKey"`
	RoundID   uint      `gorm:"index;not null;uniqueIndex:idx_round_scores_round_player"`
	PlayerID  uint      `gorm:"index;not null;uniqueIndex:idx_round_scores_round_player"`
	Score     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Event struct {
	ID        uint           `gorm:"primaryKey"`
	GameID    uint           `gorm:"index;not null"`
	RoundID   *uint          `gorm:"index"`
	Type      string         `gorm:"size:32;not null"`
	Payload   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"not null"`
}

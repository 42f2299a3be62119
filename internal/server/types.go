package server

import "time"

const (
	winHighest = "highest"
	winLowest  = "lowest"
)

// playerColors is the lane palette. Drafts without an explicit color pick up
// the color matching their display position.
var playerColors = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4",
	"#FFEAA7", "#DDA0DD", "#98D8C8", "#F7DC6F",
	"#BB8FCE", "#85C1E9", "#F8C471", "#82E0AA",
}

type Game struct {
	ID           int       `json:"id"`
	DBID         uint      `json:"-"`
	Name         string    `json:"name"`
	Players      []Player  `json:"players"`
	Rounds       []Round   `json:"rounds"`
	CurrentRound int       `json:"currentRound"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	WinCondition string    `json:"winCondition"`
}

type Player struct {
	ID    string `json:"id"`
	DBID  uint   `json:"-"`
	Name  string `json:"name"`
	Score int    `json:"score"`
	Color string `json:"color"`
}

type Round struct {
	ID          string       `json:"id"`
	DBID        uint         `json:"-"`
	RoundNumber int          `json:"roundNumber"`
	Scores      []RoundScore `json:"scores"`
	Timestamp   time.Time    `json:"timestamp"`
}

type RoundScore struct {
	PlayerID string `json:"playerId"`
	Score    int    `json:"score"`
}

// GameDraft is the not-yet-created configuration collected by the create
// form. It becomes a Game only after validateDraft accepts it.
type GameDraft struct {
	Name         string
	Players      []PlayerDraft
	WinCondition string
}

type PlayerDraft struct {
	Name  string
	Color string
}

type GameSummary struct {
	ID           int
	Name         string
	Players      int
	Rounds       int
	IsActive     bool
	CreatedAt    time.Time
	WinCondition string
}

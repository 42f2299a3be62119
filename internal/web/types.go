package web

// View state assembled by the server package.

type GameCard struct {
	ID           int
	Name         string
	Players      int
	Rounds       int
	Active       bool
	WinCondition string
	Created      string
}

type GamePageState struct {
	ID            int
	Name          string
	CurrentRound  int
	Active        bool
	WinCondition  string
	Leader        *LeaderBadge
	Lanes         []TrackLane
	SubmitDelayMS int
}

type TrackLane struct {
	PlayerID string
	Name     string
	Score    int
	Color    string
	Position float64
	Leading  bool
}

type LeaderBadge struct {
	Name  string
	Score int
}

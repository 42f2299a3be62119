package server

import "sort"

// Track geometry for the race view. Lanes start just past the start line;
// an active game reserves the final stretch so only a finished game can put
// its winner at the finish. Positions never exceed the hard cap.
const (
	startLinePosition = 8.0
	activeTrackSpan   = 67.0
	finishedTrackSpan = 82.0
	maxTrackPosition  = 90.0
)

// standings returns the players sorted best-first for the game's win
// condition: descending score for highest-wins, ascending for lowest-wins.
// The sort is stable, so tied players keep their display order.
func standings(game *Game) []Player {
	ranked := make([]Player, len(game.Players))
	copy(ranked, game.Players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if game.WinCondition == winLowest {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// leader returns the current front-runner. A leader is reported even when
// every player is still at zero: the first player in sort order takes the
// crown so the track always has someone ahead.
func leader(game *Game) (Player, bool) {
	ranked := standings(game)
	if len(ranked) == 0 {
		return Player{}, false
	}
	return ranked[0], true
}

// trackPositions maps each player's score to a lane position keyed by player id.
func trackPositions(game *Game) map[string]float64 {
	positions := make(map[string]float64, len(game.Players))
	if allScoresZero(game.Players) {
		for _, player := range game.Players {
			positions[player.ID] = startLinePosition
		}
		return positions
	}

	lo, hi := scoreBounds(game.Players)
	span := activeTrackSpan
	if !game.IsActive {
		span = finishedTrackSpan
	}
	for _, player := range game.Players {
		position := startLinePosition + scoreRatio(game.WinCondition, player.Score, lo, hi)*span
		if position > maxTrackPosition {
			position = maxTrackPosition
		}
		positions[player.ID] = position
	}
	return positions
}

// scoreRatio normalizes a score into [0,1] relative standing. Under
// lowest-wins the ratio inverts so a lower raw score lands closer to 1; when
// everyone is tied the whole field sits at 1.
func scoreRatio(winCondition string, score, lo, hi int) float64 {
	if winCondition == winLowest {
		if lo == hi {
			return 1
		}
		return 1 - float64(score-lo)/float64(hi-lo)
	}
	top := hi
	if top < 1 {
		top = 1
	}
	return float64(score) / float64(top)
}

func allScoresZero(players []Player) bool {
	for _, player := range players {
		if player.Score != 0 {
			return false
		}
	}
	return true
}

func scoreBounds(players []Player) (int, int) {
	if len(players) == 0 {
		return 0, 0
	}
	lo, hi := players[0].Score, players[0].Score
	for _, player := range players[1:] {
		if player.Score < lo {
			lo = player.Score
		}
		if player.Score > hi {
			hi = player.Score
		}
	}
	return lo, hi
}

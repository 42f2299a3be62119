package server

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrGameInactive rejects round submissions against a finished game. The
// submit form is hidden once a game ends, so hitting this means a stale or
// hand-crafted request; the game must stay untouched either way.
var ErrGameInactive = errors.New("game is not active")

// applyRound adds a round's deltas to the player totals and appends the
// round. Players absent from scores contribute 0 this round; only the
// entries actually supplied are recorded. Callers run this inside
// Store.UpdateGame.
func applyRound(game *Game, scores []RoundScore, now time.Time) error {
	if !game.IsActive {
		return ErrGameInactive
	}

	byPlayer := make(map[string]int, len(scores))
	for _, entry := range scores {
		byPlayer[entry.PlayerID] = entry.Score
	}
	for i := range game.Players {
		game.Players[i].Score += byPlayer[game.Players[i].ID]
	}

	game.Rounds = append(game.Rounds, Round{
		ID:          uuid.NewString(),
		RoundNumber: game.CurrentRound,
		Scores:      scores,
		Timestamp:   now.UTC(),
	})
	game.CurrentRound++
	return nil
}

// endGame closes the game. Ending an already finished game is a no-op.
func endGame(game *Game) {
	game.IsActive = false
}

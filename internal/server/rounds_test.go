package server

import (
	"errors"
	"testing"
	"time"
)

func twoPlayerGame(winCondition string) *Game {
	store := NewStore()
	return store.CreateGame(GameDraft{
		Name: "Darts",
		Players: []PlayerDraft{
			{Name: "Ana"},
			{Name: "Bo"},
		},
		WinCondition: winCondition,
	}, time.Now())
}

func TestApplyRoundUpdatesTotals(t *testing.T) {
	game := twoPlayerGame(winHighest)
	ana, bo := game.Players[0].ID, game.Players[1].ID

	err := applyRound(game, []RoundScore{
		{PlayerID: ana, Score: 20},
		{PlayerID: bo, Score: 15},
	}, time.Now())
	if err != nil {
		t.Fatalf("apply round: %v", err)
	}

	if game.Players[0].Score != 20 || game.Players[1].Score != 15 {
		t.Fatalf("unexpected totals: %d, %d", game.Players[0].Score, game.Players[1].Score)
	}
	if game.CurrentRound != 2 {
		t.Fatalf("expected current round 2, got %d", game.CurrentRound)
	}
	if len(game.Rounds) != 1 || game.Rounds[0].RoundNumber != 1 {
		t.Fatalf("unexpected rounds: %#v", game.Rounds)
	}
}

func TestApplyRoundMissingPlayerContributesZero(t *testing.T) {
	game := twoPlayerGame(winHighest)
	ana := game.Players[0].ID

	err := applyRound(game, []RoundScore{{PlayerID: ana, Score: 7}}, time.Now())
	if err != nil {
		t.Fatalf("apply round: %v", err)
	}
	if game.Players[1].Score != 0 {
		t.Fatalf("absent player gained score: %d", game.Players[1].Score)
	}
	if len(game.Rounds[0].Scores) != 1 {
		t.Fatalf("expected only supplied entries stored, got %d", len(game.Rounds[0].Scores))
	}
}

func TestApplyRoundNegativeDeltaCarriedUnclamped(t *testing.T) {
	game := twoPlayerGame(winHighest)
	ana := game.Players[0].ID

	if err := applyRound(game, []RoundScore{{PlayerID: ana, Score: -5}}, time.Now()); err != nil {
		t.Fatalf("apply round: %v", err)
	}
	if game.Players[0].Score != -5 {
		t.Fatalf("expected -5, got %d", game.Players[0].Score)
	}
}

func TestApplyRoundTwiceAppendsTwoRounds(t *testing.T) {
	game := twoPlayerGame(winHighest)
	ana := game.Players[0].ID
	scores := []RoundScore{{PlayerID: ana, Score: 10}}

	if err := applyRound(game, scores, time.Now()); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if err := applyRound(game, scores, time.Now()); err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if len(game.Rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(game.Rounds))
	}
	if game.Rounds[0].ID == game.Rounds[1].ID {
		t.Fatalf("rounds share an id")
	}
	if game.Players[0].Score != 20 {
		t.Fatalf("expected both contributions, got %d", game.Players[0].Score)
	}
	if game.CurrentRound != 3 {
		t.Fatalf("expected current round 3, got %d", game.CurrentRound)
	}
}

func TestApplyRoundInactiveGameRejected(t *testing.T) {
	game := twoPlayerGame(winHighest)
	ana := game.Players[0].ID
	if err := applyRound(game, []RoundScore{{PlayerID: ana, Score: 3}}, time.Now()); err != nil {
		t.Fatalf("apply round: %v", err)
	}
	endGame(game)

	err := applyRound(game, []RoundScore{{PlayerID: ana, Score: 99}}, time.Now())
	if !errors.Is(err, ErrGameInactive) {
		t.Fatalf("expected ErrGameInactive, got %v", err)
	}
	if game.Players[0].Score != 3 || len(game.Rounds) != 1 || game.CurrentRound != 2 {
		t.Fatalf("inactive game was modified: %#v", game)
	}
}

func TestScoresMatchRoundSums(t *testing.T) {
	game := twoPlayerGame(winLowest)
	ana, bo := game.Players[0].ID, game.Players[1].ID

	rounds := [][]RoundScore{
		{{PlayerID: ana, Score: 4}, {PlayerID: bo, Score: 2}},
		{{PlayerID: bo, Score: 6}},
		{{PlayerID: ana, Score: -1}, {PlayerID: bo, Score: 0}},
	}
	for _, scores := range rounds {
		if err := applyRound(game, scores, time.Now()); err != nil {
			t.Fatalf("apply round: %v", err)
		}
	}

	if game.CurrentRound != len(rounds)+1 {
		t.Fatalf("expected current round %d, got %d", len(rounds)+1, game.CurrentRound)
	}
	sums := map[string]int{}
	for _, round := range game.Rounds {
		for _, entry := range round.Scores {
			sums[entry.PlayerID] += entry.Score
		}
	}
	for _, player := range game.Players {
		if player.Score != sums[player.ID] {
			t.Fatalf("player %s total %d != round sum %d", player.Name, player.Score, sums[player.ID])
		}
	}
}

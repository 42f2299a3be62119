package server

import (
	"testing"
	"time"
)

func TestCreateGameAssignsIdsAndColors(t *testing.T) {
	store := NewStore()
	game := store.CreateGame(GameDraft{
		Name: "Yahtzee",
		Players: []PlayerDraft{
			{Name: "Ana"},
			{Name: "Bo", Color: "#123456"},
		},
		WinCondition: winHighest,
	}, time.Now())

	if game.ID != 1 {
		t.Fatalf("expected first id 1, got %d", game.ID)
	}
	if game.CurrentRound != 1 || !game.IsActive || len(game.Rounds) != 0 {
		t.Fatalf("unexpected fresh game state: %#v", game)
	}
	if game.Players[0].ID == "" || game.Players[0].ID == game.Players[1].ID {
		t.Fatalf("player ids not unique: %q, %q", game.Players[0].ID, game.Players[1].ID)
	}
	if game.Players[0].Color != playerColors[0] {
		t.Fatalf("expected palette color for first player, got %s", game.Players[0].Color)
	}
	if game.Players[1].Color != "#123456" {
		t.Fatalf("draft color dropped, got %s", game.Players[1].Color)
	}
}

func TestDeleteGame(t *testing.T) {
	store := NewStore()
	game := store.CreateGame(GameDraft{
		Name:         "Darts",
		Players:      []PlayerDraft{{Name: "Ana"}, {Name: "Bo"}},
		WinCondition: winHighest,
	}, time.Now())

	if !store.DeleteGame(game.ID) {
		t.Fatalf("delete reported missing game")
	}
	if _, ok := store.GetGame(game.ID); ok {
		t.Fatalf("game still present after delete")
	}
	if store.DeleteGame(game.ID) {
		t.Fatalf("second delete should report missing")
	}
}

func TestReplaceAllAdvancesIDCounter(t *testing.T) {
	store := NewStore()
	store.ReplaceAll([]*Game{
		{ID: 4, Name: "old", CreatedAt: time.Now()},
		{ID: 9, Name: "older", CreatedAt: time.Now()},
	})

	game := store.CreateGame(GameDraft{
		Name:         "new",
		Players:      []PlayerDraft{{Name: "Ana"}, {Name: "Bo"}},
		WinCondition: winLowest,
	}, time.Now())
	if game.ID != 10 {
		t.Fatalf("expected id after highest loaded, got %d", game.ID)
	}
}

func TestGamesOrderedByCreation(t *testing.T) {
	store := NewStore()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store.ReplaceAll([]*Game{
		{ID: 2, Name: "second", CreatedAt: base.Add(time.Hour)},
		{ID: 1, Name: "first", CreatedAt: base},
	})

	games := store.Games()
	if len(games) != 2 || games[0].Name != "first" || games[1].Name != "second" {
		t.Fatalf("unexpected order: %#v", games)
	}

	summaries := store.Summaries()
	if summaries[0].ID != 1 || summaries[1].ID != 2 {
		t.Fatalf("summaries out of order: %#v", summaries)
	}
}

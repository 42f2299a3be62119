package server

import (
	"errors"
	"testing"
)

func TestValidateDraftBlankNameRejected(t *testing.T) {
	_, err := validateDraft(GameDraft{
		Name:    "   ",
		Players: []PlayerDraft{{Name: "Ana"}, {Name: "Bo"}},
	})
	var invalid *ValidationError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateDraftNeedsTwoNamedPlayers(t *testing.T) {
	_, err := validateDraft(GameDraft{
		Name:    "Darts",
		Players: []PlayerDraft{{Name: "Ana"}, {Name: "   "}, {Name: ""}},
	})
	if err == nil {
		t.Fatalf("expected error for a single named player")
	}
}

func TestValidateDraftTrimsAndDropsBlankRows(t *testing.T) {
	cleaned, err := validateDraft(GameDraft{
		Name: "  Darts  night ",
		Players: []PlayerDraft{
			{Name: "  Ana "},
			{Name: ""},
			{Name: " Bo  de  Vries "},
		},
	})
	if err != nil {
		t.Fatalf("validate draft: %v", err)
	}
	if cleaned.Name != "Darts night" {
		t.Fatalf("name not normalized: %q", cleaned.Name)
	}
	if len(cleaned.Players) != 2 {
		t.Fatalf("expected blank rows dropped, got %d players", len(cleaned.Players))
	}
	if cleaned.Players[1].Name != "Bo de Vries" {
		t.Fatalf("player name not normalized: %q", cleaned.Players[1].Name)
	}
}

func TestValidateDraftDefaultsWinCondition(t *testing.T) {
	cleaned, err := validateDraft(GameDraft{
		Name:    "Darts",
		Players: []PlayerDraft{{Name: "Ana"}, {Name: "Bo"}},
	})
	if err != nil {
		t.Fatalf("validate draft: %v", err)
	}
	if cleaned.WinCondition != winHighest {
		t.Fatalf("expected default %q, got %q", winHighest, cleaned.WinCondition)
	}

	if _, err := validateDraft(GameDraft{
		Name:         "Darts",
		Players:      []PlayerDraft{{Name: "Ana"}, {Name: "Bo"}},
		WinCondition: "median",
	}); err == nil {
		t.Fatalf("expected error for unknown win condition")
	}
}

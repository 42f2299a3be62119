package server

import (
	"fmt"
	"strings"
)

const (
	maxGameNameLength   = 40
	maxPlayerNameLength = 20
	minGamePlayers      = 2
	maxGamePlayers      = 12
)

// ValidationError marks a draft that fails creation constraints. Handlers
// surface its message inline; the game is simply not created.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidDraft(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// validateDraft normalizes a draft and returns the cleaned copy. Players
// whose names are blank after trimming are dropped before the count check,
// matching how the create form treats unused rows.
func validateDraft(draft GameDraft) (GameDraft, error) {
	name := normalizeText(draft.Name)
	if name == "" {
		return GameDraft{}, invalidDraft("game name is required")
	}
	if len(name) > maxGameNameLength {
		return GameDraft{}, invalidDraft("game name must be %d characters or fewer", maxGameNameLength)
	}

	players := make([]PlayerDraft, 0, len(draft.Players))
	for _, player := range draft.Players {
		playerName := normalizeText(player.Name)
		if playerName == "" {
			continue
		}
		if len(playerName) > maxPlayerNameLength {
			return GameDraft{}, invalidDraft("player name must be %d characters or fewer", maxPlayerNameLength)
		}
		players = append(players, PlayerDraft{
			Name:  playerName,
			Color: strings.TrimSpace(player.Color),
		})
	}
	if len(players) < minGamePlayers {
		return GameDraft{}, invalidDraft("at least %d named players are required", minGamePlayers)
	}
	if len(players) > maxGamePlayers {
		return GameDraft{}, invalidDraft("at most %d players are supported", maxGamePlayers)
	}

	condition := strings.TrimSpace(draft.WinCondition)
	switch condition {
	case "":
		condition = winHighest
	case winHighest, winLowest:
	default:
		return GameDraft{}, invalidDraft("win condition must be %q or %q", winHighest, winLowest)
	}

	return GameDraft{
		Name:         name,
		Players:      players,
		WinCondition: condition,
	}, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}

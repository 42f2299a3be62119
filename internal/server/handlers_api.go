package server

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type createGameRequest struct {
	Name         string               `json:"name"`
	Players      []draftPlayerRequest `json:"players"`
	WinCondition string               `json:"win_condition"`
}

type draftPlayerRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// roundRequest carries the round form's raw text per player id. Values are
// coerced server-side so unparseable input never blocks a submission.
type roundRequest struct {
	Scores map[string]string `json:"scores"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	draft := GameDraft{
		Name:         req.Name,
		WinCondition: req.WinCondition,
	}
	for _, player := range req.Players {
		draft.Players = append(draft.Players, PlayerDraft{
			Name:  player.Name,
			Color: player.Color,
		})
	}
	cleaned, err := validateDraft(draft)
	if err != nil {
		var invalid *ValidationError
		if errors.As(err, &invalid) {
			writeError(w, http.StatusBadRequest, invalid.Message)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid game draft")
		return
	}

	game := s.store.CreateGame(cleaned, time.Now())
	if err := s.persistGame(game); err != nil {
		log.Printf("journal write failed action=create game_id=%d err=%v", game.ID, err)
	}
	s.saveSnapshot()
	log.Printf("game created game_id=%d name=%q players=%d win_condition=%s",
		game.ID, game.Name, len(game.Players), game.WinCondition)
	writeJSON(w, http.StatusCreated, map[string]any{
		"game_id": game.ID,
	})
}

func (s *Server) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	id, action, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	switch {
	case r.Method == http.MethodGet && action == "":
		s.handleGameState(w, r, id)
	case r.Method == http.MethodPost && action == "rounds":
		s.handleSubmitRound(w, r, id)
	case r.Method == http.MethodPost && action == "end":
		s.handleEndGame(w, r, id)
	case r.Method == http.MethodDelete && action == "":
		s.handleDeleteGame(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleGameState(w http.ResponseWriter, r *http.Request, id int) {
	game, ok := s.store.GetGame(id)
	if !ok {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	writeJSON(w, http.StatusOK, s.gameStatePayload(game))
}

func (s *Server) handleSubmitRound(w http.ResponseWriter, r *http.Request, id int) {
	var req roundRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submittedAt := time.Now()
	game, err := s.store.UpdateGame(id, func(game *Game) error {
		return applyRound(game, coerceScores(game, req.Scores), submittedAt)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrGameNotFound):
			writeError(w, http.StatusNotFound, "game not found")
		case errors.Is(err, ErrGameInactive):
			writeError(w, http.StatusConflict, "game is not active")
		default:
			writeError(w, http.StatusInternalServerError, "failed to record round")
		}
		return
	}

	round := &game.Rounds[len(game.Rounds)-1]
	if err := s.persistRound(game, round); err != nil {
		log.Printf("journal write failed action=round game_id=%d err=%v", game.ID, err)
	}
	s.saveSnapshot()
	log.Printf("round recorded game_id=%d round=%d entries=%d", game.ID, round.RoundNumber, len(round.Scores))
	writeJSON(w, http.StatusOK, s.gameStatePayload(game))
}

func (s *Server) handleEndGame(w http.ResponseWriter, r *http.Request, id int) {
	game, err := s.store.UpdateGame(id, func(game *Game) error {
		endGame(game)
		return nil
	})
	if err != nil {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	if err := s.persistEnd(game); err != nil {
		log.Printf("journal write failed action=end game_id=%d err=%v", game.ID, err)
	}
	s.saveSnapshot()
	log.Printf("game ended game_id=%d rounds=%d", game.ID, len(game.Rounds))
	writeJSON(w, http.StatusOK, s.gameStatePayload(game))
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request, id int) {
	if !s.store.DeleteGame(id) {
		writeError(w, http.StatusNotFound, "game not found")
		return
	}
	if err := s.persistDelete(id); err != nil {
		log.Printf("journal write failed action=delete game_id=%d err=%v", id, err)
	}
	s.saveSnapshot()
	log.Printf("game deleted game_id=%d", id)
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": true,
	})
}

// coerceScores turns the form's raw text into round deltas, keeping only
// entries for players that exist in the game. Blank or unparseable text
// counts as no contribution.
func coerceScores(game *Game, raw map[string]string) []RoundScore {
	scores := make([]RoundScore, 0, len(game.Players))
	for _, player := range game.Players {
		text, ok := raw[player.ID]
		if !ok {
			continue
		}
		scores = append(scores, RoundScore{
			PlayerID: player.ID,
			Score:    parseScore(text),
		})
	}
	return scores
}

func parseScore(text string) int {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return value
}

// gameStatePayload is the view model the game page script re-renders from.
func (s *Server) gameStatePayload(game *Game) map[string]any {
	positions := trackPositions(game)
	players := make([]map[string]any, 0, len(game.Players))
	front, hasFront := leader(game)
	for _, player := range game.Players {
		players = append(players, map[string]any{
			"id":         player.ID,
			"name":       player.Name,
			"score":      player.Score,
			"color":      player.Color,
			"position":   positions[player.ID],
			"is_leading": hasFront && player.ID == front.ID,
		})
	}
	payload := map[string]any{
		"game_id":       game.ID,
		"name":          game.Name,
		"current_round": game.CurrentRound,
		"is_active":     game.IsActive,
		"win_condition": game.WinCondition,
		"players":       players,
	}
	if hasFront {
		payload["leader"] = map[string]any{
			"id":    front.ID,
			"name":  front.Name,
			"score": front.Score,
		}
	}
	return payload
}

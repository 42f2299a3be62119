package server

import (
	"encoding/json"
	"errors"

	"github.com/driekeerJ/scorecard/internal/db"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
)

// EventPayload is the journal event body. Everything is optional; only the
// fields relevant to the event type are set.
type EventPayload struct {
	GameID   int            `json:"game_id,omitempty"`
	Name     string         `json:"name,omitempty"`
	Round    int            `json:"round,omitempty"`
	PlayerID string         `json:"player_id,omitempty"`
	Scores   map[string]int `json:"scores,omitempty"`
	Winner   string         `json:"winner,omitempty"`
}

func (s *Server) persistGame(game *Game) error {
	if s.db == nil {
		return nil
	}
	record := db.Game{
		GameID:       game.ID,
		Name:         game.Name,
		WinCondition: game.WinCondition,
		IsActive:     game.IsActive,
		StartedAt:    game.CreatedAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		if !isUniqueViolation(err) {
			return err
		}
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	} else {
		game.DBID = record.ID
	}
	for i := range game.Players {
		if err := s.persistPlayer(game, &game.Players[i], i); err != nil {
			return err
		}
	}
	return s.persistEvent(game, "game_created", EventPayload{
		GameID: game.ID,
		Name:   game.Name,
	})
}

func (s *Server) persistPlayer(game *Game, player *Player, lane int) error {
	if s.db == nil || player.DBID != 0 {
		return nil
	}
	if game.DBID == 0 {
		return errors.New("game not journaled")
	}
	record := db.Player{
		GameID:   game.DBID,
		PlayerID: player.ID,
		Name:     player.Name,
		Color:    player.Color,
		Lane:     lane,
		Score:    player.Score,
	}
	if err := s.db.Create(&record).Error; err != nil {
		if isUniqueViolation(err) {
			existing, lookupErr := s.findPlayerDBID(game.DBID, player.ID)
			if lookupErr == nil && existing != 0 {
				player.DBID = existing
				return nil
			}
		}
		return err
	}
	player.DBID = record.ID
	return nil
}

// persistRound journals a recorded round: the round row, its score rows, and
// the advanced player totals.
func (s *Server) persistRound(game *Game, round *Round) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errors.New("game not journaled")
	}
	record := db.Round{
		GameID:     game.DBID,
		Number:     round.RoundNumber,
		RoundID:    round.ID,
		RecordedAt: round.Timestamp,
	}
	if err := s.db.Create(&record).Error; err != nil {
		if !isUniqueViolation(err) {
			return err
		}
		return nil
	}
	round.DBID = record.ID

	totals := make(map[string]int, len(round.Scores))
	for _, entry := range round.Scores {
		totals[entry.PlayerID] = entry.Score
		player, ok := findPlayerByID(game, entry.PlayerID)
		if !ok || player.DBID == 0 {
			continue
		}
		score := db.RoundScore{
			RoundID:  record.ID,
			PlayerID: player.DBID,
			Score:    entry.Score,
		}
		if err := s.db.Create(&score).Error; err != nil && !isUniqueViolation(err) {
			return err
		}
	}
	for _, player := range game.Players {
		if player.DBID == 0 {
			continue
		}
		if err := s.db.Model(&db.Player{}).
			Where("id = ?", player.DBID).
			Update("score", player.Score).Error; err != nil {
			return err
		}
	}
	return s.persistEventForRound(game, record.ID, "round_recorded", EventPayload{
		GameID: game.ID,
		Round:  round.RoundNumber,
		Scores: totals,
	})
}

func (s *Server) persistEnd(game *Game) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errors.New("game not journaled")
	}
	if err := s.db.Model(&db.Game{}).
		Where("id = ?", game.DBID).
		Update("is_active", false).Error; err != nil {
		return err
	}
	payload := EventPayload{GameID: game.ID}
	if winner, ok := leader(game); ok {
		payload.Winner = winner.Name
	}
	return s.persistEvent(game, "game_ended", payload)
}

// persistDelete removes a game's journal rows entirely, mirroring the
// irreversible delete action.
func (s *Server) persistDelete(gameID int) error {
	if s.db == nil {
		return nil
	}
	var record db.Game
	if err := s.db.Where("game_id = ?", gameID).First(&record).Error; err != nil {
		return nil
	}
	var roundIDs []uint
	if err := s.db.Model(&db.Round{}).
		Where("game_id = ?", record.ID).
		Pluck("id", &roundIDs).Error; err != nil {
		return err
	}
	if len(roundIDs) > 0 {
		if err := s.db.Where("round_id IN ?", roundIDs).Delete(&db.RoundScore{}).Error; err != nil {
			return err
		}
	}
	if err := s.db.Where("game_id = ?", record.ID).Delete(&db.Round{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("game_id = ?", record.ID).Delete(&db.Player{}).Error; err != nil {
		return err
	}
	if err := s.db.Where("game_id = ?", record.ID).Delete(&db.Event{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&db.Game{}, record.ID).Error
}

func (s *Server) persistEvent(game *Game, eventType string, payload EventPayload) error {
	return s.persistEventForRound(game, 0, eventType, payload)
}

func (s *Server) persistEventForRound(game *Game, roundDBID uint, eventType string, payload EventPayload) error {
	if s.db == nil {
		return nil
	}
	if game.DBID == 0 {
		if err := s.ensureGameDBID(game); err != nil {
			return err
		}
	}
	if game.DBID == 0 {
		return errors.New("game not journaled")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	event := db.Event{
		GameID:  game.DBID,
		Type:    eventType,
		Payload: datatypes.JSON(data),
	}
	if roundDBID != 0 {
		event.RoundID = &roundDBID
	}
	return s.db.Create(&event).Error
}

func (s *Server) ensureGameDBID(game *Game) error {
	if s.db == nil || game.DBID != 0 {
		return nil
	}
	var record db.Game
	if err := s.db.Where("game_id = ?", game.ID).First(&record).Error; err != nil {
		return nil
	}
	game.DBID = record.ID
	return nil
}

func (s *Server) findPlayerDBID(gameDBID uint, playerID string) (uint, error) {
	var record db.Player
	if err := s.db.Where("game_id = ? AND player_id = ?", gameDBID, playerID).First(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

func findPlayerByID(game *Game, playerID string) (Player, bool) {
	for _, player := range game.Players {
		if player.ID == playerID {
			return player, true
		}
	}
	return Player{}, false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

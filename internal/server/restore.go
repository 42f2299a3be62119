package server

import (
	"errors"
	"sort"

	"github.com/driekeerJ/scorecard/internal/db"
)

// restoreFromJournal rebuilds the game collection from the database. Used at
// boot when the snapshot file is absent; the snapshot remains the source of
// truth whenever it exists.
func (s *Server) restoreFromJournal() ([]*Game, error) {
	if s.db == nil {
		return nil, errors.New("database not configured")
	}
	var records []db.Game
	if err := s.db.Order("game_id").Find(&records).Error; err != nil {
		return nil, err
	}
	games := make([]*Game, 0, len(records))
	for i := range records {
		game, err := s.rebuildGame(&records[i])
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

func (s *Server) rebuildGame(record *db.Game) (*Game, error) {
	var playerRows []db.Player
	if err := s.db.Where("game_id = ?", record.ID).Order("lane").Find(&playerRows).Error; err != nil {
		return nil, err
	}
	var roundRows []db.Round
	if err := s.db.Where("game_id = ?", record.ID).Order("number").Find(&roundRows).Error; err != nil {
		return nil, err
	}

	playersByRow := make(map[uint]string, len(playerRows))
	players := make([]Player, 0, len(playerRows))
	for _, row := range playerRows {
		playersByRow[row.ID] = row.PlayerID
		players = append(players, Player{
			ID:    row.PlayerID,
			DBID:  row.ID,
			Name:  row.Name,
			Score: row.Score,
			Color: row.Color,
		})
	}

	rounds := make([]Round, 0, len(roundRows))
	for _, row := range roundRows {
		var scoreRows []db.RoundScore
		if err := s.db.Where("round_id = ?", row.ID).Find(&scoreRows).Error; err != nil {
			return nil, err
		}
		scores := make([]RoundScore, 0, len(scoreRows))
		for _, scoreRow := range scoreRows {
			playerID, ok := playersByRow[scoreRow.PlayerID]
			if !ok {
				continue
			}
			scores = append(scores, RoundScore{
				PlayerID: playerID,
				Score:    scoreRow.Score,
			})
		}
		rounds = append(rounds, Round{
			ID:          row.RoundID,
			DBID:        row.ID,
			RoundNumber: row.Number,
			Scores:      scores,
			Timestamp:   row.RecordedAt.UTC(),
		})
	}
	sort.Slice(rounds, func(i, j int) bool {
		return rounds[i].RoundNumber < rounds[j].RoundNumber
	})

	return &Game{
		ID:           record.GameID,
		DBID:         record.ID,
		Name:         record.Name,
		Players:      players,
		Rounds:       rounds,
		CurrentRound: len(rounds) + 1,
		IsActive:     record.IsActive,
		CreatedAt:    record.StartedAt.UTC(),
		WinCondition: record.WinCondition,
	}, nil
}

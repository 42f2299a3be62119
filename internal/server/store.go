package server

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrGameNotFound = errors.New("game not found")

// Store owns the in-memory game collection. All mutation happens under the
// lock through UpdateGame so every reader observes whole, consistent games.
type Store struct {
	mu     sync.Mutex
	nextID int
	games  map[int]*Game
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		games:  make(map[int]*Game),
	}
}

// CreateGame turns a validated draft into a live game. Players keep the
// draft's order; drafts without a color take the palette color for their
// position.
func (s *Store) CreateGame(draft GameDraft, now time.Time) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := make([]Player, 0, len(draft.Players))
	for i, entry := range draft.Players {
		color := entry.Color
		if color == "" {
			color = playerColors[i%len(playerColors)]
		}
		players = append(players, Player{
			ID:    uuid.NewString(),
			Name:  entry.Name,
			Score: 0,
			Color: color,
		})
	}

	game := &Game{
		ID:           s.nextID,
		Name:         draft.Name,
		Players:      players,
		Rounds:       []Round{},
		CurrentRound: 1,
		IsActive:     true,
		CreatedAt:    now.UTC(),
		WinCondition: draft.WinCondition,
	}
	s.nextID++
	s.games[game.ID] = game
	return game
}

func (s *Store) GetGame(id int) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	return game, ok
}

func (s *Store) UpdateGame(id int, update func(game *Game) error) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	if err := update(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *Store) DeleteGame(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return false
	}
	delete(s.games, id)
	return true
}

// Games returns the collection ordered by creation time, oldest first.
func (s *Store) Games() []*Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	games := make([]*Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}
	sort.Slice(games, func(i, j int) bool {
		if games[i].CreatedAt.Equal(games[j].CreatedAt) {
			return games[i].ID < games[j].ID
		}
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})
	return games
}

// ReplaceAll swaps in a loaded collection, typically from the snapshot file
// or the journal at boot. The id counter advances past the highest loaded id.
func (s *Store) ReplaceAll(games []*Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games = make(map[int]*Game, len(games))
	s.nextID = 1
	for _, game := range games {
		if game == nil {
			continue
		}
		s.games[game.ID] = game
		if game.ID >= s.nextID {
			s.nextID = game.ID + 1
		}
	}
}

func (s *Store) Summaries() []GameSummary {
	games := s.Games()
	summaries := make([]GameSummary, 0, len(games))
	for _, game := range games {
		summaries = append(summaries, GameSummary{
			ID:           game.ID,
			Name:         game.Name,
			Players:      len(game.Players),
			Rounds:       len(game.Rounds),
			IsActive:     game.IsActive,
			CreatedAt:    game.CreatedAt,
			WinCondition: game.WinCondition,
		})
	}
	return summaries
}

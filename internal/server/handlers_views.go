package server

import (
	"log"
	"net/http"

	"github.com/driekeerJ/scorecard/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	cards := make([]web.GameCard, 0)
	for _, summary := range s.store.Summaries() {
		cards = append(cards, web.GameCard{
			ID:           summary.ID,
			Name:         summary.Name,
			Players:      summary.Players,
			Rounds:       summary.Rounds,
			Active:       summary.IsActive,
			WinCondition: summary.WinCondition,
			Created:      summary.CreatedAt.Format("2 Jan 2006"),
		})
	}
	templ.Handler(web.Home(cards)).ServeHTTP(w, r)
}

func (s *Server) handleCreateView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.CreateView(playerColors, maxGamePlayers)).ServeHTTP(w, r)
}

func (s *Server) handleGameView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseGameViewPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	game, ok := s.store.GetGame(id)
	if !ok {
		log.Printf("game view missing game_id=%d", id)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	templ.Handler(web.GameView(s.buildGamePage(game))).ServeHTTP(w, r)
}

// buildGamePage derives the race-track view state for a game.
func (s *Server) buildGamePage(game *Game) web.GamePageState {
	positions := trackPositions(game)
	front, hasFront := leader(game)
	lanes := make([]web.TrackLane, 0, len(game.Players))
	for _, player := range game.Players {
		lanes = append(lanes, web.TrackLane{
			PlayerID: player.ID,
			Name:     player.Name,
			Score:    player.Score,
			Color:    player.Color,
			Position: positions[player.ID],
			Leading:  hasFront && player.ID == front.ID,
		})
	}
	state := web.GamePageState{
		ID:            game.ID,
		Name:          game.Name,
		CurrentRound:  game.CurrentRound,
		Active:        game.IsActive,
		WinCondition:  game.WinCondition,
		Lanes:         lanes,
		SubmitDelayMS: s.cfg.SubmitDelayMillis,
	}
	if hasFront {
		state.Leader = &web.LeaderBadge{
			Name:  front.Name,
			Score: front.Score,
		}
	}
	return state
}

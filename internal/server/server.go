package server

import (
	"log"
	"net/http"

	"github.com/driekeerJ/scorecard/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store     *Store
	db        *gorm.DB
	cfg       config.Config
	snapshots *snapshotStore
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	s := &Server{
		store:     NewStore(),
		db:        conn,
		cfg:       cfg,
		snapshots: newSnapshotStore(cfg.SnapshotPath),
	}
	s.loadGames()
	return s
}

// loadGames seeds the in-memory collection at boot. The snapshot file wins;
// the journal is only consulted when no snapshot exists.
func (s *Server) loadGames() {
	games := s.snapshots.Load()
	if len(games) == 0 && s.db != nil {
		restored, err := s.restoreFromJournal()
		if err != nil {
			log.Printf("journal restore failed err=%v", err)
		} else if len(restored) > 0 {
			games = restored
			log.Printf("games restored from journal count=%d", len(games))
		}
	}
	s.store.ReplaceAll(games)
	if len(games) > 0 {
		log.Printf("games loaded count=%d", len(games))
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /create", s.handleCreateView)
	mux.HandleFunc("GET /games/", s.handleGameView)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("POST /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("DELETE /api/games/", s.handleGameSubroutes)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

// saveSnapshot mirrors the collection after a mutation. Failures are logged
// and never surfaced: the session keeps running on the in-memory state.
func (s *Server) saveSnapshot() {
	if err := s.snapshots.Save(s.store.Games()); err != nil {
		log.Printf("snapshot write failed path=%s err=%v", s.cfg.SnapshotPath, err)
	}
}

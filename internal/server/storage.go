package server

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// snapshotStore mirrors the whole game collection to a single JSON document
// on disk after every mutation. The in-memory collection stays the source of
// truth for the session: a failed read degrades to an empty collection and a
// failed write is logged and otherwise ignored.
type snapshotStore struct {
	path string
}

func newSnapshotStore(path string) *snapshotStore {
	return &snapshotStore{path: path}
}

func (s *snapshotStore) enabled() bool {
	return s != nil && s.path != ""
}

// Load reads the stored collection. Absent, unreadable, or malformed data
// never surfaces as an error; the caller always gets a usable collection.
func (s *snapshotStore) Load() []*Game {
	if !s.enabled() {
		return []*Game{}
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("snapshot read failed path=%s err=%v", s.path, err)
		}
		return []*Game{}
	}
	var games []*Game
	if err := json.Unmarshal(data, &games); err != nil {
		log.Printf("snapshot unreadable, starting empty path=%s err=%v", s.path, err)
		return []*Game{}
	}
	sane := games[:0]
	for _, game := range games {
		if game == nil || game.ID <= 0 || len(game.Players) < minGamePlayers {
			log.Printf("snapshot entry quarantined path=%s", s.path)
			continue
		}
		sane = append(sane, game)
	}
	return sane
}

// Save writes the collection in full. Timestamps serialize as RFC 3339 via
// encoding/json's time handling, matching what Load revives.
func (s *snapshotStore) Save(games []*Game) error {
	if !s.enabled() {
		return nil
	}
	data, err := json.Marshal(games)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

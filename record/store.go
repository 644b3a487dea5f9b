package record

import (
	"github.com/quasilyte/gdata"
)

// Store keeps the best record per map in platform-local storage.
type Store struct {
	m *gdata.Manager
}

// OpenStore opens the record store for the given application name.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, err
	}
	return &Store{m: m}, nil
}

func bestKey(mapName string) string {
	return "best-" + mapName
}

// LoadBest returns the stored best record for the map, or ok=false when none
// exists yet. A corrupt stored record also reads as absent so a fresh run can
// overwrite it.
func (s *Store) LoadBest(mapName string) (Record, bool) {
	data, err := s.m.LoadItem(bestKey(mapName))
	if err != nil || len(data) == 0 {
		return Record{}, false
	}
	r, err := Unmarshal(data)
	if err != nil {
		return Record{}, false
	}
	return r, true
}

// SaveBest stores r if it beats the existing best time for its map. Returns
// whether r became the new best.
func (s *Store) SaveBest(r Record) (bool, error) {
	if best, ok := s.LoadBest(r.MapName); ok && best.ElapsedMs <= r.ElapsedMs {
		return false, nil
	}
	data, err := Marshal(r)
	if err != nil {
		return false, err
	}
	if err := s.m.SaveItem(bestKey(r.MapName), data); err != nil {
		return false, err
	}
	return true, nil
}

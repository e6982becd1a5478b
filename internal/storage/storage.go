package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/OCharnyshevich/heightmap/internal/config"
	"github.com/OCharnyshevich/heightmap/pkg/world/classify"
	"github.com/OCharnyshevich/heightmap/pkg/world/heightmap"
)

// Storage handles file-based persistence of run artifacts.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "runs"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// SaveRun writes res and the scenario that produced it to runs/<id>.json
// under a freshly generated run id.
func (s *Storage) SaveRun(cfg *config.Config, res *heightmap.Result) (*RunData, error) {
	rd := &RunData{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		Generation:    cfg.Generation,
		Visualization: cfg.Visualization,
		Width:         res.Width,
		Height:        res.Height,
		ClassCount:    res.ClassCount,
		Histogram:     classify.Histogram(res.Tiles, res.ClassCount),
		Tiles:         res.Tiles.Rows(),
	}

	path := s.runPath(rd.ID)
	if err := s.atomicWriteJSON(path, rd); err != nil {
		return nil, fmt.Errorf("save run %s: %w", rd.ID, err)
	}
	s.log.Info("saved run", "id", rd.ID, "path", path)
	return rd, nil
}

// LoadRun reads runs/<id>.json and returns the data, or nil if not found.
func (s *Storage) LoadRun(id string) (*RunData, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid run id %q: %w", id, err)
	}

	data, err := os.ReadFile(s.runPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read run %s: %w", id, err)
	}

	var rd RunData
	if err := json.Unmarshal(data, &rd); err != nil {
		return nil, fmt.Errorf("parse run %s: %w", id, err)
	}
	return &rd, nil
}

func (s *Storage) runPath(id string) string {
	return filepath.Join(s.dir, "runs", id+".json")
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

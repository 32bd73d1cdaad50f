// Package snapshot persists the raw artifacts of a generation run: the
// model list, the aggregated stats, and the analytics token counts. Each is
// a plain JSON file so a page can be re-rendered without re-fetching.
package snapshot

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/agentstation/utc"

	"github.com/Crashthatch/openroutermodeltable/internal/aggregate"
	"github.com/Crashthatch/openroutermodeltable/pkg/constants"
	"github.com/Crashthatch/openroutermodeltable/pkg/errors"
	"github.com/Crashthatch/openroutermodeltable/pkg/openrouter"
)

// Models is the persisted form of the raw model list.
type Models struct {
	FetchedAt utc.Time           `json:"fetched_at"`
	Data      []openrouter.Model `json:"data"`
}

// Stats is the persisted form of the aggregated-stats mapping.
type Stats struct {
	FetchedAt utc.Time                         `json:"fetched_at"`
	Data      map[string]*aggregate.ModelStats `json:"data"`
}

// Analytics is the persisted form of the analytics token counts.
type Analytics struct {
	FetchedAt utc.Time                          `json:"fetched_at"`
	Data      map[string]openrouter.TokenCounts `json:"data"`
}

// Store reads and writes snapshots under a single directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = constants.DefaultOutputDir
	}
	return &Store{dir: dir}
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// SaveModels writes the model-list snapshot.
func (s *Store) SaveModels(models []openrouter.Model) error {
	return s.write(constants.ModelsSnapshotFile, Models{
		FetchedAt: utc.Now(),
		Data:      models,
	})
}

// LoadModels reads the model-list snapshot.
func (s *Store) LoadModels() (*Models, error) {
	var snap Models
	if err := s.read(constants.ModelsSnapshotFile, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SaveStats writes the aggregated-stats snapshot.
func (s *Store) SaveStats(statsBySlug map[string]*aggregate.ModelStats) error {
	return s.write(constants.StatsSnapshotFile, Stats{
		FetchedAt: utc.Now(),
		Data:      statsBySlug,
	})
}

// LoadStats reads the aggregated-stats snapshot. A missing file is not an
// error: the page renders with N/A statistic cells, so absence degrades
// the same way a failed aggregation does.
func (s *Store) LoadStats() (*Stats, error) {
	var snap Stats
	if err := s.read(constants.StatsSnapshotFile, &snap); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &Stats{Data: map[string]*aggregate.ModelStats{}}, nil
		}
		return nil, err
	}
	if snap.Data == nil {
		snap.Data = map[string]*aggregate.ModelStats{}
	}
	return &snap, nil
}

// SaveAnalytics writes the analytics snapshot.
func (s *Store) SaveAnalytics(counts map[string]openrouter.TokenCounts) error {
	return s.write(constants.AnalyticsSnapshotFile, Analytics{
		FetchedAt: utc.Now(),
		Data:      counts,
	})
}

// LoadAnalytics reads the analytics snapshot. Like stats, a missing file
// yields an empty mapping.
func (s *Store) LoadAnalytics() (*Analytics, error) {
	var snap Analytics
	if err := s.read(constants.AnalyticsSnapshotFile, &snap); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return &Analytics{Data: map[string]openrouter.TokenCounts{}}, nil
		}
		return nil, err
	}
	if snap.Data == nil {
		snap.Data = map[string]openrouter.TokenCounts{}
	}
	return &snap, nil
}

// write marshals v and writes it atomically: the content lands in a temp
// file first and is renamed into place, so a crash never leaves a
// half-written snapshot.
func (s *Store) write(name string, v any) error {
	if err := os.MkdirAll(s.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapResource("encode", "snapshot", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp_*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", path, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}

// read loads and unmarshals one snapshot file.
func (s *Store) read(name string, v any) error {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", path, err)
	}
	return nil
}

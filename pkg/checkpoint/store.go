// Package checkpoint persists the four solve artefacts the coordinator
// produces so a solve can be diagnosed, or its artefacts reused, without the
// coordinator running.
package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jihwankim/tiktak/pkg/frontier"
	"github.com/jihwankim/tiktak/pkg/tiktak"
)

var _ tiktak.CheckpointWriter = (*Store)(nil)

const (
	quasirandomFile = "quasirandom_points.yaml"
	allPointsFile   = "all_points.yaml"
	localMinimaFile = "local_minima.yaml"
	globalMinFile   = "global_minimum.yaml"
)

// Store writes and reads the four checkpoint artefacts as YAML files under a
// single directory, one file per artefact, each self-describing and
// reloadable independently of the coordinator.
type Store struct {
	dir string
}

// New creates the checkpoint directory if needed and returns a Store backed
// by it. An empty dir is invalid — callers that want checkpointing disabled
// should pass a nil tiktak.CheckpointWriter instead of constructing a Store.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("checkpoint: dir must not be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("checkpoint: failed to create directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("checkpoint: failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("checkpoint: failed to write %s: %w", path, err)
	}
	return nil
}

func readYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("checkpoint: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("checkpoint: failed to parse %s: %w", path, err)
	}
	return nil
}

// WriteQuasirandomPoints persists Phase A's full evaluated seed list.
func (s *Store) WriteQuasirandomPoints(points []frontier.Point) error {
	return writeYAML(s.path(quasirandomFile), points)
}

// ReadQuasirandomPoints reloads the artefact written by
// WriteQuasirandomPoints.
func (s *Store) ReadQuasirandomPoints() ([]frontier.Point, error) {
	var points []frontier.Point
	err := readYAML(s.path(quasirandomFile), &points)
	return points, err
}

// WriteAllPoints persists the seeds retained after Phase A's keep_lowest
// filter — the promising points handed to Phase B.
func (s *Store) WriteAllPoints(points []frontier.Point) error {
	return writeYAML(s.path(allPointsFile), points)
}

// ReadAllPoints reloads the artefact written by WriteAllPoints.
func (s *Store) ReadAllPoints() ([]frontier.Point, error) {
	var points []frontier.Point
	err := readYAML(s.path(allPointsFile), &points)
	return points, err
}

// WriteLocalMinima persists Phase B's sorted candidate minima — the list
// Phase C consumes.
func (s *Store) WriteLocalMinima(points []frontier.Point) error {
	return writeYAML(s.path(localMinimaFile), points)
}

// ReadLocalMinima reloads the artefact written by WriteLocalMinima.
func (s *Store) ReadLocalMinima() ([]frontier.Point, error) {
	var points []frontier.Point
	err := readYAML(s.path(localMinimaFile), &points)
	return points, err
}

// WriteGlobalMinimum persists the final incumbent from Phase C.
func (s *Store) WriteGlobalMinimum(point frontier.Point) error {
	return writeYAML(s.path(globalMinFile), point)
}

// ReadGlobalMinimum reloads the artefact written by WriteGlobalMinimum.
func (s *Store) ReadGlobalMinimum() (frontier.Point, error) {
	var point frontier.Point
	err := readYAML(s.path(globalMinFile), &point)
	return point, err
}

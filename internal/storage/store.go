package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
)

const ManifestFile = "manifest.json"

// Manifest records one pipeline run and the files it produced.
type Manifest struct {
	ID        string             `json:"id"`
	Mode      string             `json:"mode"`
	Dir       string             `json:"dir"`
	Steps     int                `json:"steps"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Artifacts []string           `json:"artifacts"`
	Started   time.Time          `json:"started"`
	Finished  time.Time          `json:"finished"`
	Metrics   map[string]float64 `json:"metrics"`
	// GapCurve is the mean image-text gap at every step.
	GapCurve []float64 `json:"gap_curve,omitempty"`
	Error    string    `json:"error,omitempty"`
}

func NewManifest(mode, dir string, steps int, seed int64) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		Mode:      mode,
		Dir:       dir,
		Steps:     steps,
		Seed:      seed,
		Artifacts: make([]string, 0),
		Started:   time.Now(),
		Metrics:   make(map[string]float64),
	}
}

// AddArtifact records a produced file by its name relative to the run
// directory.
func (m *Manifest) AddArtifact(path string) {
	if rel, err := filepath.Rel(m.Dir, path); err == nil {
		path = rel
	}
	m.Artifacts = append(m.Artifacts, path)
}

func (m *Manifest) Duration() time.Duration {
	if m.Finished.IsZero() {
		return 0
	}
	return m.Finished.Sub(m.Started)
}

// Save writes the manifest into its run directory.
func Save(m *Manifest) error {
	if err := os.MkdirAll(m.Dir, 0755); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(m.Dir, ManifestFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func Load(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Store finds the run directories that share an output prefix.
type Store struct {
	prefix string
}

func New(prefix string) *Store {
	return &Store{prefix: prefix}
}

// List returns every readable manifest under <prefix>_*/, oldest first.
// Directories without a manifest are skipped.
func (s *Store) List() ([]Manifest, error) {
	matches, err := filepath.Glob(s.prefix + "_*")
	if err != nil {
		return nil, err
	}

	runs := make([]Manifest, 0)
	for _, dir := range matches {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		m, err := Load(dir)
		if err != nil {
			continue
		}
		runs = append(runs, *m)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Started.Before(runs[j].Started)
	})
	return runs, nil
}

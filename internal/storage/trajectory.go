package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/san-kum/contrastviz/internal/align"
	"github.com/san-kum/contrastviz/internal/space"
)

const TrajectoryFile = "trajectory.csv"

var trajectoryHeader = []string{"step", "t", "item", "space", "x", "y", "z"}

// TrajectoryWriter is an align.Observer that records every point of every
// snapshot as CSV. Missing coordinates are left empty.
type TrajectoryWriter struct {
	file *os.File
	w    *csv.Writer
	rows int
}

func NewTrajectoryWriter(path string) (*TrajectoryWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(trajectoryHeader); err != nil {
		f.Close()
		return nil, err
	}
	return &TrajectoryWriter{file: f, w: w}, nil
}

func (t *TrajectoryWriter) OnSnapshot(s align.Snapshot) error {
	if err := t.writeSpace(s, "image", s.Image); err != nil {
		return err
	}
	return t.writeSpace(s, "text", s.Text)
}

func (t *TrajectoryWriter) writeSpace(s align.Snapshot, name string, sp space.Space) error {
	for _, item := range sp.Keys() {
		p := sp[item]
		row := []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(s.T, 'f', -1, 64),
			item,
			name,
			"", "", "",
		}
		for i := 0; i < len(p) && i < 3; i++ {
			row[4+i] = strconv.FormatFloat(p[i], 'f', -1, 64)
		}
		if err := t.w.Write(row); err != nil {
			return fmt.Errorf("trajectory row: %w", err)
		}
		t.rows++
	}
	return nil
}

func (t *TrajectoryWriter) Rows() int { return t.rows }

func (t *TrajectoryWriter) Close() error {
	t.w.Flush()
	if err := t.w.Error(); err != nil {
		t.file.Close()
		return err
	}
	return t.file.Close()
}

// TrajectoryRow is one parsed line of a trajectory file.
type TrajectoryRow struct {
	Step  int
	T     float64
	Item  string
	Space string
	Point space.Point
}

func LoadTrajectory(path string) ([]TrajectoryRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(trajectoryHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []TrajectoryRow{}, nil
	}

	rows := make([]TrajectoryRow, 0, len(records)-1)
	for _, record := range records[1:] {
		step, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("bad step %q: %w", record[0], err)
		}
		t, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q: %w", record[1], err)
		}

		p := make(space.Point, 0, 3)
		for _, field := range record[4:] {
			if field == "" {
				break
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("bad coordinate %q: %w", field, err)
			}
			p = append(p, v)
		}

		rows = append(rows, TrajectoryRow{
			Step:  step,
			T:     t,
			Item:  record[2],
			Space: record[3],
			Point: p,
		})
	}
	return rows, nil
}

package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/sphlab/internal/engine"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Dt        float64            `json:"dt"`
	Duration  float64            `json:"duration"`
	Kernel    string             `json:"kernel"`
	Particles int                `json:"particles"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes run metadata plus the recorded particle frames: one
// frames.csv with (frame, time, particle, x, y) rows, readable by anything
// that speaks csv.
func (s *Store) Save(scene, kernel string, dt, duration float64, seed int64, particles int, result *engine.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scene, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scene:     scene,
		Timestamp: time.Now(),
		Seed:      seed,
		Dt:        dt,
		Duration:  duration,
		Kernel:    kernel,
		Particles: particles,
		Metrics:   result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "frames.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"frame", "time", "particle", "x", "y"}); err != nil {
		return "", err
	}

	for fi, frame := range result.Frames {
		for pi := range frame.X {
			row := []string{
				strconv.Itoa(fi),
				strconv.FormatFloat(frame.T, 'f', 6, 64),
				strconv.Itoa(pi),
				strconv.FormatFloat(frame.X[pi], 'f', 6, 64),
				strconv.FormatFloat(frame.Y[pi], 'f', 6, 64),
			}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadFrames reads frames.csv back into engine frames.
func (s *Store) LoadFrames(runID string) ([]engine.Frame, error) {
	csvPath := filepath.Join(s.baseDir, runID, "frames.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	frames := make([]engine.Frame, 0)
	lastFrame := -1
	for i := 1; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 5 {
			continue
		}
		fi, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		t, _ := strconv.ParseFloat(rec[1], 64)
		x, _ := strconv.ParseFloat(rec[3], 64)
		y, _ := strconv.ParseFloat(rec[4], 64)

		if fi != lastFrame {
			frames = append(frames, engine.Frame{T: t})
			lastFrame = fi
		}
		f := &frames[len(frames)-1]
		f.X = append(f.X, x)
		f.Y = append(f.Y, y)
	}

	return frames, nil
}

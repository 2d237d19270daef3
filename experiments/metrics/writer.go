package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// SweepRecord is one data point of a parameter sweep: the swept parameter
// value, the converged decision, and the win intervals for both branches.
type SweepRecord struct {
	Param     int
	Decision  string
	PlayMin   float64
	PlayMax   float64
	PassMin   float64
	PassMax   float64
	Depths    int
	CacheSize int
	Duration  time.Duration
}

type Writer struct {
	baseDir string
}

func NewWriter(experiment string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("experiments", experiment, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) WriteSweepRecords(param string, records []SweepRecord) error {
	path := filepath.Join(w.baseDir, "sweep_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sweep records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{param, "decision", "play_min", "play_max", "pass_min", "pass_max", "depths", "cache_size", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write sweep records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Param),
			record.Decision,
			strconv.FormatFloat(record.PlayMin, 'f', 4, 64),
			strconv.FormatFloat(record.PlayMax, 'f', 4, 64),
			strconv.FormatFloat(record.PassMin, 'f', 4, 64),
			strconv.FormatFloat(record.PassMax, 'f', 4, 64),
			strconv.Itoa(record.Depths),
			strconv.Itoa(record.CacheSize),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write sweep record row: %w", err)
		}
	}

	return nil
}

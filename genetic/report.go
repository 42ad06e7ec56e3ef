package genetic

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// GenerationRecord is the flat, serializable form of one generation's statistics.
type GenerationRecord struct {
	Generation    int     `csv:"generation"`
	Size          int     `csv:"size"`
	MinFitness    float32 `csv:"min_fitness"`
	MaxFitness    float32 `csv:"max_fitness"`
	AvgFitness    float32 `csv:"avg_fitness"`
	StdDevFitness float32 `csv:"stddev_fitness"`
}

// NewGenerationRecord flattens stats for the given generation number.
func NewGenerationRecord(generation int, stats Statistics) GenerationRecord {
	return GenerationRecord{
		Generation:    generation,
		Size:          stats.Len(),
		MinFitness:    stats.MinFitness(),
		MaxFitness:    stats.MaxFitness(),
		AvgFitness:    stats.AvgFitness(),
		StdDevFitness: stats.StdDevFitness(),
	}
}

// Reporter appends generation records to statistics.csv in an output directory.
type Reporter struct {
	dir           string
	file          *os.File
	headerWritten bool
}

// NewReporter creates the output directory and statistics.csv.
// Returns nil if dir is empty (output disabled); a nil Reporter ignores every call.
func NewReporter(dir string) (*Reporter, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "statistics.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating statistics.csv: %w", err)
	}
	return &Reporter{dir: dir, file: f}, nil
}

// Dir returns the output directory.
func (r *Reporter) Dir() string {
	if r == nil {
		return ""
	}
	return r.dir
}

// Write appends one record, writing the CSV header the first time.
func (r *Reporter) Write(record GenerationRecord) error {
	if r == nil {
		return nil
	}

	records := []GenerationRecord{record}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.file); err != nil {
			return fmt.Errorf("writing statistics: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.file); err != nil {
		return fmt.Errorf("writing statistics: %w", err)
	}
	return nil
}

// WriteAll appends records in order. A resumed run uses it to carry over the restored history.
func (r *Reporter) WriteAll(records []GenerationRecord) error {
	for _, record := range records {
		if err := r.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes and closes statistics.csv.
func (r *Reporter) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// ReadRecords parses a statistics.csv file written by Reporter.
func ReadRecords(path string) ([]GenerationRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening statistics file '%s': %w", path, err)
	}
	defer f.Close()

	var records []GenerationRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing statistics file '%s': %w", path, err)
	}
	return records, nil
}

// PlotHistory renders min/avg/max fitness per generation as an image.
// The format follows the file extension (png, svg, pdf...).
func PlotHistory(records []GenerationRecord, path string) error {
	if len(records) == 0 {
		return fmt.Errorf("no generations to plot")
	}

	minPts := make(plotter.XYs, len(records))
	avgPts := make(plotter.XYs, len(records))
	maxPts := make(plotter.XYs, len(records))
	for i, r := range records {
		x := float64(r.Generation)
		minPts[i] = plotter.XY{X: x, Y: float64(r.MinFitness)}
		avgPts[i] = plotter.XY{X: x, Y: float64(r.AvgFitness)}
		maxPts[i] = plotter.XY{X: x, Y: float64(r.MaxFitness)}
	}

	p := plot.New()
	p.Title.Text = "Fitness"
	p.X.Label.Text = "generation"
	p.Y.Label.Text = "fitness"
	if err := plotutil.AddLines(p, "max", maxPts, "avg", avgPts, "min", minPts); err != nil {
		return fmt.Errorf("building fitness plot: %w", err)
	}
	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("saving fitness plot '%s': %w", path, err)
	}
	return nil
}

package genetic

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
)

// checkpointData is the subset of Population that is saved.
// Individuals are stored as flat gene sequences without fitness.
type checkpointData struct {
	Generation int
	Genes      [][]float32
	Best       *Champion
	History    []GenerationRecord
}

// SaveCheckpoint writes the population state to a gzip-compressed gob file.
func (p *Population[I]) SaveCheckpoint(filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)

	data := checkpointData{
		Generation: p.Generation,
		Genes:      make([][]float32, len(p.Members)),
		Best:       p.Best,
		History:    p.History,
	}
	for i, m := range p.Members {
		data.Genes[i] = []float32(m.Chromosome())
	}

	if err := gob.NewEncoder(gzWriter).Encode(data); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode population data: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush checkpoint '%s': %w", filePath, err)
	}

	p.logger.Info("checkpoint saved", slog.String("path", filePath), slog.Int("generation", p.Generation))
	return nil
}

// LoadCheckpoint restores a population saved with SaveCheckpoint.
// Members are rebuilt from their genes with create. A nil logger falls back to slog.Default().
func LoadCheckpoint[I Individual](filePath string, create CreateFunc[I], logger *slog.Logger) (*Population[I], error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader for checkpoint: %w", err)
	}
	defer gzReader.Close()

	var data checkpointData
	if err := gob.NewDecoder(gzReader).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode population data from checkpoint: %w", err)
	}

	members := make([]I, len(data.Genes))
	for i, genes := range data.Genes {
		members[i] = create(Chromosome(genes))
	}

	p, err := NewPopulation(members, logger)
	if err != nil {
		return nil, fmt.Errorf("checkpoint '%s': %w", filePath, err)
	}
	p.Generation = data.Generation
	p.Best = data.Best
	p.History = data.History

	p.logger.Info("checkpoint loaded", slog.String("path", filePath), slog.Int("generation", p.Generation))
	return p, nil
}

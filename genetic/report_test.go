package genetic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []GenerationRecord {
	return []GenerationRecord{
		{Generation: 1, Size: 4, MinFitness: 0, MaxFitness: 4, AvgFitness: 1.5, StdDevFitness: 1.75},
		{Generation: 2, Size: 4, MinFitness: 1, MaxFitness: 5, AvgFitness: 2.5, StdDevFitness: 1.25},
		{Generation: 3, Size: 4, MinFitness: 2, MaxFitness: 6, AvgFitness: 3.5, StdDevFitness: 0.5},
	}
}

func TestNewGenerationRecord(t *testing.T) {
	stats, err := NewStatistics([]*testIndividual{scored(0), scored(1), scored(1), scored(4)})
	require.NoError(t, err)

	r := NewGenerationRecord(7, stats)
	assert.Equal(t, 7, r.Generation)
	assert.Equal(t, 4, r.Size)
	assert.Equal(t, float32(0), r.MinFitness)
	assert.Equal(t, float32(4), r.MaxFitness)
	assert.Equal(t, float32(1.5), r.AvgFitness)
	assert.Equal(t, stats.StdDevFitness(), r.StdDevFitness)
}

func TestReporterDisabled(t *testing.T) {
	r, err := NewReporter("")
	require.NoError(t, err)
	assert.Nil(t, r)

	assert.NoError(t, r.Write(GenerationRecord{Generation: 1}))
	assert.NoError(t, r.Close())
	assert.Empty(t, r.Dir())
}

func TestReporterWritesReadableCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	r, err := NewReporter(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, r.Dir())

	for _, rec := range sampleRecords() {
		require.NoError(t, r.Write(rec))
	}
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	records, err := ReadRecords(filepath.Join(dir, "statistics.csv"))
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestReporterWriteAllContinuesHistory(t *testing.T) {
	dir := t.TempDir()
	r, err := NewReporter(dir)
	require.NoError(t, err)

	records := sampleRecords()
	require.NoError(t, r.WriteAll(records[:2]))
	require.NoError(t, r.Write(records[2]))
	require.NoError(t, r.Close())

	got, err := ReadRecords(filepath.Join(dir, "statistics.csv"))
	require.NoError(t, err)
	assert.Equal(t, records, got)

	var disabled *Reporter
	assert.NoError(t, disabled.WriteAll(records))
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "statistics.csv"))
	assert.Error(t, err)
}

func TestPlotHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fitness.png")
	require.NoError(t, PlotHistory(sampleRecords(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	assert.Error(t, PlotHistory(nil, path))
}

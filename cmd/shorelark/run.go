package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/baldhumanity/shorelark-go/genetic"
	"github.com/baldhumanity/shorelark-go/simulation"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	runConfigPath  string
	runGenerations int
	runSeed        uint64
	runOutDir      string
	runResume      string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation for a number of generations",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&runConfigPath, "config", "c", "", "INI config file (defaults are used when empty)")
	runCmd.Flags().IntVarP(&runGenerations, "generations", "g", 0, "override [Evolution] generations")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "override [Evolution] seed")
	runCmd.Flags().StringVarP(&runOutDir, "out", "o", "", "override [Output] dir")
	runCmd.Flags().StringVar(&runResume, "resume", "", "checkpoint to resume from")
}

// runManifest identifies one run in its output directory.
type runManifest struct {
	RunID       string    `yaml:"run_id"`
	StartedAt   time.Time `yaml:"started_at"`
	Seed        uint64    `yaml:"seed"`
	ResumedFrom string    `yaml:"resumed_from,omitempty"`
}

func loadRunConfig(cmd *cobra.Command) (*simulation.Config, error) {
	config := simulation.DefaultConfig()
	if runConfigPath != "" {
		loaded, err := simulation.LoadConfig(runConfigPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if cmd.Flags().Changed("generations") {
		config.GA.Evolution.Generations = runGenerations
	}
	if cmd.Flags().Changed("seed") {
		config.GA.Evolution.Seed = runSeed
	}
	if cmd.Flags().Changed("out") {
		config.GA.Output.Dir = runOutDir
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	config, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger := slog.Default().With(slog.String("run_id", runID))
	rng := genetic.NewRand(config.GA.Evolution.Seed)

	var sim *simulation.Simulation
	if runResume != "" {
		population, err := genetic.LoadCheckpoint[*simulation.AnimalIndividual](runResume, simulation.NewAnimalIndividual, logger)
		if err != nil {
			return err
		}
		sim, err = simulation.Restore(rng, config, population, logger)
		if err != nil {
			return err
		}
	} else {
		sim, err = simulation.New(rng, config, logger)
		if err != nil {
			return err
		}
	}

	reporter, err := prepareOutput(config, runManifest{
		RunID:       runID,
		StartedAt:   time.Now().UTC(),
		Seed:        config.GA.Evolution.Seed,
		ResumedFrom: runResume,
	})
	if err != nil {
		return err
	}
	defer reporter.Close()

	// statistics.csv starts empty, so a resumed run rewrites the generations it inherited.
	if err := reporter.WriteAll(sim.Population().History); err != nil {
		return err
	}

	logger.Info("starting run",
		slog.Int("animals", config.GA.Evolution.PopulationSize),
		slog.Int("generations", config.GA.Evolution.Generations),
		slog.Int("start_generation", sim.Generation()),
		slog.Uint64("seed", config.GA.Evolution.Seed),
	)

	interval := config.GA.Output.CheckpointInterval
	for i := 0; i < config.GA.Evolution.Generations; i++ {
		stats, err := sim.Train(rng)
		if err != nil {
			return fmt.Errorf("generation %d: %w", sim.Generation()+1, err)
		}
		if err := reporter.Write(genetic.NewGenerationRecord(sim.Generation(), stats)); err != nil {
			return err
		}

		if reporter != nil && interval > 0 && sim.Generation()%interval == 0 {
			path := filepath.Join(reporter.Dir(), fmt.Sprintf("checkpoint_gen%d.gz", sim.Generation()))
			if err := sim.Population().SaveCheckpoint(path); err != nil {
				logger.Warn("failed to save checkpoint", slog.Int("generation", sim.Generation()), slog.Any("error", err))
			}
		}

		if config.GA.Solved(stats) {
			logger.Info("fitness threshold met", slog.Int("generation", sim.Generation()))
			break
		}
	}

	return finishOutput(reporter, sim, config, logger)
}

// prepareOutput creates the output directory with its config snapshot and manifest.
// It returns a nil reporter when output is disabled.
func prepareOutput(config *simulation.Config, manifest runManifest) (*genetic.Reporter, error) {
	reporter, err := genetic.NewReporter(config.GA.Output.Dir)
	if err != nil || reporter == nil {
		return nil, err
	}

	if err := config.WriteYAML(filepath.Join(reporter.Dir(), "config.yaml")); err != nil {
		reporter.Close()
		return nil, err
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		reporter.Close()
		return nil, fmt.Errorf("marshaling run manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(reporter.Dir(), "run.yaml"), data, 0644); err != nil {
		reporter.Close()
		return nil, fmt.Errorf("writing run manifest: %w", err)
	}
	return reporter, nil
}

func finishOutput(reporter *genetic.Reporter, sim *simulation.Simulation, config *simulation.Config, logger *slog.Logger) error {
	population := sim.Population()
	if best := population.Best; best != nil {
		logger.Info("run finished",
			slog.Int("generation", population.Generation),
			slog.Int("best_generation", best.Generation),
			slog.Float64("best_fitness", float64(best.Fitness)),
		)
	}

	if reporter == nil {
		return nil
	}

	if err := population.SaveCheckpoint(filepath.Join(reporter.Dir(), "checkpoint_final.gz")); err != nil {
		return err
	}
	if config.GA.Output.Plot && len(population.History) > 0 {
		if err := genetic.PlotHistory(population.History, filepath.Join(reporter.Dir(), "fitness.png")); err != nil {
			logger.Warn("failed to plot fitness", slog.Any("error", err))
		}
	}
	return nil
}

package genetic

import (
	"fmt"
	"math"

	"gopkg.in/ini.v1"
)

// Config stores the parameters of an evolution run.
type Config struct {
	Evolution EvolutionConfig `yaml:"evolution"`
	Mutation  MutationConfig  `yaml:"mutation"`
	Output    OutputConfig    `yaml:"output"`
}

// EvolutionConfig holds parameters of the generational loop.
type EvolutionConfig struct {
	PopulationSize       int     `ini:"population_size" yaml:"population_size"`
	Generations          int     `ini:"generations" yaml:"generations"`
	Seed                 uint64  `ini:"seed" yaml:"seed"`
	FitnessThreshold     float64 `ini:"fitness_threshold" yaml:"fitness_threshold"`
	NoFitnessTermination bool    `ini:"no_fitness_termination" yaml:"no_fitness_termination"` // Run all generations regardless of fitness
}

// MutationConfig holds the GaussianMutation parameters.
type MutationConfig struct {
	Chance      float32 `ini:"chance" yaml:"chance"`
	Coefficient float32 `ini:"coefficient" yaml:"coefficient"`
}

// OutputConfig controls what a run writes to disk. An empty Dir disables output.
type OutputConfig struct {
	Dir                string `ini:"dir" yaml:"dir"`
	CheckpointInterval int    `ini:"checkpoint_interval" yaml:"checkpoint_interval"` // 0 disables periodic checkpoints
	Plot               bool   `ini:"plot" yaml:"plot"`
}

// DefaultConfig returns the parameters used when a key is absent from the config file.
func DefaultConfig() *Config {
	return &Config{
		Evolution: EvolutionConfig{
			PopulationSize:       40,
			Generations:          100,
			FitnessThreshold:     math.Inf(1),
			NoFitnessTermination: true,
		},
		Mutation: MutationConfig{
			Chance:      0.01,
			Coefficient: 0.3,
		},
		Output: OutputConfig{
			Plot: true,
		},
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := LoadINI(filePath)
	if err != nil {
		return nil, err
	}
	return ParseConfig(cfg)
}

// LoadINI opens an INI file with the options every loader in this module shares.
func LoadINI(filePath string) (*ini.File, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return cfg, nil
}

// ParseConfig maps the [Evolution], [Mutation] and [Output] sections of an already
// loaded file on top of DefaultConfig and validates the result.
func ParseConfig(cfg *ini.File) (*Config, error) {
	config := DefaultConfig()

	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("failed to map [Mutation] section: %w", err)
	}
	if err := cfg.Section("Output").MapTo(&config.Output); err != nil {
		return nil, fmt.Errorf("failed to map [Output] section: %w", err)
	}

	// A threshold in the file implies the run should stop once it is reached,
	// unless the file says otherwise.
	evolution := cfg.Section("Evolution")
	if evolution.HasKey("fitness_threshold") && !evolution.HasKey("no_fitness_termination") {
		config.Evolution.NoFitnessTermination = false
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Evolution.PopulationSize <= 0 {
		return fmt.Errorf("config error: population_size must be positive")
	}
	if c.Evolution.Generations < 0 {
		return fmt.Errorf("config error: generations cannot be negative")
	}
	if math.IsNaN(c.Evolution.FitnessThreshold) {
		return fmt.Errorf("config error: fitness_threshold must be a number")
	}
	if !(c.Mutation.Chance >= 0 && c.Mutation.Chance <= 1) {
		return fmt.Errorf("config error: mutation chance must be between 0 and 1")
	}
	if c.Mutation.Coefficient < 0 {
		return fmt.Errorf("config error: mutation coefficient cannot be negative")
	}
	if c.Output.CheckpointInterval < 0 {
		return fmt.Errorf("config error: checkpoint_interval cannot be negative")
	}
	return nil
}

// Solved reports whether stats reach the configured fitness threshold.
func (c *Config) Solved(stats Statistics) bool {
	if c.Evolution.NoFitnessTermination {
		return false
	}
	return float64(stats.MaxFitness()) >= c.Evolution.FitnessThreshold
}

// NewMutation builds the GaussianMutation described by the [Mutation] section.
func (c *Config) NewMutation() (GaussianMutation, error) {
	return NewGaussianMutation(c.Mutation.Chance, c.Mutation.Coefficient)
}

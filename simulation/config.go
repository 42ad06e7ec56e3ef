package simulation

import (
	"fmt"
	"math"
	"os"

	"github.com/baldhumanity/shorelark-go/genetic"
	"gopkg.in/yaml.v3"
)

// Config holds every parameter of a simulation run.
// The number of animals is GA.Evolution.PopulationSize.
type Config struct {
	GA    *genetic.Config `yaml:"genetic"`
	World WorldConfig     `yaml:"world"`
	Eye   EyeConfig       `yaml:"eye"`
}

// WorldConfig holds the physics of the world. Distances are in world units; the world is the unit square.
type WorldConfig struct {
	Foods            int     `ini:"foods" yaml:"foods"`
	GenerationLength int     `ini:"generation_length" yaml:"generation_length"` // Steps per generation
	SpeedMin         float64 `ini:"speed_min" yaml:"speed_min"`
	SpeedMax         float64 `ini:"speed_max" yaml:"speed_max"`
	SpeedAccel       float64 `ini:"speed_accel" yaml:"speed_accel"`
	RotationAccel    float64 `ini:"rotation_accel" yaml:"rotation_accel"` // Radians per step
	EatRadius        float64 `ini:"eat_radius" yaml:"eat_radius"`
}

// EyeConfig describes what an animal can see.
type EyeConfig struct {
	FOVRange float64 `ini:"fov_range" yaml:"fov_range"`
	FOVAngle float64 `ini:"fov_angle" yaml:"fov_angle"` // Radians
	Cells    int     `ini:"cells" yaml:"cells"`
}

// DefaultConfig returns the parameters used when a key is absent from the config file.
func DefaultConfig() *Config {
	return &Config{
		GA: genetic.DefaultConfig(),
		World: WorldConfig{
			Foods:            60,
			GenerationLength: 2500,
			SpeedMin:         0.001,
			SpeedMax:         0.005,
			SpeedAccel:       0.2,
			RotationAccel:    math.Pi / 2,
			EatRadius:        0.01,
		},
		Eye: EyeConfig{
			FOVRange: 0.25,
			FOVAngle: math.Pi + math.Pi/4,
			Cells:    9,
		},
	}
}

// LoadConfig reads the genetic sections plus [World] and [Eye] from one INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := genetic.LoadINI(filePath)
	if err != nil {
		return nil, err
	}

	ga, err := genetic.ParseConfig(cfg)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	config.GA = ga
	if err := cfg.Section("World").MapTo(&config.World); err != nil {
		return nil, fmt.Errorf("failed to map [World] section: %w", err)
	}
	if err := cfg.Section("Eye").MapTo(&config.Eye); err != nil {
		return nil, fmt.Errorf("failed to map [Eye] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges, including the genetic sections.
func (c *Config) Validate() error {
	if c.GA == nil {
		return fmt.Errorf("config error: missing genetic configuration")
	}
	if err := c.GA.Validate(); err != nil {
		return err
	}
	if c.World.Foods < 0 {
		return fmt.Errorf("config error: foods cannot be negative")
	}
	if c.World.GenerationLength <= 0 {
		return fmt.Errorf("config error: generation_length must be positive")
	}
	if c.World.SpeedMin < 0 || c.World.SpeedMax < c.World.SpeedMin {
		return fmt.Errorf("config error: speed_min must be non-negative and not above speed_max")
	}
	if c.World.SpeedAccel < 0 || c.World.RotationAccel < 0 {
		return fmt.Errorf("config error: speed_accel and rotation_accel cannot be negative")
	}
	if c.World.EatRadius < 0 {
		return fmt.Errorf("config error: eat_radius cannot be negative")
	}
	if c.Eye.FOVRange <= 0 {
		return fmt.Errorf("config error: fov_range must be positive")
	}
	if c.Eye.FOVAngle <= 0 || c.Eye.FOVAngle > 2*math.Pi {
		return fmt.Errorf("config error: fov_angle must be in (0, 2*pi]")
	}
	if c.Eye.Cells <= 0 {
		return fmt.Errorf("config error: cells must be positive")
	}
	return nil
}

// WriteYAML saves the configuration as YAML.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config '%s': %w", path, err)
	}
	return nil
}

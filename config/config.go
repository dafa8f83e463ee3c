package config

import (
	"fmt"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the single ECS layer the simulation runs on.
const Default ecs.LayerID = 0

// SimConfig contains the simulation tuning values.
type SimConfig struct {
	// TickRate is the number of simulation steps per second. The fixed
	// timestep passed to time-dependent systems is 1/TickRate.
	TickRate int `yaml:"tick_rate"`

	// ArrivalThreshold is the distance below which an enemy counts as
	// having reached its current waypoint.
	ArrivalThreshold float64 `yaml:"arrival_threshold"`

	// UnitRadius compensates attack range for unit body size: a target is
	// in range when distance² <= (range + UnitRadius)².
	UnitRadius float64 `yaml:"unit_radius"`

	// BlockRadius is read by the external melee-engagement detector.
	BlockRadius float64 `yaml:"block_radius"`

	// FacingDeadzone is the minimum |velocity.x| that flips facing when no
	// target or blocker decides it.
	FacingDeadzone float64 `yaml:"facing_deadzone"`
}

// DT returns the fixed timestep in seconds.
func (c SimConfig) DT() float64 {
	return 1.0 / float64(c.TickRate)
}

// Global configuration instances
var (
	Sim   SimConfig
	Units UnitsConfig
)

func init() {
	Sim = SimConfig{
		TickRate:         60,
		ArrivalThreshold: 5.0,
		UnitRadius:       16.0,
		BlockRadius:      40.0,
		FacingDeadzone:   0.1,
	}
	Units = defaultUnits()
}

// Load overlays the built-in defaults with values from a YAML file. Zero
// fields in the file keep their defaults.
func Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	override := Sim
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if override.TickRate <= 0 {
		return fmt.Errorf("config %s: tick_rate must be positive, got %d", path, override.TickRate)
	}
	Sim = override
	return nil
}

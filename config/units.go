package config

// Role selects which decision systems drive a unit.
type Role int

const (
	RoleMelee Role = iota
	RoleRanged
	RoleHealer
)

// UnitTypeConfig contains the authored stats for one unit type. The factory
// copies these into components at spawn; systems never read this table.
type UnitTypeConfig struct {
	Name   string
	Role   Role
	Enemy  bool // enemy unit walking the waypoint graph; false = player unit
	Isface bool // art default faces left, facing output is inverted

	// Combat
	HP          float64
	Atk         float64
	Def         float64
	Range       float64
	AtkInterval float64 // seconds between attacks
	Level       int
	Rarity      int

	// Movement (enemies only)
	Speed float64

	// Deployment (player units only)
	Cost int
}

// UnitsConfig maps type names to their configuration.
type UnitsConfig struct {
	Types map[string]UnitTypeConfig
}

// Type returns the configuration for the named unit type.
func (u UnitsConfig) Type(name string) (UnitTypeConfig, bool) {
	t, ok := u.Types[name]
	return t, ok
}

func defaultUnits() UnitsConfig {
	soldierType := UnitTypeConfig{
		Name:        "Soldier",
		Role:        RoleMelee,
		Enemy:       true,
		HP:          120,
		Atk:         20,
		Def:         5,
		Range:       24,
		AtkInterval: 1.5,
		Level:       1,
		Rarity:      1,
		Speed:       40,
	}

	slingerType := UnitTypeConfig{
		Name:        "Slinger",
		Role:        RoleRanged,
		Enemy:       true,
		HP:          80,
		Atk:         15,
		Def:         0,
		Range:       110,
		AtkInterval: 2.0,
		Level:       1,
		Rarity:      2,
		Speed:       35,
	}

	guardType := UnitTypeConfig{
		Name:        "Guard",
		Role:        RoleMelee,
		HP:          200,
		Atk:         25,
		Def:         10,
		Range:       28,
		AtkInterval: 1.2,
		Level:       1,
		Rarity:      2,
		Cost:        12,
	}

	archerType := UnitTypeConfig{
		Name:        "Archer",
		Role:        RoleRanged,
		Isface:      true,
		HP:          110,
		Atk:         30,
		Def:         3,
		Range:       150,
		AtkInterval: 1.8,
		Level:       1,
		Rarity:      3,
		Cost:        15,
	}

	medicType := UnitTypeConfig{
		Name:        "Medic",
		Role:        RoleHealer,
		HP:          100,
		Atk:         18, // heal amount per cast
		Def:         2,
		Range:       130,
		AtkInterval: 2.5,
		Level:       1,
		Rarity:      3,
		Cost:        14,
	}

	return UnitsConfig{
		Types: map[string]UnitTypeConfig{
			"Soldier": soldierType,
			"Slinger": slingerType,
			"Guard":   guardType,
			"Archer":  archerType,
			"Medic":   medicType,
		},
	}
}

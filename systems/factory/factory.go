package factory

import (
	"fmt"

	"github.com/bastiongame/bastion/archetypes"
	"github.com/bastiongame/bastion/components"
	cfg "github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type at pos, walking toward the
// given waypoint.
func CreateEnemy(e *ecs.ECS, typeName string, pos gamemath.Vector, firstWaypointID int) *donburi.Entry {
	unitType := mustType(typeName)
	if !unitType.Enemy {
		panic(fmt.Sprintf("unit type %q is not an enemy type", typeName))
	}

	entry := archetypes.Enemy.Spawn(e, roleTags(unitType)...)
	components.Enemy.SetValue(entry, components.EnemyData{
		TargetWaypointID: firstWaypointID,
		Speed:            unitType.Speed,
	})
	applyCommon(entry, unitType, pos)
	return entry
}

// CreatePlayerUnit spawns a deployed player unit of the named type at pos.
func CreatePlayerUnit(e *ecs.ECS, typeName string, pos gamemath.Vector) *donburi.Entry {
	unitType := mustType(typeName)
	if unitType.Enemy {
		panic(fmt.Sprintf("unit type %q is not a player type", typeName))
	}

	entry := archetypes.PlayerUnit.Spawn(e, roleTags(unitType)...)
	components.Player.SetValue(entry, components.PlayerData{Cost: unitType.Cost})
	applyCommon(entry, unitType, pos)
	return entry
}

func applyCommon(entry *donburi.Entry, unitType cfg.UnitTypeConfig, pos gamemath.Vector) {
	components.Stats.SetValue(entry, components.StatsData{
		HP:          unitType.HP,
		MaxHP:       unitType.HP,
		Atk:         unitType.Atk,
		Def:         unitType.Def,
		Range:       unitType.Range,
		AtkInterval: unitType.AtkInterval,
		Level:       unitType.Level,
		Rarity:      unitType.Rarity,
	})
	components.Position.SetValue(entry, components.PositionData{Point: pos})
	components.ClassName.SetValue(entry, components.ClassNameData{Name: unitType.Name})
}

func roleTags(unitType cfg.UnitTypeConfig) []donburi.IComponentType {
	var extra []donburi.IComponentType
	switch unitType.Role {
	case cfg.RoleMelee:
		extra = append(extra, tags.MeleeUnit)
	case cfg.RoleRanged:
		extra = append(extra, tags.RangedUnit)
	case cfg.RoleHealer:
		extra = append(extra, tags.Healer)
	}
	if unitType.Isface {
		extra = append(extra, tags.FaceLeft)
	}
	return extra
}

func mustType(typeName string) cfg.UnitTypeConfig {
	unitType, ok := cfg.Units.Type(typeName)
	if !ok {
		// Panic to catch configuration errors early.
		panic(fmt.Sprintf("no unit type configuration for %q", typeName))
	}
	return unitType
}

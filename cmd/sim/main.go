// Command sim runs the combat decision core headless at a fixed timestep,
// with scripted stand-ins for the external collaborators (engagement
// detection, movement integration, animation playback).
package main

import (
	"embed"
	"flag"
	"math/rand"
	"os"

	"github.com/bastiongame/bastion/components"
	"github.com/bastiongame/bastion/config"
	"github.com/bastiongame/bastion/events"
	"github.com/bastiongame/bastion/gamemath"
	"github.com/bastiongame/bastion/leveldata"
	"github.com/bastiongame/bastion/scenes"
	"github.com/bastiongame/bastion/systems/factory"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

//go:embed waypoints.yaml
var assets embed.FS

func main() {
	var (
		waypointPath = flag.String("waypoints", "", "waypoint graph YAML (default: built-in demo graph)")
		configPath   = flag.String("config", "", "simulation config YAML override")
		ticks        = flag.Int("ticks", 3600, "ticks to simulate")
		seed         = flag.Int64("seed", 1, "RNG seed for path branch choices")
		spawnEvery   = flag.Int("spawn-every", 240, "ticks between enemy spawns")
	)
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}

	graph, err := loadGraph(*waypointPath)
	if err != nil {
		log.Fatal("load waypoint graph", zap.Error(err))
	}

	playback := newScriptedPlayback(log)
	scene := scenes.NewBattleScene(graph,
		scenes.WithLogger(log),
		scenes.WithRand(rand.New(rand.NewSource(*seed))),
		scenes.WithBlockDetector(detectEngagements),
		scenes.WithMovement(integrateMovement),
		scenes.WithPlayback(playback.Update),
	)
	playback.Subscribe(scene.World())

	lives := 3
	events.EnemyArriveHomeEvent.Subscribe(scene.World(), func(w donburi.World, event events.EnemyArriveHome) {
		lives--
		log.Info("enemy reached the base", zap.Int("lives", lives))
	})

	entryNode, ok := graph.Node(0)
	if !ok {
		log.Fatal("waypoint graph has no entry node with id 0")
	}
	factory.CreatePlayerUnit(scene.ECS(), "Guard", gamemath.Vector{X: 220, Y: 110})
	factory.CreatePlayerUnit(scene.ECS(), "Archer", gamemath.Vector{X: 260, Y: 60})
	factory.CreatePlayerUnit(scene.ECS(), "Medic", gamemath.Vector{X: 240, Y: 160})

	spawned := 0
	for t := 0; t < *ticks && lives > 0; t++ {
		if t%*spawnEvery == 0 {
			typeName := "Soldier"
			if spawned%3 == 2 {
				typeName = "Slinger"
			}
			factory.CreateEnemy(scene.ECS(), typeName, entryNode.Position, entryNode.ID)
			spawned++
		}
		scene.Update()
	}

	remaining := 0
	components.Enemy.Each(scene.World(), func(entry *donburi.Entry) { remaining++ })
	log.Info("simulation finished",
		zap.Int("spawned", spawned),
		zap.Int("remaining_enemies", remaining),
		zap.Int("lives", lives))
}

func loadGraph(path string) (leveldata.WaypointGraph, error) {
	if path == "" {
		return leveldata.LoadWaypoints(assets, "waypoints.yaml")
	}
	return leveldata.LoadWaypoints(os.DirFS("."), path)
}

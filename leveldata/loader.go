package leveldata

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

type waypointFile struct {
	Waypoints []struct {
		ID   int     `yaml:"id"`
		X    float64 `yaml:"x"`
		Y    float64 `yaml:"y"`
		Next []int   `yaml:"next"`
	} `yaml:"waypoints"`
}

// LoadWaypoints parses a waypoint graph from a YAML file and validates it.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadWaypoints(fsys fs.FS, path string) (WaypointGraph, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read waypoints %s: %w", path, err)
	}

	var file waypointFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse waypoints %s: %w", path, err)
	}

	graph := make(WaypointGraph, len(file.Waypoints))
	for _, wp := range file.Waypoints {
		if _, exists := graph[wp.ID]; exists {
			return nil, fmt.Errorf("waypoints %s: duplicate node id %d", path, wp.ID)
		}
		node := WaypointNode{ID: wp.ID}
		node.Position.X = wp.X
		node.Position.Y = wp.Y
		node.NextIDs = append(node.NextIDs, wp.Next...)
		graph[wp.ID] = node
	}

	if err := graph.Validate(); err != nil {
		return nil, fmt.Errorf("waypoints %s: %w", path, err)
	}
	return graph, nil
}

// Validate checks that every outgoing edge points at an existing node.
// A dangling id here would otherwise surface as a fatal error mid-tick.
func (g WaypointGraph) Validate() error {
	for id, node := range g {
		for _, next := range node.NextIDs {
			if _, ok := g[next]; !ok {
				return fmt.Errorf("node %d references unknown node %d", id, next)
			}
		}
	}
	return nil
}

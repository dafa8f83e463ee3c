package leveldata

import (
	"testing"
	"testing/fstest"
)

func graphFS(yaml string) fstest.MapFS {
	return fstest.MapFS{
		"waypoints.yaml": &fstest.MapFile{Data: []byte(yaml)},
	}
}

func TestLoadWaypoints(t *testing.T) {
	fsys := graphFS(`
waypoints:
  - id: 1
    x: 0
    y: 100
    next: [2, 3]
  - id: 2
    x: 200
    y: 50
    next: [4]
  - id: 3
    x: 200
    y: 150
    next: [4]
  - id: 4
    x: 400
    y: 100
`)
	graph, err := LoadWaypoints(fsys, "waypoints.yaml")
	if err != nil {
		t.Fatalf("LoadWaypoints: %v", err)
	}
	if len(graph) != 4 {
		t.Fatalf("loaded %d nodes, want 4", len(graph))
	}

	branch, ok := graph.Node(1)
	if !ok {
		t.Fatal("node 1 missing")
	}
	if branch.Position.Y != 100 || len(branch.NextIDs) != 2 {
		t.Fatalf("node 1 = %+v, want y=100 with 2 outgoing edges", branch)
	}

	home, _ := graph.Node(4)
	if len(home.NextIDs) != 0 {
		t.Fatalf("node 4 has %d outgoing edges, want none (home)", len(home.NextIDs))
	}
}

func TestLoadWaypointsRejectsDuplicateIDs(t *testing.T) {
	fsys := graphFS(`
waypoints:
  - id: 1
    x: 0
    y: 0
  - id: 1
    x: 10
    y: 10
`)
	if _, err := LoadWaypoints(fsys, "waypoints.yaml"); err == nil {
		t.Fatal("duplicate node ids must fail to load")
	}
}

func TestLoadWaypointsRejectsDanglingEdges(t *testing.T) {
	fsys := graphFS(`
waypoints:
  - id: 1
    x: 0
    y: 0
    next: [7]
`)
	if _, err := LoadWaypoints(fsys, "waypoints.yaml"); err == nil {
		t.Fatal("edges to unknown nodes must fail to load")
	}
}

func TestLoadWaypointsMissingFile(t *testing.T) {
	if _, err := LoadWaypoints(fstest.MapFS{}, "waypoints.yaml"); err == nil {
		t.Fatal("missing file must return an error")
	}
}

func TestValidateHandBuiltGraph(t *testing.T) {
	graph := WaypointGraph{
		1: {ID: 1, NextIDs: []int{2}},
	}
	if err := graph.Validate(); err == nil {
		t.Fatal("dangling edge must fail validation")
	}

	graph[2] = WaypointNode{ID: 2}
	if err := graph.Validate(); err != nil {
		t.Fatalf("valid graph failed validation: %v", err)
	}
}

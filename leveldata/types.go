// Package leveldata provides waypoint graph data shared between the
// simulation core and the headless runner. It has no dependencies on
// donburi or ebitengine — pure data only.
package leveldata

import "github.com/bastiongame/bastion/gamemath"

// WaypointNode is one authored node of the directed waypoint graph. Nodes
// are immutable at runtime; enemies walk the graph by id.
type WaypointNode struct {
	ID       int
	Position gamemath.Vector
	// NextIDs lists the outgoing edges. Empty means this node is the home
	// point: an enemy arriving here has reached the base.
	NextIDs []int
}

// WaypointGraph maps node ids to nodes. It is built once before the
// simulation starts and only read afterwards.
type WaypointGraph map[int]WaypointNode

// Node returns the node with the given id.
func (g WaypointGraph) Node(id int) (WaypointNode, bool) {
	n, ok := g[id]
	return n, ok
}

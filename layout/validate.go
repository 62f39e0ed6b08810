package layout

import "github.com/theted/aws-concept-map/core"

// CollidingPair names two nodes whose rectangles intersect.
type CollidingPair struct {
	A, B string
}

// Overlaps reports whether two positioned nodes' bounding rectangles
// intersect, using each node's own width.
func Overlaps(a, b core.Node) bool {
	return a.Bounds().Intersects(b.Bounds())
}

// ValidateAll returns every pair of positioned nodes that collide. A
// correct layout returns an empty slice.
func ValidateAll(nodes []core.Node) []CollidingPair {
	var pairs []CollidingPair
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if Overlaps(nodes[i], nodes[j]) {
				pairs = append(pairs, CollidingPair{A: nodes[i].Key, B: nodes[j].Key})
			}
		}
	}
	return pairs
}

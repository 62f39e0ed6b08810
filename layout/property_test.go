package layout

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/theted/aws-concept-map/core"
)

// TestLayoutInvariants verifies with property-based testing that the
// placement invariants hold for arbitrary inputs, not just hand-picked
// fixtures.
func TestLayoutInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	categories := []string{"compute", "storage", "database", "networking",
		"security", "misc"}

	// Node sets of arbitrary size with arbitrary widths; categories are
	// derived from the widths so their sizes end up skewed.
	genNodes := gen.SliceOf(gen.Float64Range(1, 400)).Map(func(widths []float64) []core.Node {
		nodes := make([]core.Node, len(widths))
		for i, w := range widths {
			nodes[i] = core.Node{
				Key:      fmt.Sprintf("node-%03d", i),
				Category: categories[(i+int(w))%len(categories)],
				Width:    w,
			}
		}
		return nodes
	})

	properties.Property("no two node rectangles intersect", prop.ForAll(
		func(nodes []core.Node) bool {
			result := Compute(nodes, DefaultConfig())
			return len(ValidateAll(result.Nodes)) == 0
		},
		genNodes,
	))

	properties.Property("layout is deterministic", prop.ForAll(
		func(nodes []core.Node) bool {
			a := Compute(nodes, DefaultConfig())
			b := Compute(nodes, DefaultConfig())
			if len(a.Nodes) != len(b.Nodes) {
				return false
			}
			for i := range a.Nodes {
				if a.Nodes[i] != b.Nodes[i] {
					return false
				}
			}
			return true
		},
		genNodes,
	))

	properties.Property("every node lies within the global bounds", prop.ForAll(
		func(nodes []core.Node) bool {
			result := Compute(nodes, DefaultConfig())
			for _, n := range result.Nodes {
				b := n.Bounds()
				if b.X < result.Bounds.X-1e-9 || b.Y < result.Bounds.Y-1e-9 ||
					b.X+b.Width > result.Bounds.X+result.Bounds.Width+1e-9 ||
					b.Y+b.Height > result.Bounds.Y+result.Bounds.Height+1e-9 {
					return false
				}
			}
			return true
		},
		genNodes,
	))

	properties.TestingRun(t)
}

package layout

import (
	"fmt"
	"testing"

	"github.com/theted/aws-concept-map/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CategoryOrder = []string{"compute", "storage", "database"}
	return cfg
}

func TestComputeBasics(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		result := Compute(nil, testConfig())
		if len(result.Nodes) != 0 || len(result.Groups) != 0 {
			t.Fatalf("expected empty result, got %d nodes, %d groups",
				len(result.Nodes), len(result.Groups))
		}
		if result.Bounds.Width != 0 || result.Bounds.Height != 0 {
			t.Errorf("expected degenerate bounds, got %v", result.Bounds)
		}
	})

	t.Run("single node", func(t *testing.T) {
		nodes := []core.Node{{Key: "ec2", Category: "compute", Width: 10}}
		result := Compute(nodes, testConfig())

		if len(result.Nodes) != 1 {
			t.Fatalf("expected 1 node, got %d", len(result.Nodes))
		}
		n := result.Nodes[0]
		if n.Height != testConfig().NodeHeight {
			t.Errorf("node height not assigned: %v", n.Height)
		}
		if len(result.Groups) != 1 || result.Groups[0].Category != "compute" {
			t.Fatalf("unexpected groups: %+v", result.Groups)
		}
		if result.Bounds != n.Bounds() {
			t.Errorf("bounds %v should equal single node bounds %v",
				result.Bounds, n.Bounds())
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		nodes := []core.Node{
			{Key: "a", Category: "compute", Width: 10},
			{Key: "b", Category: "compute", Width: 12},
		}
		Compute(nodes, testConfig())
		for _, n := range nodes {
			if n.X != 0 || n.Y != 0 || n.Height != 0 {
				t.Errorf("input node %q mutated: %+v", n.Key, n)
			}
		}
	})
}

// TestComputeExampleFromDataset mirrors the canonical worked example: two
// compute nodes of very different widths plus a storage node.
func TestComputeExampleFromDataset(t *testing.T) {
	nodes := []core.Node{
		{Key: "a", Category: "compute", Width: 80},
		{Key: "b", Category: "compute", Width: 200},
		{Key: "c", Category: "storage", Width: 80},
	}
	result := Compute(nodes, testConfig())

	if pairs := ValidateAll(result.Nodes); len(pairs) != 0 {
		t.Fatalf("layout has colliding pairs: %v", pairs)
	}

	var a, b, c core.Node
	for _, n := range result.Nodes {
		switch n.Key {
		case "a":
			a = n
		case "b":
			b = n
		case "c":
			c = n
		}
	}
	if Overlaps(a, b) {
		t.Error("unequal-width compute nodes overlap")
	}

	// The storage node must land in a distinct category region.
	var computeGroup, storageGroup core.CategoryGroup
	for _, g := range result.Groups {
		switch g.Category {
		case "compute":
			computeGroup = g
		case "storage":
			storageGroup = g
		}
	}
	if computeGroup.Bounds.Intersects(storageGroup.Bounds) {
		t.Errorf("category regions overlap: %v vs %v",
			computeGroup.Bounds, storageGroup.Bounds)
	}
	if !storageGroup.Bounds.Contains(c.Center()) {
		t.Errorf("storage node %v outside its group %v", c.Center(), storageGroup.Bounds)
	}
}

func TestComputeDeterminism(t *testing.T) {
	nodes := generateNodes(37)
	first := Compute(nodes, testConfig())
	second := Compute(nodes, testConfig())

	if len(first.Nodes) != len(second.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(first.Nodes), len(second.Nodes))
	}
	for i := range first.Nodes {
		if first.Nodes[i] != second.Nodes[i] {
			t.Errorf("node %d differs between runs: %+v vs %+v",
				i, first.Nodes[i], second.Nodes[i])
		}
	}
	if first.Bounds != second.Bounds {
		t.Errorf("bounds differ: %v vs %v", first.Bounds, second.Bounds)
	}
}

func TestComputeCanonicalOrder(t *testing.T) {
	nodes := []core.Node{
		{Key: "zeta", Category: "storage", Width: 10},
		{Key: "alpha", Category: "storage", Width: 10},
		{Key: "mid", Category: "compute", Width: 10},
		{Key: "extra", Category: "unlisted", Width: 10},
	}
	result := Compute(nodes, testConfig())

	want := []string{"mid", "alpha", "zeta", "extra"}
	for i, n := range result.Nodes {
		if n.Key != want[i] {
			t.Fatalf("canonical order mismatch at %d: got %q, want %q", i, n.Key, want[i])
		}
	}
}

// TestComputeOrdersByDisplayName pins the ordering key: when ids and names
// sort differently, the display name wins.
func TestComputeOrdersByDisplayName(t *testing.T) {
	nodes := []core.Node{
		{Key: "a2", Name: "Beta", Category: "compute", Width: 10},
		{Key: "z1", Name: "Alpha", Category: "compute", Width: 10},
	}
	result := Compute(nodes, testConfig())

	want := []string{"z1", "a2"}
	for i, n := range result.Nodes {
		if n.Key != want[i] {
			t.Fatalf("order mismatch at %d: got %q, want %q", i, n.Key, want[i])
		}
	}
}

func TestComputeSkewedCategories(t *testing.T) {
	// One huge category next to singletons, plus one very wide node.
	var nodes []core.Node
	for i := 0; i < 25; i++ {
		nodes = append(nodes, core.Node{
			Key:      fmt.Sprintf("compute-%02d", i),
			Category: "compute",
			Width:    10 + float64(i%7)*3,
		})
	}
	nodes = append(nodes,
		core.Node{Key: "wide", Category: "storage", Width: 300},
		core.Node{Key: "tiny", Category: "storage", Width: 4},
		core.Node{Key: "solo", Category: "database", Width: 12},
	)

	result := Compute(nodes, testConfig())
	if pairs := ValidateAll(result.Nodes); len(pairs) != 0 {
		t.Fatalf("skewed layout has colliding pairs: %v", pairs)
	}

	// Every node must sit inside its own group's bounds.
	groups := make(map[string]core.CategoryGroup)
	for _, g := range result.Groups {
		groups[g.Category] = g
	}
	for _, n := range result.Nodes {
		if !groups[n.Category].Bounds.Intersects(n.Bounds()) {
			t.Errorf("node %q outside group %q bounds", n.Key, n.Category)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := core.Node{Key: "a", X: 0, Y: 0, Width: 10, Height: 4}
	b := core.Node{Key: "b", X: 8, Y: 0, Width: 10, Height: 4}
	c := core.Node{Key: "c", X: 100, Y: 100, Width: 10, Height: 4}

	if !Overlaps(a, b) {
		t.Error("expected a and b to overlap")
	}
	if Overlaps(a, c) {
		t.Error("expected a and c to be disjoint")
	}
	pairs := ValidateAll([]core.Node{a, b, c})
	if len(pairs) != 1 || pairs[0].A != "a" || pairs[0].B != "b" {
		t.Errorf("ValidateAll = %v, want single (a,b) pair", pairs)
	}
}

func generateNodes(count int) []core.Node {
	categories := []string{"compute", "storage", "database", "networking"}
	nodes := make([]core.Node, 0, count)
	for i := 0; i < count; i++ {
		nodes = append(nodes, core.Node{
			Key:      fmt.Sprintf("svc-%02d", i),
			Category: categories[i%len(categories)],
			Width:    8 + float64((i*13)%40),
		})
	}
	return nodes
}

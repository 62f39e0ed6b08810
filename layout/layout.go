// Package layout provides the deterministic placement algorithm for the
// concept map: nodes arranged in near-square grids per category, and
// categories arranged in a configurable grid of their own.
package layout

import (
	"math"
	"sort"

	"github.com/theted/aws-concept-map/core"
)

// Config holds the layout tuning parameters. CategoryOrder fixes the
// placement priority of categories; categories not listed are placed after
// the listed ones, alphabetically.
type Config struct {
	NodeHeight      float64
	NodePadding     float64
	CategoryPadding float64
	CategoryColumns int
	CategoryOrder   []string
}

// DefaultConfig returns layout settings tuned for terminal cell units.
func DefaultConfig() Config {
	return Config{
		NodeHeight:      3,
		NodePadding:     4,
		CategoryPadding: 6,
		CategoryColumns: 3,
		CategoryOrder: []string{
			"compute", "storage", "database", "networking",
			"integration", "security", "observability",
		},
	}
}

// Result is the output of a layout pass.
type Result struct {
	// Nodes holds positioned copies of the input, in canonical order:
	// category priority first, then display name alphabetically. This
	// order doubles as the hit-test and tab-cycling order.
	Nodes  []core.Node
	Groups []core.CategoryGroup
	Bounds core.Rect
}

// Compute positions every node without overlap. It is a pure function:
// identical input produces identical output, and the input slice is never
// modified.
func Compute(nodes []core.Node, cfg Config) Result {
	if len(nodes) == 0 {
		return Result{}
	}
	if cfg.CategoryColumns < 1 {
		cfg.CategoryColumns = 1
	}

	// Group nodes by category, ordered by display name within each group.
	// Keys stand in for missing names and break ties.
	byCategory := make(map[string][]core.Node)
	for _, n := range nodes {
		byCategory[n.Category] = append(byCategory[n.Category], n)
	}
	for _, members := range byCategory {
		sort.Slice(members, func(i, j int) bool {
			a, b := sortLabel(members[i]), sortLabel(members[j])
			if a != b {
				return a < b
			}
			return members[i].Key < members[j].Key
		})
	}
	categories := orderCategories(byCategory, cfg.CategoryOrder)

	// Size each category's sub-grid before placing anything: cell width is
	// driven by the widest member so every cell in the category clears its
	// widest label.
	type grid struct {
		category      string
		cols, rows    int
		cellW, cellH  float64
		maxW          float64
		width, height float64
	}
	grids := make([]grid, 0, len(categories))
	for _, cat := range categories {
		members := byCategory[cat]
		n := len(members)
		cols := int(math.Ceil(math.Sqrt(float64(n))))
		rows := (n + cols - 1) / cols
		maxW := 0.0
		for _, m := range members {
			if m.Width > maxW {
				maxW = m.Width
			}
		}
		cellW := maxW + cfg.NodePadding
		cellH := cfg.NodeHeight + cfg.NodePadding
		grids = append(grids, grid{
			category: cat,
			cols:     cols, rows: rows,
			cellW: cellW, cellH: cellH,
			maxW:   maxW,
			width:  float64(cols) * cellW,
			height: float64(rows) * cellH,
		})
	}

	// Place categories in rows of cfg.CategoryColumns; each row is as tall
	// as its tallest category.
	result := Result{
		Nodes:  make([]core.Node, 0, len(nodes)),
		Groups: make([]core.CategoryGroup, 0, len(categories)),
	}
	x, y := 0.0, 0.0
	rowHeight := 0.0
	for i, g := range grids {
		if i > 0 && i%cfg.CategoryColumns == 0 {
			x = 0
			y += rowHeight + cfg.CategoryPadding
			rowHeight = 0
		}

		members := byCategory[g.category]
		group := core.CategoryGroup{
			Category: g.category,
			Keys:     make([]string, 0, len(members)),
		}
		for j, m := range members {
			col := j % g.cols
			row := j / g.cols
			m.X = x + float64(col)*g.cellW + g.maxW/2
			m.Y = y + float64(row)*g.cellH + cfg.NodeHeight/2
			m.Height = cfg.NodeHeight
			result.Nodes = append(result.Nodes, m)
			group.Keys = append(group.Keys, m.Key)
			group.Bounds = union(group.Bounds, m.Bounds(), j == 0)
		}
		result.Groups = append(result.Groups, group)

		x += g.width + cfg.CategoryPadding
		if g.height > rowHeight {
			rowHeight = g.height
		}
	}

	for i, n := range result.Nodes {
		result.Bounds = union(result.Bounds, n.Bounds(), i == 0)
	}
	return result
}

// sortLabel is the in-category ordering key: the display name when set,
// the node key otherwise.
func sortLabel(n core.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.Key
}

// orderCategories returns category names in priority order, with unlisted
// categories appended alphabetically.
func orderCategories(byCategory map[string][]core.Node, priority []string) []string {
	ordered := make([]string, 0, len(byCategory))
	seen := make(map[string]bool)
	for _, cat := range priority {
		if _, ok := byCategory[cat]; ok && !seen[cat] {
			ordered = append(ordered, cat)
			seen[cat] = true
		}
	}
	rest := make([]string, 0)
	for cat := range byCategory {
		if !seen[cat] {
			rest = append(rest, cat)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func union(acc, r core.Rect, first bool) core.Rect {
	if first {
		return r
	}
	minX := math.Min(acc.X, r.X)
	minY := math.Min(acc.Y, r.Y)
	maxX := math.Max(acc.X+acc.Width, r.X+r.Width)
	maxY := math.Max(acc.Y+acc.Height, r.Y+r.Height)
	return core.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

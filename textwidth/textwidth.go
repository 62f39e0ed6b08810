// Package textwidth precomputes display widths for node labels. Widths are
// measured in terminal cells, which is also the world unit at scale 1.
package textwidth

import "github.com/mattn/go-runewidth"

const (
	// horizontal padding inside a node box, per side, plus the border cells
	boxPadding = 2
	// minimum node width so very short labels still read as boxes
	minWidth = 10
)

// Measure returns the display width map for the given labels, keyed by
// node key. East-Asian wide runes count as two cells.
func Measure(labels map[string]string) map[string]float64 {
	widths := make(map[string]float64, len(labels))
	for key, label := range labels {
		widths[key] = Width(label)
	}
	return widths
}

// Width returns the display width of a single label including box padding.
func Width(label string) float64 {
	w := runewidth.StringWidth(label) + 2*boxPadding
	if w < minWidth {
		w = minWidth
	}
	return float64(w)
}

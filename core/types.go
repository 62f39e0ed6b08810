// Package core contains the fundamental types shared by the concept map
// layout and viewport engines.
package core

import "strings"

// Point represents a 2D coordinate, in either world or screen space.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned rectangle by its top-left corner and size.
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Expand grows the rectangle by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + 2*pad,
		Height: r.Height + 2*pad,
	}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Direction represents a cardinal navigation direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Node represents a labeled service box in the map.
type Node struct {
	Key      string // unique service id
	Name     string // display label
	Category string
	Width    float64 // display width, precomputed from the label
	Height   float64 // set by the layout engine
	X, Y     float64 // center position, set by the layout engine
}

// Center returns the center point of the node.
func (n Node) Center() Point {
	return Point{X: n.X, Y: n.Y}
}

// Bounds returns the node's axis-aligned bounding rectangle.
func (n Node) Bounds() Rect {
	return Rect{
		X:      n.X - n.Width/2,
		Y:      n.Y - n.Height/2,
		Width:  n.Width,
		Height: n.Height,
	}
}

// Contains checks if a world-space point is inside the node.
func (n Node) Contains(p Point) bool {
	return n.Bounds().Contains(p)
}

// Connection represents an undirected link between two nodes.
type Connection struct {
	From string
	To   string
}

// Key returns an order-independent identifier for the connection, so
// {a,b} and {b,a} map to the same animation state.
func (c Connection) Key() string {
	if strings.Compare(c.From, c.To) <= 0 {
		return c.From + "|" + c.To
	}
	return c.To + "|" + c.From
}

// Touches reports whether the connection has the given node as an endpoint.
func (c Connection) Touches(key string) bool {
	return c.From == key || c.To == key
}

// CategoryGroup is the placed bounding region for one category of nodes.
type CategoryGroup struct {
	Category string
	Keys     []string // member node keys in layout order
	Bounds   Rect
}

// CanvasState is the current view transform: world coordinates are scaled
// then translated to land in screen space.
type CanvasState struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

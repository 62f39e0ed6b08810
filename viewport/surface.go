package viewport

import "github.com/theted/aws-concept-map/core"

// Surface is the drawing target the engine renders into. Coordinates
// passed to draw calls are screen-space; the engine has already applied
// the view transform and culled off-screen geometry.
type Surface interface {
	// Size returns the current drawable area in screen units.
	Size() (width, height int)

	// Clear erases the previous frame.
	Clear()

	// DrawGroup draws a category region with its heading.
	DrawGroup(g core.CategoryGroup, title string, screen core.Rect, opacity float64)

	// DrawConnection draws a link between two node centers.
	DrawConnection(from, to core.Point, category string, opacity float64, highlighted bool)

	// DrawNode draws a node box at the given screen rectangle.
	DrawNode(n core.Node, screen core.Rect, selected bool, opacity float64)

	// Flush presents the completed frame.
	Flush()
}

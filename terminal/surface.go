package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/theted/aws-concept-map/core"
)

// background color every opacity blend decays toward
const backgroundHex = "#14141a"

// fallback for categories without declared colors
const defaultNodeHex = "#6f9fc8"

// cellSurface renders engine draw calls onto a tcell screen. One terminal
// cell is one screen unit.
type cellSurface struct {
	screen     tcell.Screen
	background colorful.Color
	palette    map[string]colorful.Color
	status     string
}

func newCellSurface(screen tcell.Screen, colors map[string]string) *cellSurface {
	bg, _ := colorful.Hex(backgroundHex)
	s := &cellSurface{
		screen:     screen,
		background: bg,
		palette:    make(map[string]colorful.Color, len(colors)),
	}
	for category, hex := range colors {
		if c, err := colorful.Hex(hex); err == nil {
			s.palette[category] = c
		}
	}
	return s
}

// SetStatus sets the one-line bar drawn at the bottom of every frame.
func (s *cellSurface) SetStatus(line string) {
	s.status = line
}

func (s *cellSurface) Size() (int, int) {
	return s.screen.Size()
}

func (s *cellSurface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.tcellColor(s.background)))
}

func (s *cellSurface) DrawGroup(g core.CategoryGroup, title string, screen core.Rect, opacity float64) {
	if title == "" {
		title = g.Category
	}
	style := tcell.StyleDefault.
		Background(s.tcellColor(s.background)).
		Foreground(s.tcellColor(s.blend(s.categoryColor(g.Category), opacity*0.7)))
	s.drawText(int(math.Round(screen.X)), int(math.Round(screen.Y))-2, title, style)
}

func (s *cellSurface) DrawConnection(from, to core.Point, category string, opacity float64, highlighted bool) {
	color := s.blend(s.categoryColor(category), opacity)
	style := tcell.StyleDefault.
		Background(s.tcellColor(s.background)).
		Foreground(s.tcellColor(color))
	if highlighted {
		style = style.Bold(true)
	}

	// Walk the segment one cell at a time. Connections are few and short,
	// so a plain parametric step beats a line rasterizer here.
	dx := to.X - from.X
	dy := to.Y - from.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		return
	}
	ch := '·'
	if highlighted {
		ch = '•'
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(from.X + dx*t))
		y := int(math.Round(from.Y + dy*t))
		s.screen.SetContent(x, y, ch, nil, style)
	}
}

func (s *cellSurface) DrawNode(n core.Node, screen core.Rect, selected bool, opacity float64) {
	x := int(math.Round(screen.X))
	y := int(math.Round(screen.Y))
	w := int(math.Round(screen.Width))
	h := int(math.Round(screen.Height))

	color := s.categoryColor(n.Category)
	border := tcell.StyleDefault.
		Background(s.tcellColor(s.background)).
		Foreground(s.tcellColor(s.blend(color, opacity)))
	label := border
	if selected {
		border = border.Bold(true)
		label = label.Bold(true).Underline(true)
	}

	// Too small for a box at this zoom level: render a marker glyph so the
	// node stays visible and clickable.
	if w < 4 || h < 3 {
		s.screen.SetContent(x+w/2, y+h/2, '▪', nil, border)
		return
	}

	for col := x + 1; col < x+w-1; col++ {
		s.screen.SetContent(col, y, tcell.RuneHLine, nil, border)
		s.screen.SetContent(col, y+h-1, tcell.RuneHLine, nil, border)
	}
	for row := y + 1; row < y+h-1; row++ {
		s.screen.SetContent(x, row, tcell.RuneVLine, nil, border)
		s.screen.SetContent(x+w-1, row, tcell.RuneVLine, nil, border)
	}
	s.screen.SetContent(x, y, tcell.RuneULCorner, nil, border)
	s.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, border)
	s.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, border)
	s.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, border)

	name := runewidth.Truncate(n.Name, w-2, "…")
	pad := (w - 2 - runewidth.StringWidth(name)) / 2
	s.drawText(x+1+pad, y+h/2, name, label)
}

func (s *cellSurface) Flush() {
	if s.status != "" {
		w, h := s.screen.Size()
		style := tcell.StyleDefault.
			Background(s.tcellColor(s.background)).
			Foreground(tcell.ColorSilver)
		s.drawText(0, h-1, runewidth.Truncate(s.status, w, "…"), style)
	}
	s.screen.Show()
}

func (s *cellSurface) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func (s *cellSurface) categoryColor(category string) colorful.Color {
	if c, ok := s.palette[category]; ok {
		return c
	}
	c, _ := colorful.Hex(defaultNodeHex)
	return c
}

// blend realizes opacity on a terminal by mixing the color toward the
// background in RGB space.
func (s *cellSurface) blend(c colorful.Color, opacity float64) colorful.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return s.background.BlendRgb(c, opacity)
}

func (s *cellSurface) tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

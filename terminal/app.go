// Package terminal runs the interactive viewer: it owns the tcell screen,
// translates terminal input events into engine gestures, and drives the
// frame loop that powers every animation.
package terminal

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/theted/aws-concept-map/animation"
	"github.com/theted/aws-concept-map/catalog"
	"github.com/theted/aws-concept-map/config"
	"github.com/theted/aws-concept-map/core"
	"github.com/theted/aws-concept-map/textwidth"
	"github.com/theted/aws-concept-map/viewport"
)

const frameInterval = 16 * time.Millisecond

const helpLine = "drag: pan · wheel/+/-: zoom · arrows: navigate · tab: cycle · 0: fit · r: reset · esc: deselect · q: quit"

// App wires the catalog, engine, and tcell screen into a runnable viewer.
type App struct {
	screen  tcell.Screen
	surface *cellSurface
	engine  *viewport.Engine
	runner  *animation.Runner
	logger  *log.Logger

	descriptions map[string]string
	showHelp     bool
	dragging     bool
}

// New builds the viewer. It fails fast when a terminal screen cannot be
// obtained or initialized; nothing is partially constructed.
func New(cat *catalog.Catalog, cfg config.Config, logger *log.Logger) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: no drawing context: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: initializing screen: %w", err)
	}
	screen.EnableMouse()

	surface := newCellSurface(screen, cat.CategoryColors())
	widths := textwidth.Measure(cat.Labels())
	runner := animation.NewRunner()

	layoutCfg := cfg.LayoutConfig()
	if len(layoutCfg.CategoryOrder) == 0 {
		layoutCfg.CategoryOrder = cat.CategoryOrder()
	}

	engine, err := viewport.New(surface, runner, cat.Nodes(widths),
		cat.ResolvedLinks(), widths, cat.CategoryTitles(), viewport.Options{
			Layout: layoutCfg,
			Tuning: cfg.Tuning(),
		})
	if err != nil {
		screen.Fini()
		return nil, err
	}

	descriptions := make(map[string]string, len(cat.Services))
	for _, s := range cat.Services {
		descriptions[s.ID] = s.Description
	}

	app := &App{
		screen:       screen,
		surface:      surface,
		engine:       engine,
		runner:       runner,
		logger:       logger,
		descriptions: descriptions,
	}
	engine.SetOnSelect(app.onSelect)
	app.updateStatus()

	logger.Debug("viewer ready",
		"services", len(engine.Nodes()),
		"connections", len(cat.ResolvedLinks()))
	return app, nil
}

// Run drives the event and frame loop until the user quits. All engine
// state is mutated from this goroutine only.
func (a *App) Run() error {
	defer a.screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go a.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handleEvent(ev) {
				close(quit)
				return nil
			}
			a.draw()
		case now := <-ticker.C:
			if a.runner.Active() {
				a.runner.Tick(now)
				a.draw()
			}
		}
	}
}

// handleEvent dispatches one tcell event; returning false quits.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		// Resizes redraw immediately, no animation.
		a.screen.Sync()
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.engine.Select("")
	case tcell.KeyUp:
		a.engine.NavigateDirection(core.DirUp)
	case tcell.KeyDown:
		a.engine.NavigateDirection(core.DirDown)
	case tcell.KeyLeft:
		a.engine.NavigateDirection(core.DirLeft)
	case tcell.KeyRight:
		a.engine.NavigateDirection(core.DirRight)
	case tcell.KeyTab:
		a.engine.SelectNext()
	case tcell.KeyBacktab:
		a.engine.SelectPrevious()
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case '+', '=':
			a.engine.ZoomAtCenter(true)
		case '-', '_':
			a.engine.ZoomAtCenter(false)
		case '0':
			a.engine.CenterOnContent(true)
		case 'r':
			a.engine.ResetView()
		case '?':
			a.showHelp = !a.showHelp
			a.updateStatus()
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := core.Point{X: float64(x), Y: float64(y)}

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		a.engine.Wheel(p, true)
	case ev.Buttons()&tcell.WheelDown != 0:
		a.engine.Wheel(p, false)
	case ev.Buttons()&tcell.Button1 != 0:
		if a.dragging {
			a.engine.PointerMove(p)
		} else {
			a.dragging = true
			a.engine.PointerDown(p)
		}
	default:
		if a.dragging {
			a.dragging = false
			a.engine.PointerUp(p)
		}
	}
}

func (a *App) onSelect(key string, node core.Node) {
	if key == "" {
		a.logger.Debug("deselected")
	} else {
		a.logger.Debug("selected", "service", key)
	}
	a.updateStatusFor(key, node)
}

func (a *App) updateStatus() {
	key := a.engine.SelectedKey()
	var node core.Node
	for _, n := range a.engine.Nodes() {
		if n.Key == key {
			node = n
			break
		}
	}
	a.updateStatusFor(key, node)
}

func (a *App) updateStatusFor(key string, node core.Node) {
	switch {
	case a.showHelp:
		a.surface.SetStatus(helpLine)
	case key != "":
		a.surface.SetStatus(fmt.Sprintf("%s · %s", node.Name, a.descriptions[key]))
	default:
		a.surface.SetStatus("? for help")
	}
}

func (a *App) draw() {
	a.engine.Render()
}

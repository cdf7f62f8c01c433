// Package ui provides a read-only terminal viewer for generated maps using
// tcell. It pans and quits; editing and live regeneration belong to the
// external editor.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/tunnelgen/internal/world"
)

// Viewer displays a grid in the terminal with arrow-key panning.
type Viewer struct {
	screen tcell.Screen
	grid   *world.Grid
	status string
	camX   int
	camY   int
}

// NewViewer creates a viewer for the given grid. The status line is shown
// at the bottom of the screen.
func NewViewer(grid *world.Grid, status string) (*Viewer, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()

	return &Viewer{screen: s, grid: grid, status: status}, nil
}

// Run drives the viewer until the user quits. It restores the terminal on
// return.
func (v *Viewer) Run() error {
	defer v.screen.Fini()

	for {
		v.draw()

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				v.pan(0, -4)
			case tcell.KeyDown:
				v.pan(0, 4)
			case tcell.KeyLeft:
				v.pan(-4, 0)
			case tcell.KeyRight:
				v.pan(4, 0)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return nil
				case 'h':
					v.pan(-4, 0)
				case 'j':
					v.pan(0, 4)
				case 'k':
					v.pan(0, -4)
				case 'l':
					v.pan(4, 0)
				}
			}
		}
	}
}

// pan moves the camera, clamped so the grid never scrolls fully off screen.
func (v *Viewer) pan(dx, dy int) {
	w, h := v.screen.Size()
	v.camX = min(max(v.camX+dx, 0), max(v.grid.Width-w, 0))
	v.camY = min(max(v.camY+dy, 0), max(v.grid.Height-(h-1), 0))
}

func (v *Viewer) draw() {
	v.screen.Clear()

	w, h := v.screen.Size()
	for sy := 0; sy < h-1; sy++ {
		for sx := 0; sx < w; sx++ {
			p := world.Position{X: v.camX + sx, Y: v.camY + sy}
			if !v.grid.Contains(p) {
				continue
			}
			tile := v.grid.At(p)
			v.screen.SetContent(sx, sy, tile.Rune(), nil, tileStyle(tile))
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, ch := range v.status + "  [arrows pan, q quits]" {
		v.screen.SetContent(i, h-1, ch, nil, statusStyle)
	}

	v.screen.Show()
}

// tileStyle returns the appropriate style for a tile type.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileSolid:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileHazard:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	case world.TilePlatform:
		return tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	case world.TileStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case world.TileFinish:
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	default:
		return tcell.StyleDefault
	}
}

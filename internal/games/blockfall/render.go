package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

const (
	cellW  = 2  // screen columns per field cell
	panelW = 14 // side panel width
	gap    = 2  // columns between field and panel
)

var kindColors = map[engine.Kind]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindO: core.ColorYellow,
	engine.KindT: core.ColorMagenta,
	engine.KindS: core.ColorGreen,
	engine.KindZ: core.ColorRed,
	engine.KindJ: core.ColorBlue,
	engine.KindL: core.ColorOrange,
}

// layout is where the field and panel go on the current screen.
type layout struct {
	field core.Rect // including the border
	panel core.Rect
}

func (g *Game) layout(dst *core.Screen) (layout, bool) {
	f := g.session.Field()
	fw := f.Width()*cellW + 2
	fh := f.Height() + 2
	total := fw + gap + panelW
	if dst.Width() < total || dst.Height() < fh {
		return layout{}, false
	}
	x := (dst.Width() - total) / 2
	y := (dst.Height() - fh) / 2
	return layout{
		field: core.NewRect(x, y, fw, fh),
		panel: core.NewRect(x+fw+gap, y, panelW, fh),
	}, true
}

// Render draws the playfield, the side panel and any state overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	l, ok := g.layout(dst)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, "Resize to continue")
		return
	}

	dst.DrawBox(l.field, core.ColorGray)
	g.renderField(dst, l.field)
	g.renderPanel(dst, l.panel)

	switch g.session.State() {
	case engine.StateHome:
		renderOverlay(dst, l.field, core.ColorBrightWhite,
			"BLOCKFALL",
			"",
			fmt.Sprintf("Level %d", g.session.StartLevel()),
			"",
			"Left/Right level",
			"Enter to start",
		)
	case engine.StatePaused:
		renderOverlay(dst, l.field, core.ColorYellow,
			"PAUSED",
			"",
			"P to resume",
			"Enter to quit run",
		)
	case engine.StateGameOver:
		renderOverlay(dst, l.field, core.ColorRed,
			"GAME OVER",
			"",
			fmt.Sprintf("Score %d", g.session.Score()),
			"",
			"Enter to continue",
		)
	}
}

// cellPos converts a field cell to the screen position of its left column.
func cellPos(field core.Rect, height int, c engine.Cell) (int, int) {
	return field.X + 1 + c.Col*cellW, field.Y + 1 + (height - 1 - c.Row)
}

func (g *Game) renderField(dst *core.Screen, field core.Rect) {
	f := g.session.Field()
	h := f.Height()

	for row := 0; row < h; row++ {
		for col := 0; col < f.Width(); col++ {
			c := engine.C(col, row)
			x, y := cellPos(field, h, c)
			if occ := f.At(c); !occ.Empty() {
				drawBlock(dst, x, y, '█', kindColors[occ.Kind])
				continue
			}
			dst.SetColored(x, y, ' ', core.ColorDefault)
			dst.SetColored(x+1, y, '·', core.ColorGray)
		}
	}

	p, ok := g.session.Piece()
	if !ok {
		return
	}

	// Cells above the field are not drawn; they would land on the border.
	inner := core.NewRect(field.X+1, field.Y+1, field.W-2, field.H-2)
	ghost := p
	ghost.HardDrop(f)
	for _, c := range ghost.Cells() {
		if x, y := cellPos(field, h, c); inner.Contains(x, y) {
			drawBlock(dst, x, y, '░', core.ColorGray)
		}
	}
	for _, c := range p.Cells() {
		if x, y := cellPos(field, h, c); inner.Contains(x, y) {
			drawBlock(dst, x, y, '█', kindColors[p.Kind()])
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x, y := panel.X, panel.Y

	dst.DrawTextColored(x, y, "NEXT", core.ColorGray)
	if next := g.session.Next(); next != engine.KindNone {
		shape := engine.MustShape(next)
		for _, o := range shape.Offsets(0) {
			drawBlock(dst, x+(o.X+1)*cellW, y+2-o.Y, '█', kindColors[next])
		}
	}

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.session.Score()},
		{"LINES", g.session.Lines()},
		{"LEVEL", g.session.Level()},
	}
	for i, s := range stats {
		row := y + 5 + i*3
		dst.DrawTextColored(x, row, s.label, core.ColorGray)
		dst.DrawTextColored(x, row+1, fmt.Sprintf("%d", s.value), core.ColorBrightWhite)
	}
}

// renderOverlay draws a framed message box centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := area.Centered(core.Clamp(w+4, 4, area.W), len(lines)+2)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCenteredIn(box, box.Y+1+i, l, c)
	}
}

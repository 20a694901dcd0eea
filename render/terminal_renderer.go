package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Field origin inside the border
const (
	fieldX = 1
	fieldY = 1
)

// TerminalRenderer draws the plane, chain and status line onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// RenderFrame draws the current state of ctx and shows it
func (r *TerminalRenderer) RenderFrame(ctx *engine.GameContext) {
	r.Draw(ctx.Snapshot())
	r.screen.Show()
}

// Draw renders snap into the screen buffer without showing it
func (r *TerminalRenderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	half := snap.HalfSize

	r.drawBorder(half, defaultStyle)

	treatStyle := defaultStyle.Foreground(RgbTreat)
	for _, t := range snap.Treats {
		col, row := ProjectCell(t.X, t.Y, half)
		r.setCell(col, row, parameter.GlyphTreat, treatStyle)
	}

	// Head drawn last so it stays visible while segments overlap mid-interpolation
	for _, role := range [...]string{engine.RoleBody, engine.RoleTail, engine.RoleHead} {
		glyph, style := roleGlyph(role, defaultStyle)
		for _, seg := range snap.Segments {
			if seg.Role != role {
				continue
			}
			col, row := Project(core.Vec3{X: seg.RX, Y: parameter.RenderLevel, Z: seg.RZ}, half)
			r.setCell(col, row, glyph, style)
		}
	}

	r.drawStatusBar(snap, defaultStyle)
}

// Project maps a visual position to field-relative (col, row)
// Grid X is mirrored so +X (left key) moves left on screen; each cell is CellColumns wide
func Project(v core.Vec3, half int) (col, row int) {
	x := int(math.Round(v.X))
	z := int(math.Round(v.Z))
	return ProjectCell(x, z, half)
}

// ProjectCell maps a grid cell to field-relative (col, row)
func ProjectCell(x, y, half int) (col, row int) {
	return (half - x) * parameter.CellColumns, half - y
}

// FieldSize returns the screen size needed for a plane of the given half size
func FieldSize(half int) (width, height int) {
	cells := 2*half + 1
	return cells*parameter.CellColumns + 2, cells + 2 + parameter.StatusLines
}

func (r *TerminalRenderer) setCell(col, row int, glyph rune, style tcell.Style) {
	if col < 0 || row < 0 {
		return
	}
	r.screen.SetContent(fieldX+col, fieldY+row, glyph, nil, style)
}

func (r *TerminalRenderer) drawBorder(half int, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(RgbBorder)
	width, height := FieldSize(half)
	height -= parameter.StatusLines

	for x := 0; x < width; x++ {
		r.screen.SetContent(x, 0, parameter.GlyphBorder, nil, style)
		r.screen.SetContent(x, height-1, parameter.GlyphBorder, nil, style)
	}
	for y := 1; y < height-1; y++ {
		r.screen.SetContent(0, y, parameter.GlyphBorder, nil, style)
		r.screen.SetContent(width-1, y, parameter.GlyphBorder, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, defaultStyle tcell.Style) {
	_, height := FieldSize(snap.HalfSize)
	y := height - parameter.StatusLines

	text := fmt.Sprintf("len %d  tick %dms  lerp %.1f  ticks %d", snap.Length, snap.TickMS, snap.LerpRate, snap.Tick)
	style := defaultStyle.Foreground(RgbStatusBar)
	width, _ := r.screen.Size()
	for i, ch := range text {
		if width > 0 && i >= width {
			break
		}
		r.screen.SetContent(i, y, ch, nil, style)
	}
}

func roleGlyph(role string, defaultStyle tcell.Style) (rune, tcell.Style) {
	switch role {
	case engine.RoleHead:
		return parameter.GlyphHead, defaultStyle.Foreground(RgbHead).Bold(true)
	case engine.RoleTail:
		return parameter.GlyphTail, defaultStyle.Foreground(RgbTail)
	default:
		return parameter.GlyphBody, defaultStyle.Foreground(RgbBody)
	}
}

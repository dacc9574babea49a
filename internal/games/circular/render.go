package circular

import (
	"fmt"
	"math"

	"github.com/vovakirdan/circular-pong/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	PaddleChar    = '█'
	ProtectedChar = '•'
	WallChar      = '·'
	DividerChar   = '─'
)

// cellAspect is the height/width ratio of a terminal cell.
const cellAspect = 2.0

// minArenaRows is the smallest arena radius, in rows, worth drawing.
const minArenaRows = 3

// instructionsFor is how long the controls hint stays on screen.
const instructionsFor = 3 // seconds

// viewport maps arena coordinates (y-up, centered) to screen cells.
type viewport struct {
	cx, cy float64 // Screen center in cells
	k      float64 // Rows per arena unit
}

func newViewport(w, h int, arenaRadius float64) (viewport, bool) {
	rows := float64(h-2) / 2
	cols := float64(w-2) / 2
	if rows*cellAspect > cols {
		rows = cols / cellAspect
	}
	if rows < minArenaRows || arenaRadius <= 0 {
		return viewport{}, false
	}
	return viewport{
		cx: float64(w) / 2,
		cy: float64(h) / 2,
		k:  rows / arenaRadius,
	}, true
}

func (v viewport) project(p core.Vec2) (int, int) {
	x := v.cx + p.X*v.k*cellAspect
	y := v.cy - p.Y*v.k
	return int(math.Round(x)), int(math.Round(y))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	vp, ok := newViewport(dst.Width(), dst.Height(), snap.ArenaRadius)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	// The arena dims while nothing moves
	drawArena(dst, vp, snap.ArenaRadius, g.paused || snap.Frozen)
	drawPaddle(dst, vp, snap)

	if !snap.Frozen || (snap.Tick/6)%2 == 0 { // Blink while waiting for the next serve
		bx, by := vp.project(snap.BallPos)
		dst.SetColored(bx, by, BallChar, core.ColorWhite)
	}

	g.drawHUD(dst, snap)

	if snap.Frozen {
		msg := fmt.Sprintf("BALL LOST  %.1fs", snap.FreezeRemaining.Seconds())
		dst.DrawTextCentered(int(vp.cy)+2, msg, core.ColorRed)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		lives := g.cfg.Gameplay.Lives
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Time: %ds", snap.Seconds()),
			fmt.Sprintf("Total Bounces: %d", snap.Bounces),
			fmt.Sprintf("Lives Used: %d/%d", lives-snap.Lives, lives),
			"",
			"Press R to restart or Q to quit",
		)
	}
}

// drawArena draws the boundary circle, highlighting the protected half,
// and the divider between the two halves. A dimmed arena is drawn all gray.
func drawArena(dst *core.Screen, vp viewport, radius float64, dimmed bool) {
	protected, wall, divider := core.ColorBrightGreen, core.ColorDarkGreen, core.ColorOlive
	if dimmed {
		protected, wall, divider = core.ColorGray, core.ColorGray, core.ColorGray
	}

	left, cy := vp.project(core.V(-radius, 0))
	right, _ := vp.project(core.V(radius, 0))
	dst.DrawHLine(left, cy, right-left+1, DividerChar, divider)

	rc := radius * vp.k * cellAspect
	steps := max(64, int(core.TwoPi*rc*2))
	for i := 0; i < steps; i++ {
		a := core.TwoPi * float64(i) / float64(steps)
		x, y := vp.project(core.FromPolar(radius, a))
		if a <= math.Pi {
			dst.SetColored(x, y, ProtectedChar, protected)
		} else {
			dst.SetColored(x, y, WallChar, wall)
		}
	}
}

// drawPaddle fills the paddle chord cell by cell.
func drawPaddle(dst *core.Screen, vp viewport, snap Snapshot) {
	x0, y0 := vp.project(snap.PaddleStart)
	x1, y1 := vp.project(snap.PaddleEnd)
	n := max(1, max(abs(x1-x0), abs(y1-y0))*2)
	for i := 0; i < n + 1; i++ {
		t := float64(i) / float64(n)
		p := snap.PaddleStart.Add(snap.PaddleEnd.Sub(snap.PaddleStart).Scale(t))
		x, y := vp.project(p)
		dst.SetColored(x, y, PaddleChar, core.ColorGreen)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Time: %ds", snap.Seconds()), core.ColorGreen)
	dst.DrawTextColored(1, 1, fmt.Sprintf("Bounces: %d", snap.Bounces), core.ColorGreen)
	dst.DrawTextColored(1, 2, fmt.Sprintf("Lives: %d", snap.Lives), core.ColorGreen)

	if snap.Seconds() < instructionsFor && !snap.GameOver {
		h := dst.Height()
		dst.DrawTextColored(1, h-3, "Use LEFT/RIGHT arrows to move paddle", core.ColorWhite)
		dst.DrawTextColored(1, h-2, "Keep the ball out of the upper half!", core.ColorWhite)
		dst.DrawTextColored(1, h-1, "Survive as long as possible!", core.ColorWhite)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorGreen)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextColored(boxX+(boxW-len(l))/2, boxY+3+i, l, core.ColorGreen)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package racer

import (
	"fmt"
	"strings"

	"github.com/merrillholt/F1Game/internal/config"
	"github.com/merrillholt/F1Game/internal/core"
)

// Visual characters for game elements.
const (
	glyphCar      = '█'
	glyphNose     = '▲'
	glyphRoadEdge = '║'
	glyphMarker   = '╎'
)

// Minimum terminal size for a playable picture.
const (
	minScreenW = 40
	minScreenH = 12
)

var introCarArt = []string{
	"  ▄▄██▄▄  ",
	"▐█░████░█▌",
	"   ████   ",
	"▐█░████░█▌",
	"   ▀▀▀▀   ",
}

// viewport maps virtual lane coordinates to screen cells. Terminal cells
// are roughly twice as tall as wide, so the horizontal scale carries a 2x
// correction to keep the lane's shape.
type viewport struct {
	x, y, w, h     int
	scaleX, scaleY float64
}

func newViewport(dst *core.Screen, laneW, laneH float64) viewport {
	h := dst.Height() - 2 // HUD row above, key hints below
	w := int(float64(h) * 2 * laneW / laneH)
	if maxW := dst.Width() - 2; w > maxW {
		w = maxW
	}
	return viewport{
		x:      (dst.Width() - w) / 2,
		y:      1,
		w:      w,
		h:      h,
		scaleX: float64(w) / laneW,
		scaleY: float64(h) / laneH,
	}
}

// fill draws a virtual-space rectangle as a block of cells, clipped to the
// viewport. Returns the clipped cell box and whether anything was visible.
func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) (x0, y0, x1, y1 int, ok bool) {
	x0 = v.x + int(r.X*v.scaleX)
	y0 = v.y + int(r.Y*v.scaleY)
	x1 = v.x + int((r.X+r.W)*v.scaleX)
	y1 = v.y + int((r.Y+r.H)*v.scaleY)
	if x1 <= x0 {
		x1 = x0 + 1 // Entities never vanish entirely at small scales
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0 = core.Clamp(x0, v.x, v.x+v.w)
	x1 = core.Clamp(x1, v.x, v.x+v.w)
	y0 = core.Clamp(y0, v.y, v.y+v.h)
	y1 = core.Clamp(y1, v.y, v.y+v.h)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			dst.SetCell(xx, yy, glyph, c)
		}
	}
	return x0, y0, x1, y1, true
}

func kindStyle(k ObstacleKind) (rune, core.Color) {
	switch k {
	case KindTruck:
		return '▓', core.ColorOrange
	case KindSportsCar:
		return '█', core.ColorBrightMagenta
	case KindMotorcycle:
		return '▒', core.ColorBrightGreen
	case KindBus:
		return '▓', core.ColorYellow
	default:
		return '█', core.ColorBlue
	}
}

func powerUpStyle(k PowerUpKind) (rune, core.Color) {
	switch k {
	case PowerShield:
		return '◈', core.ColorBrightCyan
	case PowerSlowMotion:
		return '◷', core.ColorBrightBlue
	case PowerSpeedBoost:
		return '»', core.ColorBrightYellow
	default:
		return '?', core.ColorWhite
	}
}

// hudName is the short effect label shown in the HUD.
func hudName(k PowerUpKind) string {
	switch k {
	case PowerShield:
		return "SHIELD"
	case PowerSlowMotion:
		return "SLOW"
	case PowerSpeedBoost:
		return "BOOST"
	default:
		return "?"
	}
}

// Render draws the current screen into the buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "terminal too small")
		return
	}
	switch g.state {
	case StateIntro:
		g.renderIntro(dst)
	case StateDifficulty:
		g.renderDifficulty(dst)
	case StatePlaying, StatePaused, StateCrashed:
		g.renderRace(dst)
	}
}

func (g *Game) renderIntro(dst *core.Screen) {
	h := dst.Height()
	artH := len(introCarArt)
	endY := h/2 - artH/2
	startY := h - artH - 2
	progress := float64(g.introTicks) / float64(introLandTicks)
	if progress > 1 {
		progress = 1
	}
	artY := startY - int(float64(startY-endY)*progress)
	for i, line := range introCarArt {
		dst.DrawTextCenteredColored(artY+i, line, core.ColorBrightRed)
	}
	if g.introTicks >= introLandTicks {
		title := "F 1  R A C E R"
		dst.DrawTextCenteredColored(endY-4, title, core.ColorBrightYellow)
		dst.DrawTextCenteredColored(endY-3, strings.Repeat("═", len([]rune(title))+4), core.ColorYellow)
		if g.highScore > 0 {
			dst.DrawTextCenteredColored(endY+artH+2, fmt.Sprintf("BEST %d", g.highScore), core.ColorYellow)
		}
		if (g.introTicks/30)%2 == 0 { // Blink
			dst.DrawTextCenteredColored(h-4, "PRESS ENTER", core.ColorBrightWhite)
		}
	}
	dst.DrawTextCenteredColored(h-1, "enter start · q quit", core.ColorGray)
}

func (g *Game) renderDifficulty(dst *core.Screen) {
	dst.DrawTextCenteredColored(2, "SELECT DIFFICULTY", core.ColorBrightYellow)
	if g.highScore > 0 {
		dst.DrawTextCenteredColored(3, fmt.Sprintf("BEST %d", g.highScore), core.ColorYellow)
	}
	y := 6
	for i, p := range config.Profiles() {
		selected := i == g.profileIdx
		name := fmt.Sprintf("%d. %s", i+1, p.Name)
		nameColor, descColor := core.ColorWhite, core.ColorGray
		if selected {
			name = "▸ " + name + " ◂"
			nameColor, descColor = core.ColorBrightGreen, core.ColorWhite
		}
		dst.DrawTextCenteredColored(y, name, nameColor)
		dst.DrawTextCenteredColored(y+1, p.Description, descColor)
		y += 3
	}
	dst.DrawTextCenteredColored(dst.Height()-1, "↑/↓ choose · enter race · esc back · q quit", core.ColorGray)
}

func (g *Game) renderRace(dst *core.Screen) {
	s := g.session
	v := newViewport(dst, g.cfg.Display.LaneWidth, g.cfg.Display.LaneHeight)

	g.drawRoad(dst, v)
	for _, p := range s.powerUps {
		glyph, c := powerUpStyle(p.Kind)
		v.fill(dst, p.Bounds(), glyph, c)
	}
	for _, o := range s.obstacles {
		glyph, c := kindStyle(o.Kind)
		v.fill(dst, o.Bounds(), glyph, c)
	}
	g.drawCar(dst, v)
	g.drawHUD(dst)

	switch {
	case g.state == StatePaused:
		drawOverlay(dst, core.ColorYellow, []overlayLine{
			{"PAUSED", core.ColorBrightYellow},
			{"", core.ColorDefault},
			{"p resume · q quit", core.ColorGray},
		})
	case g.state == StateCrashed:
		g.drawCrashOverlay(dst)
	case s.countdown > 0:
		n := s.countdownNumeral(g.cfg.Gameplay.CountdownTicks)
		drawOverlay(dst, core.ColorBrightYellow, []overlayLine{
			{fmt.Sprintf(" %d ", n), core.ColorBrightYellow},
		})
	case g.goLinger > 0:
		drawOverlay(dst, core.ColorBrightGreen, []overlayLine{
			{" GO! ", core.ColorBrightGreen},
		})
	}
	g.drawHints(dst)
}

func (g *Game) drawRoad(dst *core.Screen, v viewport) {
	dst.DrawVLine(v.x-1, v.y, v.h, glyphRoadEdge, core.ColorGray)
	dst.DrawVLine(v.x+v.w, v.y, v.h, glyphRoadEdge, core.ColorGray)

	// Dashed lane markers scroll with the road to sell the motion.
	offset := int(g.session.distance * v.scaleY)
	for _, col := range []int{v.x + v.w/4, v.x + v.w/2, v.x + 3*v.w/4} {
		for row := 0; row < v.h; row++ {
			if ((row-offset)%4+4)%4 < 2 {
				dst.SetCell(col, v.y+row, glyphMarker, core.ColorGray)
			}
		}
	}
}

func (g *Game) drawCar(dst *core.Screen, v viewport) {
	s := g.session
	x0, y0, x1, _, ok := v.fill(dst, s.car.Bounds(), glyphCar, core.ColorBrightRed)
	if !ok {
		return
	}
	// The nose marker leans into the steering direction.
	nose := core.Clamp((x0+x1-1)/2+s.car.Facing, x0, x1-1)
	dst.SetCell(nose, y0, glyphNose, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session
	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", s.score), core.ColorBrightWhite)
	right := fmt.Sprintf("BEST %d  %s  SPEED %.1f", g.highScore, strings.ToUpper(s.profile.Label), s.baseSpeed)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)

	if active := s.effects.Active(); len(active) > 0 {
		parts := make([]string, len(active))
		for i, e := range active {
			remaining := s.effects.SecondsRemaining(e.Kind, s.tick, g.runtime.TickRate)
			parts[i] = fmt.Sprintf("%s %.1fs", hudName(e.Kind), remaining)
		}
		dst.DrawTextCenteredColored(0, strings.Join(parts, "  "), core.ColorBrightCyan)
	}
}

func (g *Game) drawHints(dst *core.Screen) {
	var hint string
	switch g.state {
	case StatePlaying:
		hint = "←/→ steer · p pause · m mute · q quit"
	case StatePaused:
		hint = "p resume · q quit"
	case StateCrashed:
		hint = "r restart · esc difficulty · q quit"
	}
	dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
}

func (g *Game) drawCrashOverlay(dst *core.Screen) {
	s := g.session
	lines := []overlayLine{
		{"CRASHED!", core.ColorBrightRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("SCORE  %d", s.score), core.ColorBrightWhite},
	}
	if g.newBest {
		lines = append(lines, overlayLine{"NEW HIGH SCORE!", core.ColorBrightYellow})
	} else {
		lines = append(lines, overlayLine{fmt.Sprintf("BEST   %d", g.highScore), core.ColorYellow})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{"r race again · esc difficulty", core.ColorGray},
	)
	drawOverlay(dst, core.ColorRed, lines)
}

type overlayLine struct {
	text  string
	color core.Color
}

// drawOverlay draws a bordered message box over the center of the screen.
func drawOverlay(dst *core.Screen, border core.Color, lines []overlayLine) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l.text)); n > w {
			w = n
		}
	}
	w += 6
	h := len(lines) + 2
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2
	dst.FillRect(x, y, w, h, ' ', core.ColorDefault)
	dst.DrawBox(x, y, w, h, border)
	for i, l := range lines {
		dst.DrawTextCenteredColored(y+1+i, l.text, l.color)
	}
}

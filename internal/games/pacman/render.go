package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawOverlay("Window too small",
			fmt.Sprintf("Need %dx%d", g.board.Width()*cellWidth, g.board.Height()+hudHeight+footerHeight))
		return
	}

	ox := (dst.Width() - g.board.Width()*cellWidth) / 2
	oy := hudHeight
	g.renderBoard(dst, ox, oy)
	g.renderGhosts(dst, ox, oy)
	g.putCell(dst, ox, oy, g.pac.pos, 'C', pacmanColor(g.pac.form))
	g.renderFooter(dst, oy+g.board.Height())

	switch {
	case g.won:
		dst.DrawOverlay("You Win!", fmt.Sprintf("Final Score: %d", g.score), "Press R to play again")
	case g.gameOver:
		dst.DrawOverlay("Game Over", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.levelCleared:
		dst.DrawOverlay(fmt.Sprintf("Level %d cleared!", g.levelIndex+1), g.level().Name)
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	case g.readyTicks > 0:
		dst.DrawOverlay("READY!")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Pac-Man (Endless) | Score: %d  Stage: %d  %s", g.score, g.levelIndex+1, g.level().Name)
	} else {
		hud = fmt.Sprintf(" Pac-Man | Score: %d  Level: %d/%d  %s", g.score, g.levelIndex+1, LevelCount(), g.level().Name)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls and collectibles.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	grid := g.board.Grid()
	for r := range g.board.Height() {
		for c := range g.board.Width() {
			cell := pathfind.C(c, r)
			if !grid.Passable(cell) {
				x, y := ox+c*cellWidth, oy+r
				dst.SetColored(x, y, '█', core.ColorBlue)
				dst.SetColored(x+1, y, '█', core.ColorBlue)
				continue
			}
			switch g.items[cell] {
			case ItemPellet:
				g.putCell(dst, ox, oy, cell, '·', core.ColorWhite)
			case ItemMegaPellet:
				g.putCell(dst, ox, oy, cell, '●', core.ColorBrightWhite)
			case ItemCherry:
				g.putCell(dst, ox, oy, cell, '¤', core.ColorBrightRed)
			}
		}
	}
}

func (g *Game) renderGhosts(dst *core.Screen, ox, oy int) {
	for _, gh := range g.ghosts {
		if gh.Alive {
			g.putCell(dst, ox, oy, gh.Pos, 'Ω', ghostColor(gh.Form))
		} else {
			g.putCell(dst, ox, oy, gh.Pos, '"', core.ColorGray)
		}
	}
}

// renderFooter draws lives, mana, form and ability status.
func (g *Game) renderFooter(dst *core.Screen, y int) {
	x := 1
	x = drawPart(dst, x, y, "Lives ", core.ColorDefault)
	x = drawPart(dst, x, y, strings.Repeat("♥", g.lives), core.ColorBrightRed)
	x = drawPart(dst, x, y, fmt.Sprintf("  Mana %d  Form ", g.mana), core.ColorDefault)
	x = drawPart(dst, x, y, strings.ToUpper(g.pac.form.String()), pacmanColor(g.pac.form))
	x = drawPart(dst, x, y, "  [1] Speed "+g.abilityStatus(g.abilities.speed), core.ColorDefault)
	drawPart(dst, x, y, "  [2] Transform "+g.abilityStatus(g.abilities.transform), core.ColorDefault)
}

func drawPart(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColored(x, y, text, c)
	return x + len([]rune(text))
}

func (g *Game) abilityStatus(a Ability) string {
	switch {
	case a.Active():
		return fmt.Sprintf("%ds", (a.Remaining()+g.tickRate-1)/g.tickRate)
	case !g.abilities.Ready():
		return fmt.Sprintf("cd %ds", (g.abilities.cooldown+g.tickRate-1)/g.tickRate)
	case g.mana == 0:
		return "no mana"
	default:
		return "ready"
	}
}

// putCell draws a one-rune sprite in the left half of a board cell.
func (g *Game) putCell(dst *core.Screen, ox, oy int, c pathfind.Cell, r rune, color core.Color) {
	dst.SetColored(ox+c.Col*cellWidth, oy+c.Row, r, color)
}

func ghostColor(f Form) core.Color {
	switch f {
	case FormGreen:
		return core.ColorGreen
	case FormBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorRed
	}
}

func pacmanColor(f Form) core.Color {
	switch f {
	case FormGreen:
		return core.ColorBrightGreen
	case FormBlue:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightYellow
	}
}

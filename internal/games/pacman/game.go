// Package pacman implements a grid Pac-Man whose ghosts plan their moves
// with the A* pathfinder. The game is pure and deterministic for a seed.
package pacman

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/pathfind"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry ids.
const (
	GameID        = "pacman"
	EndlessGameID = "pacman_endless"
)

const (
	hudHeight       = 2
	footerHeight    = 1
	cellWidth       = 2
	defaultTickRate = 60
)

var (
	cfgMu     sync.RWMutex
	activeCfg = config.DefaultPacmanConfig()
)

// Configure sets the configuration used by games created through the
// registry. Games already running keep the config they were created with.
func Configure(cfg config.PacmanConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	activeCfg = cfg
}

func currentConfig() config.PacmanConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return activeCfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(ModeCampaign, currentConfig())
	})
	registry.Register(EndlessGameID, func() registry.Game {
		return New(ModeEndless, currentConfig())
	})
}

// player is Pac-Man's movement state.
type player struct {
	pos    pathfind.Cell
	from   pathfind.Cell
	spawn  pathfind.Cell
	dir    pathfind.Direction
	next   pathfind.Direction // buffered turn, applied when the way is open
	form   Form
	ticker int
}

// Game implements registry.Game for both modes.
type Game struct {
	mode       Mode
	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tickRate   int
	tick       uint64

	startLevel int // 0-based, applied on Reset
	levelIndex int // grows past LevelCount in endless mode
	board      *Board
	items      map[pathfind.Cell]Item
	toEat      int // pellets and mega pellets left
	brain      *brain

	pac       player
	ghosts    []*Ghost
	lives     int
	mana      int
	score     int
	abilities *abilitySet

	ghostTicker int
	aiTicker    int

	screenW int
	screenH int

	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearTicks   int
	readyTicks   int
}

// New creates a game. Call Reset before stepping it.
func New(mode Mode, cfg config.PacmanConfig) *Game {
	return &Game{mode: mode, cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return EndlessGameID
	}
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Pac-Man (Endless)"
	}
	return "Pac-Man"
}

// LevelCount implements registry.LevelSelector.
func (g *Game) LevelCount() int { return LevelCount() }

// SelectLevel sets the 1-based level the next Reset starts from.
func (g *Game) SelectLevel(n int) error {
	if n < 1 || n > LevelCount() {
		return fmt.Errorf("pacman: level %d out of range 1-%d", n, LevelCount())
	}
	g.startLevel = n - 1
	return nil
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.tick = 0
	g.score = 0
	g.lives = max(g.cfg.Player.Lives, 1)
	g.mana = g.cfg.Player.StartMana
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.levelIndex = g.startLevel

	g.loadLevel()
}

// Resize updates the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkSize()
}

func (g *Game) checkSize() {
	if g.board == nil {
		return
	}
	g.tooSmall = g.screenW < g.board.Width()*cellWidth ||
		g.screenH < g.board.Height()+hudHeight+footerHeight
}

// level returns the current level definition; endless mode wraps around.
func (g *Game) level() *Level {
	return GetLevel(g.levelIndex % LevelCount())
}

// cycle is the number of completed passes through the level list.
func (g *Game) cycle() int {
	return g.levelIndex / LevelCount()
}

var (
	boardsOnce sync.Once
	boards     []*Board
)

// boardFor returns the parsed board of a built-in level. The layouts are
// static, so a parse failure is a bug caught by the level tests.
func boardFor(index int) *Board {
	boardsOnce.Do(func() {
		boards = make([]*Board, len(Levels))
		for i, l := range Levels {
			b, err := ParseBoard(l.Layout)
			if err != nil {
				panic(fmt.Sprintf("pacman: level %d (%s): %v", i+1, l.Name, err))
			}
			boards[i] = b
		}
	})
	return boards[index]
}

// LevelBoard returns the parsed board of a 1-based campaign level.
func LevelBoard(n int) (*Board, error) {
	if n < 1 || n > LevelCount() {
		return nil, fmt.Errorf("pacman: level %d out of range 1-%d", n, LevelCount())
	}
	return boardFor(n - 1), nil
}

// NewFinder builds the ghost pathfinder for a board with the configured
// cost mode and expansion cap.
func NewFinder(b *Board, gc config.PacmanGhosts) *pathfind.Finder {
	var opts []pathfind.Option
	if gc.AccumulatedCost {
		opts = append(opts, pathfind.WithAccumulatedCost())
	}
	if gc.MaxExpansions > 0 {
		opts = append(opts, pathfind.WithMaxExpansions(gc.MaxExpansions))
	}
	return pathfind.NewFinder(b.Grid(), opts...)
}

// loadLevel places Pac-Man and the ghosts on a fresh copy of the board.
func (g *Game) loadLevel() {
	lvl := g.level()
	g.board = boardFor(g.levelIndex % LevelCount())
	g.items = g.board.Items()
	g.toEat = g.board.Count(ItemPellet) + g.board.Count(ItemMegaPellet)

	gc := g.cfg.Ghosts
	g.brain = &brain{
		board:        g.board,
		finder:       NewFinder(g.board, gc),
		chaseRadius:  gc.ChaseRadius,
		wanderRadius: gc.WanderRadius,
		cooperative:  gc.Cooperative,
		penalty:      gc.AvoidPenalty,
	}

	spawn := g.board.PacmanSpawn()
	g.pac = player{pos: spawn, from: spawn, spawn: spawn, form: FormRed}

	g.ghosts = g.ghosts[:0]
	for _, s := range g.board.GhostSpawns() {
		g.ghosts = append(g.ghosts, &Ghost{
			Pos:   s,
			From:  s,
			Spawn: s,
			Form:  Form(g.rng.Intn(int(formCount))),
			Alive: true,
		})
	}

	g.abilities = newAbilitySet(lvl, g.tickRate, &g.pac.form)
	g.ghostTicker = 0
	g.aiTicker = 0
	g.levelCleared = false
	g.clearTicks = 0
	g.readyTicks = g.tickRate
	g.checkSize()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			TickRate: g.tickRate,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= g.tickRate*3/2 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	if g.readyTicks > 0 {
		g.readyTicks--
		return core.StepResult{State: g.State()}
	}

	g.abilities.Update()

	if g.aiTicker == 0 {
		g.runAI()
	}
	g.aiTicker = (g.aiTicker + 1) % max(g.cfg.Ghosts.AIEveryTicks, 1)

	pacMoved := g.stepPacman()
	ghostsMoved := g.stepGhosts()
	g.resolveCollisions(pacMoved, ghostsMoved)

	if g.toEat == 0 && !g.gameOver {
		g.levelCleared = true
		g.clearTicks = 0
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers turns and fires abilities.
func (g *Game) processInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.pac.next = pathfind.Up
	case in.Has(core.ActionDown):
		g.pac.next = pathfind.Down
	case in.Has(core.ActionLeft):
		g.pac.next = pathfind.Left
	case in.Has(core.ActionRight):
		g.pac.next = pathfind.Right
	}

	if g.readyTicks > 0 {
		return
	}

	if in.Has(core.ActionAbility1) {
		g.abilities.tryActivate(g.abilities.speed, &g.mana)
	}
	if in.Has(core.ActionAbility2) {
		if g.abilities.transform.Active() {
			g.abilities.transform.Cycle()
		} else {
			g.abilities.tryActivate(g.abilities.transform, &g.mana)
		}
	}
}

// runAI plans the next step of every ghost.
func (g *Game) runAI() {
	g.brain.chaseRadius = g.difficulty.ChaseRadius(g.cfg.Ghosts.ChaseRadius, g.score, int(g.tick))
	g.brain.pass(g.ghosts, world{
		pacman: g.pac.pos,
		megas:  g.remainingMegas(),
		intn:   g.rng.Intn,
	})
}

// remainingMegas lists uneaten mega pellets in row-major order.
func (g *Game) remainingMegas() []pathfind.Cell {
	var out []pathfind.Cell
	for _, c := range g.board.Grid().EmptyCells() {
		if g.items[c] == ItemMegaPellet {
			out = append(out, c)
		}
	}
	return out
}

// pacmanInterval returns Pac-Man's ticks per cell.
func (g *Game) pacmanInterval() int {
	m := g.cfg.Movement
	base := m.PacmanMoveEveryTicks
	if g.abilities.speed.Active() {
		base = m.BoostMoveEveryTicks
	}
	return max(m.MinMoveEveryTicks, base+g.level().PacmanDelta, 1)
}

// ghostInterval returns the ghosts' ticks per cell, after difficulty,
// endless cycles and the transform slowdown.
func (g *Game) ghostInterval() int {
	m := g.cfg.Movement
	floor := max(m.MinMoveEveryTicks, 1)
	base := max(floor, m.GhostMoveEveryTicks+g.level().GhostDelta)
	interval := g.difficulty.MoveInterval(base, floor, g.score, int(g.tick))
	if g.mode == ModeEndless {
		interval = max(floor, interval-g.cycle())
	}
	if g.abilities.transform.Active() {
		interval += g.level().GhostSlowdown
	}
	return interval
}

// stepPacman moves Pac-Man when his cadence is due and eats what he lands on.
func (g *Game) stepPacman() bool {
	g.pac.from = g.pac.pos
	g.pac.ticker++
	if g.pac.ticker < g.pacmanInterval() {
		return false
	}
	g.pac.ticker = 0

	if g.pac.next != pathfind.None {
		if _, ok := g.board.Step(g.pac.pos, g.pac.next); ok {
			g.pac.dir = g.pac.next
		}
	}
	next, ok := g.board.Step(g.pac.pos, g.pac.dir)
	if g.pac.dir == pathfind.None || !ok {
		return false
	}
	g.pac.pos = next
	g.eat(next)
	return true
}

// eat collects the item under Pac-Man.
func (g *Game) eat(c pathfind.Cell) {
	s := g.cfg.Scoring
	switch g.items[c] {
	case ItemPellet:
		g.score += s.Pellet
		g.toEat--
	case ItemMegaPellet:
		g.score += s.MegaPellet
		g.mana++
		g.toEat--
	case ItemCherry:
		g.score += s.Cherry
	default:
		return
	}
	delete(g.items, c)
}

// stepGhosts moves every ghost one cell along its planned heading.
// A ghost whose heading is blocked holds position.
func (g *Game) stepGhosts() bool {
	for _, gh := range g.ghosts {
		gh.From = gh.Pos
	}
	g.ghostTicker++
	if g.ghostTicker < g.ghostInterval() {
		return false
	}
	g.ghostTicker = 0

	for _, gh := range g.ghosts {
		if gh.Dir == pathfind.None {
			continue
		}
		if next, ok := g.board.Step(gh.Pos, gh.Dir); ok {
			gh.Pos = next
		}
	}
	return true
}

// resolveCollisions handles Pac-Man meeting live ghosts, including the
// case where both swap cells on the same tick.
func (g *Game) resolveCollisions(pacMoved, ghostsMoved bool) {
	for _, gh := range g.ghosts {
		if !gh.Alive {
			continue
		}
		hit := gh.Pos == g.pac.pos ||
			(pacMoved && ghostsMoved && gh.Pos == g.pac.from && gh.From == g.pac.pos)
		if !hit {
			continue
		}
		if gh.Form == g.pac.form {
			gh.Alive = false
			gh.target = nil
			g.score += g.cfg.Scoring.Ghost
			continue
		}
		g.loseLife()
		return
	}
}

// loseLife respawns everyone or ends the game on the last life.
func (g *Game) loseLife() {
	g.lives--
	g.abilities.Cancel()
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		return
	}

	spawn := g.pac.spawn
	g.pac.pos, g.pac.from = spawn, spawn
	g.pac.dir, g.pac.next = pathfind.None, pathfind.None
	g.pac.ticker = 0
	for _, gh := range g.ghosts {
		gh.Pos, gh.From = gh.Spawn, gh.Spawn
		gh.Dir = pathfind.None
		gh.target, gh.prevTarget = nil, nil
		gh.path = nil
	}
	g.ghostTicker = 0
	g.aiTicker = 0
	g.readyTicks = g.tickRate
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= LevelCount() {
		g.levelIndex = LevelCount() - 1
		g.levelCleared = false
		g.won = true
		return
	}
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		Lives:    g.lives,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Ghosts exposes the ghosts for rendering and tests.
func (g *Game) Ghosts() []*Ghost { return g.ghosts }

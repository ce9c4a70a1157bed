package pacman

import "github.com/vovakirdan/tui-pacman/internal/pathfind"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StateReady        GameStateType = "ready"
	StateLevelCleared GameStateType = "level_cleared"
	StateGameOver     GameStateType = "game_over"
	StateWin          GameStateType = "win"
	StatePaused       GameStateType = "paused"
	StatePausedSmall  GameStateType = "paused_small_window"
)

// GhostSnapshot captures one ghost.
type GhostSnapshot struct {
	Pos    pathfind.Cell
	Dir    pathfind.Direction
	Form   Form
	Alive  bool
	Target pathfind.Cell
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Level       int    // 1-indexed
	Mode        string // "campaign" or "endless"
	Score       int
	Lives       int
	Mana        int
	PacPos      pathfind.Cell
	PacDir      pathfind.Direction
	PacForm     Form
	Ghosts      []GhostSnapshot
	ToEat       int
	GhostEvery  int
	SpeedActive bool
	Transform   bool
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	case g.readyTicks > 0:
		state = StateReady
	}

	ghosts := make([]GhostSnapshot, len(g.ghosts))
	for i, gh := range g.ghosts {
		ghosts[i] = GhostSnapshot{Pos: gh.Pos, Dir: gh.Dir, Form: gh.Form, Alive: gh.Alive}
		if t, ok := gh.Target(); ok {
			ghosts[i].Target = t
		}
	}

	return Snapshot{
		Tick:        g.tick,
		Level:       g.levelIndex + 1,
		Mode:        string(g.mode),
		Score:       g.score,
		Lives:       g.lives,
		Mana:        g.mana,
		PacPos:      g.pac.pos,
		PacDir:      g.pac.dir,
		PacForm:     g.pac.form,
		Ghosts:      ghosts,
		ToEat:       g.toEat,
		GhostEvery:  g.ghostInterval(),
		SpeedActive: g.abilities.speed.Active(),
		Transform:   g.abilities.transform.Active(),
		State:       state,
	}
}

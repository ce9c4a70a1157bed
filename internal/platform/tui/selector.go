package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

// Selection holds the user's choices from the Pac-Man selector.
type Selection struct {
	Mode       pacman.Mode
	Level      int // 0 = start from the first level, else 1-based
	Difficulty config.DifficultyPreset
}

// NewGame builds the selected game on top of base. The preset is applied
// to a copy, so concurrent sessions never share a configuration.
func (s Selection) NewGame(base config.PacmanConfig) (registry.Game, error) {
	cfg := base
	if s.Difficulty != "" {
		config.ApplyPacmanPreset(&cfg, s.Difficulty)
	}

	g := pacman.New(s.Mode, cfg)
	if s.Level > 0 {
		if err := g.SelectLevel(s.Level); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// selector menu rows
const (
	rowCampaign = iota
	rowEndless
	rowLevels
	rowDifficulty
	rowScores
	rowCount
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	presetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// SelectorModel lets users choose mode, starting level and difficulty.
type SelectorModel struct {
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	presetIndex    int
	width          int
	height         int
	keyMapper      *KeyMapper
	selection      Selection
	choosing       bool
	quitting       bool
	openScoreboard bool
}

// NewSelectorModel creates a selector with preset preselected.
func NewSelectorModel(width, height int, preset config.DifficultyPreset) SelectorModel {
	idx := 1 // normal
	for i, p := range config.Presets {
		if p == preset {
			idx = i
		}
	}
	return SelectorModel{
		width:       width,
		height:      height,
		presetIndex: idx,
		keyMapper:   NewKeyMapper(),
		choosing:    true,
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelSelectKey(action)
		}
		return m.handleModeSelectKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SelectorModel) preset() config.DifficultyPreset {
	return config.Presets[m.presetIndex]
}

func (m SelectorModel) choose(mode pacman.Mode, level int) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = Selection{Mode: mode, Level: level, Difficulty: m.preset()}
	return m, tea.Quit
}

func (m SelectorModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case MenuActionDown:
		m.cursor = (m.cursor + 1) % rowCount
	case MenuActionLeft:
		if m.cursor == rowDifficulty {
			m.presetIndex = (m.presetIndex + len(config.Presets) - 1) % len(config.Presets)
		}
	case MenuActionRight:
		if m.cursor == rowDifficulty {
			m.presetIndex = (m.presetIndex + 1) % len(config.Presets)
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	case MenuActionSelect:
		switch m.cursor {
		case rowCampaign:
			return m.choose(pacman.ModeCampaign, 0)
		case rowEndless:
			return m.choose(pacman.ModeEndless, 0)
		case rowLevels:
			m.inLevelSelect = true
			m.levelCursor = 0
		case rowDifficulty:
			m.presetIndex = (m.presetIndex + 1) % len(config.Presets)
		case rowScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SelectorModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	levelCount := pacman.LevelCount()

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < levelCount-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.choose(pacman.ModeCampaign, m.levelCursor+1)
	case MenuActionBack:
		m.inLevelSelect = false
	}
	return m, nil
}

// View renders the selector.
func (m SelectorModel) View() string {
	if m.quitting || !m.choosing || m.openScoreboard {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewModeSelect()
}

func (m SelectorModel) line(b *strings.Builder, i, cursor int, text string) {
	prefix := "  "
	if i == cursor {
		prefix = "> "
		text = cursorStyle.Render(text)
	}
	b.WriteString(centerText(prefix+text, m.width))
	b.WriteString("\n")
}

func (m SelectorModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P A C - M A N"), m.width))
	b.WriteString("\n\n")

	rows := []string{
		fmt.Sprintf("Campaign (%d levels)", pacman.LevelCount()),
		"Endless Mode",
		"Select Level...",
		"Difficulty: < " + presetStyle.Render(string(m.preset())) + " >",
		"High Scores",
	}
	for i, row := range rows {
		m.line(&b, i, m.cursor, row)
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Enter: Select  |  ←/→: Difficulty  |  Tab: Scores  |  Q: Quit"), m.width))
	return b.String()
}

func (m SelectorModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, name := range pacman.LevelNames() {
		m.line(&b, i, m.levelCursor, fmt.Sprintf("%d. %s", i+1, name))
	}

	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SelectorModel) Selected() *Selection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user asked for the high scores.
func (m SelectorModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within width. Styled text is measured by its
// visible width.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	return strings.Repeat(" ", (width-visible)/2) + text
}

// SelectorResult holds the result of running the selector.
type SelectorResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunSelector runs the selector and returns the user's choice.
func RunSelector(cfg core.RuntimeConfig, preset config.DifficultyPreset) (SelectorResult, error) {
	p := tea.NewProgram(NewSelectorModel(cfg.ScreenW, cfg.ScreenH, preset), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return SelectorResult{Config: cfg}, err
	}

	m, ok := final.(SelectorModel)
	if !ok {
		return SelectorResult{Config: cfg, Quit: true}, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	switch {
	case m.WantsScoreboard():
		return SelectorResult{Config: cfg, WantsScoreboard: true}, nil
	case m.IsQuitting() || m.Selected() == nil:
		return SelectorResult{Config: cfg, Quit: true}, nil
	}
	return SelectorResult{Config: cfg, Selection: m.Selected()}, nil
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

const scoreLimit = 50

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	statsStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	boardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("12")).Padding(0, 1)
)

type scoreboardKeys struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding

	next, prev, up, down key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var scoreKeys = scoreboardKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Mode:   key.NewBinding(key.WithKeys("tab", "left", "right"), key.WithHelp("tab/←/→", "mode")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	next: key.NewBinding(key.WithKeys("tab", "right", "l")),
	prev: key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	up:   key.NewBinding(key.WithKeys("up", "k")),
	down: key.NewBinding(key.WithKeys("down", "j")),
}

// modeTab is the score table of one registered game mode.
type modeTab struct {
	info   registry.GameInfo
	scores []storage.ScoreEntry
	stats  *storage.GameStats
}

// ScoreboardModel shows the best runs of each mode, one tab per mode.
type ScoreboardModel struct {
	store  *storage.Store
	tabs   []modeTab
	active int

	table table.Model
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard opened on gameID's tab.
// An unknown or empty id opens the first tab. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, width, height int, gameID string) ScoreboardModel {
	m := ScoreboardModel{store: store, help: help.New(), width: width, height: height}
	for i, info := range registry.List() {
		if info.ID == gameID {
			m.active = i
		}
		m.tabs = append(m.tabs, modeTab{info: info})
	}
	for i := range m.tabs {
		m.load(i)
	}
	m.rebuildTable()
	return m
}

// load reads the scores and stats of tab i. Storage errors leave it empty.
func (m *ScoreboardModel) load(i int) {
	if m.store == nil {
		return
	}
	id := m.tabs[i].info.ID
	if scores, err := m.store.TopScores(id, scoreLimit); err == nil {
		m.tabs[i].scores = scores
	}
	if stats, err := m.store.GetGameStats(id); err == nil {
		m.tabs[i].stats = stats
	}
}

// rebuildTable sizes the table to the window and fills it from the active tab.
func (m *ScoreboardModel) rebuildTable() {
	dateWidth := core.Clamp(m.width-50, 12, 16)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Reached", Width: 16},
			{Title: "", Width: 4},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11"))
	t.SetStyles(s)

	if len(m.tabs) > 0 {
		rows := make([]table.Row, len(m.tabs[m.active].scores))
		for i, e := range m.tabs[m.active].scores {
			rows[i] = scoreRow(i, e)
		}
		t.SetRows(rows)
	}
	m.table = t
}

// scoreRow formats one table row. i is the 0-based rank.
func scoreRow(i int, e storage.ScoreEntry) table.Row {
	won := ""
	if e.Won {
		won = "★"
	}
	return table.Row{
		strconv.Itoa(i + 1),
		strconv.Itoa(e.Score),
		levelLabel(e.Level),
		won,
		e.CreatedAt.Format("Jan 02 15:04"),
	}
}

// levelLabel names a 1-based level. Endless runs past the last campaign
// level wrap around the level list.
func levelLabel(level int) string {
	level = max(level, 1)
	lvl := pacman.GetLevel((level - 1) % pacman.LevelCount())
	return fmt.Sprintf("%d %s", level, lvl.Name)
}

// tabLabel is the short mode name shown in the tab bar.
func tabLabel(info registry.GameInfo) string {
	switch info.ID {
	case pacman.GameID:
		return "Campaign"
	case pacman.EndlessGameID:
		return "Endless"
	default:
		return info.Title
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, scoreKeys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, scoreKeys.next):
			m.switchTab(1)
		case key.Matches(msg, scoreKeys.prev):
			m.switchTab(-1)
		case key.Matches(msg, scoreKeys.up):
			m.table.MoveUp(1)
		case key.Matches(msg, scoreKeys.down):
			m.table.MoveDown(1)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
	}
	return m, nil
}

func (m *ScoreboardModel) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.rebuildTable()
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("ᗧ  HIGH SCORES  ᗣ"), m.width))
	b.WriteString("\n\n")

	if len(m.tabs) > 0 {
		labels := make([]string, len(m.tabs))
		for i, tab := range m.tabs {
			if i == m.active {
				labels[i] = activeTabStyle.Render(tabLabel(tab.info))
			} else {
				labels[i] = tabStyle.Render(tabLabel(tab.info))
			}
		}
		b.WriteString(centerText(strings.Join(labels, " "), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
		b.WriteString("\n")
	}

	body := subtleStyle.Italic(true).Render("No runs yet. Clear a maze to get on the board!")
	if len(m.tabs) > 0 && len(m.tabs[m.active].scores) > 0 {
		body = m.table.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boardStyle.Render(body)))
	b.WriteString("\n")
	b.WriteString(centerText(subtleStyle.Render(m.help.View(scoreKeys)), m.width))
	return b.String()
}

// statsLine summarizes the active mode.
func (m ScoreboardModel) statsLine() string {
	st := m.tabs[m.active].stats
	if st == nil || st.GamesCount == 0 {
		return "no games played"
	}
	return fmt.Sprintf("best %d  |  %d games  |  %d won  |  furthest: %s",
		st.HighScore, st.GamesCount, st.Wins, levelLabel(st.BestLevel))
}

// IsGoingBack reports whether the user asked to return to the selector.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the scoreboard until the user leaves it.
// goBack is true when the user wants the selector again.
func RunScoreboard(store *storage.Store, width, height int, gameID string) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height, gameID), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}

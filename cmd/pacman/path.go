package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/pathfind"
)

var (
	flagPathLevel   int
	flagPathFrom    string
	flagPathTo      string
	flagPathAvoid   string
	flagPathPenalty int
	flagPathAccum   bool
	flagPathLimit   int
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Run the ghost pathfinder on a level",
	Long: `Search a route on a level's wall map the same way ghosts do and
print the map with the route marked: S start, G goal, * path.

Cells are given as col,row with 0,0 at the top-left corner. Cells in
--avoid are discouraged by --penalty, not blocked.

Examples:
  pacman path --level 1 --from 9,13 --to 1,1
  pacman path --level 1 --from 1,1 --to 3,3 --avoid "2,1;3,1" --penalty 4
  pacman path --level 3 --from 9,15 --to 1,1 --accumulated`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		from, err := parseCell(flagPathFrom)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		to, err := parseCell(flagPathTo)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		avoid, err := parseCells(flagPathAvoid)
		if err != nil {
			return fmt.Errorf("--avoid: %w", err)
		}
		return printPath(cmd.OutOrStdout(), pathQuery{
			level:       flagPathLevel,
			from:        from,
			to:          to,
			avoid:       avoid,
			penalty:     flagPathPenalty,
			accumulated: flagPathAccum,
			limit:       flagPathLimit,
		})
	},
}

func init() {
	pathCmd.Flags().IntVar(&flagPathLevel, "level", 1, "Campaign level (1-based)")
	pathCmd.Flags().StringVar(&flagPathFrom, "from", "", "Start cell as col,row")
	pathCmd.Flags().StringVar(&flagPathTo, "to", "", "Goal cell as col,row")
	pathCmd.Flags().StringVar(&flagPathAvoid, "avoid", "", "Cells to discourage, separated by ';'")
	pathCmd.Flags().IntVar(&flagPathPenalty, "penalty", 4, "Cost added for each avoided cell")
	pathCmd.Flags().BoolVar(&flagPathAccum, "accumulated", false, "Use accumulated path cost (optimal paths)")
	pathCmd.Flags().IntVar(&flagPathLimit, "max-expansions", 0, "Stop after this many expansions (0 = unbounded)")
	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")
}

type pathQuery struct {
	level       int
	from, to    pathfind.Cell
	avoid       []pathfind.Cell
	penalty     int
	accumulated bool
	limit       int
}

func printPath(w io.Writer, q pathQuery) error {
	board, err := pacman.LevelBoard(q.level)
	if err != nil {
		return err
	}

	var opts []pathfind.Option
	if q.accumulated {
		opts = append(opts, pathfind.WithAccumulatedCost())
	}
	if q.limit > 0 {
		opts = append(opts, pathfind.WithMaxExpansions(q.limit))
	}
	res := pathfind.NewFinder(board.Grid(), opts...).Search(q.from, q.to, q.avoid, q.penalty)

	fmt.Fprintf(w, "Level %d (%s): %s -> %s\n", q.level, pacman.GetLevel(q.level-1).Name, q.from, q.to)
	fmt.Fprintln(w, board.Plot(q.from, q.to, res.Path))
	fmt.Fprintln(w)

	if !res.Found {
		reason := "no path"
		if res.Truncated {
			reason = "search truncated"
		}
		fmt.Fprintf(w, "%s (expanded %d)\n", reason, res.Expanded)
		return nil
	}

	dir, err := pathfind.DirectionTo(q.from, res.Path)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "length %d, first step %s, expanded %d\n", len(res.Path), dir, res.Expanded)
	return nil
}

// parseCell reads "col,row".
func parseCell(s string) (pathfind.Cell, error) {
	colStr, rowStr, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return pathfind.Cell{}, fmt.Errorf("cell %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return pathfind.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return pathfind.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return pathfind.C(col, row), nil
}

// parseCells reads "col,row;col,row". Empty input yields no cells.
func parseCells(s string) ([]pathfind.Cell, error) {
	var cells []pathfind.Cell
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := parseCell(part)
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}
	return cells, nil
}

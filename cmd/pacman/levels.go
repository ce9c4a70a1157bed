package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the campaign levels",
	Long:  `Shows every campaign level with its size and what it holds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printLevels(cmd.OutOrStdout())
	},
}

func printLevels(w io.Writer) error {
	fmt.Fprintln(w, "Campaign levels:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-3s  %-12s  %-6s  %7s  %5s  %6s  %6s\n", "#", "Name", "Size", "Pellets", "Megas", "Cherry", "Ghosts")
	fmt.Fprintf(w, "  %-3s  %-12s  %-6s  %7s  %5s  %6s  %6s\n", "-", "----", "----", "-------", "-----", "------", "------")

	for n := 1; n <= pacman.LevelCount(); n++ {
		b, err := pacman.LevelBoard(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-3d  %-12s  %-6s  %7d  %5d  %6d  %6d\n",
			n,
			pacman.GetLevel(n-1).Name,
			fmt.Sprintf("%dx%d", b.Width(), b.Height()),
			b.Count(pacman.ItemPellet),
			b.Count(pacman.ItemMegaPellet),
			b.Count(pacman.ItemCherry),
			len(b.GhostSpawns()),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	for _, g := range registry.List() {
		fmt.Fprintf(w, "  %-16s  %s\n", g.ID, g.Title)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pacman play --level N' to start from a level.")
	return nil
}

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathplay/internal/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all mini-games",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		return runList(cmd.OutOrStdout(), grade)
	},
}

func init() {
	listCmd.Flags().Int("grade", 0, "Only show games for this grade (1-5)")
}

func runList(w io.Writer, grade int) error {
	games := catalog.All()
	if grade != 0 {
		if grade < 1 || grade > 5 {
			return fmt.Errorf("invalid grade %d: must be 1-5", grade)
		}
		games = catalog.ByGrade(grade)
	}

	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return nil
	}

	maxIDLen := 2
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %-5s  %-10s  %s\n", maxIDLen, "ID", "Grade", "Category", "Name")
	fmt.Fprintf(w, "  %-*s  %-5s  %-10s  %s\n", maxIDLen, "--", "-----", "--------", "----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %-5d  %-10s  %s %s\n", maxIDLen, g.ID, g.Grade, g.Category, g.Icon, g.Name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mathplay generate <id>' to print a level.")
	return nil
}

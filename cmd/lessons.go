package cmd

import (
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "Browse the curriculum",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Progress(cmd.Context())
		if err != nil {
			return err
		}
		completed := p.CompletedSet()

		for _, subject := range curriculum.Subjects() {
			fmt.Printf("%s\n%s\n", subject.Name, strings.Repeat("─", len(subject.Name)))
			for _, unit := range subject.Units {
				fmt.Printf("  %s — %s\n", unit.ID, unit.Title)
				for _, l := range unit.Lessons {
					marker := " "
					switch {
					case completed[l.ID]:
						marker = "✓"
					case !curriculum.IsUnlocked(l.ID, completed):
						marker = "🔒"
					}
					fmt.Printf("    %s %-8s  %s\n", marker, l.ID, l.Title)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

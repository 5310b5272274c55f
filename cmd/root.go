package cmd

import (
	"fmt"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chemcat",
	Short: "AI science tutor with a cat attitude",
	Long:  "ChemCat — AI-native terminal app for practicing chemistry and anatomy with generated questions, streaks, and badges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides CHEMCAT_DB env var)")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(socialCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then CHEMCAT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp builds the full application for a command invocation.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return app.New(cmd.Context(), app.Options{DBPath: dbPath})
}

// runDashboard prints the learner's standing and what to practice next.
func runDashboard(cmd *cobra.Command) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	p, err := a.Progress(ctx)
	if err != nil {
		return err
	}

	fmt.Println("ChemCat")
	fmt.Printf("Streak: %d day(s)   XP today: %d   Lessons done: %d/%d\n",
		p.Streak, p.DailyXP, len(p.CompletedLessons), len(curriculum.AllLessons()))

	var next []curriculum.Lesson
	for _, l := range curriculum.UnlockedLessons(p.CompletedSet()) {
		if !p.IsCompleted(l.ID) {
			next = append(next, l)
		}
	}
	if len(next) == 0 {
		fmt.Println("\nEverything is complete. Try `chemcat review <unit-id>` to stay sharp.")
		return nil
	}

	fmt.Println("\nUp next:")
	for _, l := range next {
		fmt.Printf("  %-8s  %s\n", l.ID, l.Title)
	}
	fmt.Println("\nStart one with `chemcat practice <lesson-id>`.")
	return nil
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/progress"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

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

		ident, err := a.Store.ProfileRepo().Get(ctx, app.LocalProfileID)
		if err != nil {
			return err
		}

		fmt.Printf("Streak:          %d day(s)\n", p.Streak)
		fmt.Printf("Streak freezes:  %d\n", p.StreakFreezesAvailable)
		fmt.Printf("XP today:        %d / %d goal\n", p.DailyXP, ident.DailyGoal)
		fmt.Printf("Energy:          %d\n", p.Energy)
		fmt.Printf("Lessons done:    %d/%d\n", len(p.CompletedLessons), len(curriculum.AllLessons()))

		if len(p.EarnedBadgeIDs) > 0 {
			var names []string
			for _, id := range p.EarnedBadgeIDs {
				if b, ok := progress.BadgeByID(id); ok {
					names = append(names, b.Name)
				}
			}
			fmt.Printf("Badges:          %s\n", strings.Join(names, ", "))
		}
		if len(p.WeakTopics) > 0 {
			fmt.Println("\nWorth revisiting:")
			for _, topic := range p.WeakTopics {
				fmt.Printf("  • %s\n", topic)
			}
		}

		events, err := a.Store.EventRepo().RecentLessons(ctx, limit)
		if err != nil {
			return fmt.Errorf("query lesson events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		fmt.Println("\nRecent sessions")
		fmt.Printf("%-19s  %-30s  %6s  %5s\n", "When", "Lesson", "Score", "XP")
		fmt.Println(strings.Repeat("─", 68))
		for _, e := range events {
			title := e.LessonTitle
			if len(title) > 30 {
				title = title[:27] + "..."
			}
			fmt.Printf("%-19s  %-30s  %5d%%  %5d\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				title, e.Score, e.XPEarned)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}

package cmd

import (
	"fmt"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/store"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		avatar, _ := cmd.Flags().GetString("avatar")
		color, _ := cmd.Flags().GetString("color")
		goal, _ := cmd.Flags().GetInt("goal")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		repo := a.Store.ProfileRepo()

		if name != "" || avatar != "" || color != "" || goal > 0 {
			err := repo.SetIdentity(ctx, app.LocalProfileID, store.ProfileIdentity{
				Name:       name,
				Avatar:     avatar,
				ThemeColor: color,
				DailyGoal:  goal,
			})
			if err != nil {
				return err
			}
		}

		p, err := repo.Get(ctx, app.LocalProfileID)
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s\n", p.Avatar, p.Name)
		fmt.Printf("Theme:       %s\n", p.ThemeColor)
		fmt.Printf("Daily goal:  %d XP\n", p.DailyGoal)
		fmt.Printf("Streak:      %d day(s)\n", p.Streak)
		fmt.Printf("Lessons:     %d\n", p.LessonsCompleted)
		return nil
	},
}

func init() {
	profileCmd.Flags().String("name", "", "Display name")
	profileCmd.Flags().String("avatar", "", "Emoji avatar")
	profileCmd.Flags().String("color", "", "Theme color")
	profileCmd.Flags().Int("goal", 0, "Daily XP goal")

	rootCmd.AddCommand(profileCmd)
}

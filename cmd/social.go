package cmd

import (
	"fmt"
	"strings"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/store"
	"github.com/spf13/cobra"
)

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Leaderboard and friends",
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.Social.Leaderboard(cmd.Context())
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("Nobody on the leaderboard yet.")
			return nil
		}
		printProfiles(rows, true)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Find profiles by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.Social.Search(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Printf("No profiles match %q.\n", args[0])
			return nil
		}
		printProfiles(rows, false)
		return nil
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <profile-id>",
	Short: "Follow a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Social.Follow(cmd.Context(), app.LocalProfileID, args[0]); err != nil {
			return err
		}
		fmt.Printf("Now following %s.\n", args[0])
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <profile-id>",
	Short: "Unfollow a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Social.Unfollow(cmd.Context(), app.LocalProfileID, args[0]); err != nil {
			return err
		}
		fmt.Printf("Unfollowed %s.\n", args[0])
		return nil
	},
}

var followingCmd = &cobra.Command{
	Use:   "following",
	Short: "List profiles you follow",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		rows, err := a.Social.Following(cmd.Context(), app.LocalProfileID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("You aren't following anyone yet. Try `chemcat social search <name>`.")
			return nil
		}
		printProfiles(rows, false)
		return nil
	},
}

func printProfiles(rows []store.Profile, ranked bool) {
	if ranked {
		fmt.Printf("%4s  ", "Rank")
	}
	fmt.Printf("%-12s  %-24s  %6s  %7s\n", "ID", "Name", "Streak", "Lessons")
	fmt.Println(strings.Repeat("─", 60))
	for i, p := range rows {
		if ranked {
			fmt.Printf("%4d  ", i+1)
		}
		fmt.Printf("%-12s  %-24s  %6d  %7d\n", p.ID, p.Avatar+" "+p.Name, p.Streak, p.LessonsCompleted)
	}
}

func init() {
	socialCmd.AddCommand(leaderboardCmd)
	socialCmd.AddCommand(searchCmd)
	socialCmd.AddCommand(followCmd)
	socialCmd.AddCommand(unfollowCmd)
	socialCmd.AddCommand(followingCmd)
}

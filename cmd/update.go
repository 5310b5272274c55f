package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chemcat/chemcat/internal/selfupdate"
	"github.com/spf13/cobra"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update chemcat to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		err := checker.Update(ctx, version, func(msg string) {
			fmt.Println(msg)
		})
		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a source build; update it with `go install` instead.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("chemcat is up to date.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nthe install location is not writable; try: sudo chemcat update", err)
		default:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}

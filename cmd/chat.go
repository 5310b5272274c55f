package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/chat"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with ChemCat",
	Long: `Open a conversation with the ChemCat tutor.

The tutor remembers the conversation for the duration of the session.
Type "quit" or press Ctrl+D to leave.`,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.HasLLM() {
		return app.ErrNoProvider
	}

	ctx := cmd.Context()
	fmt.Println(chat.Greeting)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nyou> ")
		if !scanner.Scan() {
			fmt.Println()
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
			return nil
		}

		stream, err := a.Tutor.Send(ctx, line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "tutor error:", err)
			continue
		}

		fmt.Print("\nchemcat> ")
		var streamErr error
		for chunk := range stream {
			if chunk.Err != nil {
				streamErr = chunk.Err
				continue
			}
			fmt.Print(chunk.Text)
		}
		fmt.Println()
		if streamErr != nil {
			fmt.Fprintln(os.Stderr, "tutor error:", streamErr)
		}
	}
}

package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chemcat/chemcat/internal/app"
	"github.com/chemcat/chemcat/internal/curriculum"
	"github.com/chemcat/chemcat/internal/practice"
	"github.com/chemcat/chemcat/internal/progress"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice [lesson-id]",
	Short: "Practice a lesson",
	Long: `Generate practice questions for a lesson and answer them interactively.

Without a lesson ID, the first unlocked lesson you haven't completed is used.
Finishing the session counts as a lesson completion: it extends your streak,
awards XP, and may unlock badges.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPractice,
}

var reviewCmd = &cobra.Command{
	Use:   "review <unit-id>",
	Short: "Review a whole unit",
	Long: `Generate a mixed question set covering every lesson in a unit.

Reviews are for retention practice only: they never count as lesson
completions and don't touch your streak.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	practiceCmd.Flags().Bool("force", false, "Regenerate questions even if a cached set exists")
	reviewCmd.Flags().Bool("force", false, "Regenerate questions even if a cached set exists")
}

func runPractice(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	lessonID, err := pickLesson(ctx, a, args)
	if err != nil {
		return err
	}

	fmt.Println("Generating questions...")
	sess, err := a.StartLesson(ctx, lessonID, force)
	if errors.Is(err, app.ErrLessonLocked) {
		return fmt.Errorf("lesson %s is locked — finish its prerequisites first (see `chemcat lessons`)", lessonID)
	}
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	if err := runSession(scanner, sess); err != nil {
		return err
	}

	result, err := a.CompleteLesson(ctx, sess, lessonID)
	if err != nil {
		return err
	}
	printCompletion(os.Stdout, result)
	return nil
}

func runReview(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Println("Generating questions...")
	sess, err := a.StartUnitReview(cmd.Context(), args[0], force)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	if err := runSession(scanner, sess); err != nil {
		return err
	}
	fmt.Println("Review done. Reviews don't count toward your streak.")
	return nil
}

// pickLesson resolves the lesson to practice: the explicit argument, or
// the first unlocked lesson not yet completed.
func pickLesson(ctx context.Context, a *app.App, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	p, err := a.Progress(ctx)
	if err != nil {
		return "", err
	}
	for _, l := range curriculum.UnlockedLessons(p.CompletedSet()) {
		if !p.IsCompleted(l.ID) {
			return l.ID, nil
		}
	}
	return "", errors.New("all lessons complete — pick one explicitly to review it")
}

// runSession drives the question/answer loop, including retry rounds,
// and finishes the session.
func runSession(scanner *bufio.Scanner, sess *practice.Session) error {
	fmt.Printf("\n=== %s ===\n", sess.Title)

	for {
		for sess.Phase() == practice.PhaseActive {
			if err := askCurrent(scanner, sess); err != nil {
				return err
			}
		}

		summary := sess.Summarize()
		fmt.Printf("\n── Score: %d%% (%d/%d) ──\n", summary.Score, summary.Correct, summary.Total)

		if len(summary.Wrong) == 0 {
			break
		}
		fmt.Printf("Retry the %d you missed? [y/N] ", len(summary.Wrong))
		if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
			break
		}
		if err := sess.Retry(); err != nil {
			return err
		}
	}

	return sess.Finish()
}

// askCurrent displays the current question, reads an answer, and grades it.
func askCurrent(scanner *bufio.Scanner, sess *practice.Session) error {
	q := sess.Current()
	i, total := sess.Index()

	fmt.Printf("\n── Question %d/%d ──\n", i+1, total)
	fmt.Println(q.Prompt)
	for j, opt := range q.Options {
		fmt.Printf("  %d) %s\n", j+1, opt)
	}
	switch q.Kind {
	case practice.KindSelectAllApplies:
		fmt.Print("\nSelect all that apply (e.g. 1,3): ")
	default:
		fmt.Print("\nYour answer: ")
	}

	if !scanner.Scan() {
		return errors.New("input closed")
	}
	resp := parseResponse(q, scanner.Text())

	ok, err := sess.Check(resp)
	if errors.Is(err, practice.ErrEmptyAnswer) {
		fmt.Println("Please enter an answer.")
		return nil
	}
	if err != nil {
		return err
	}

	if ok {
		fmt.Println("\033[32m✓ Correct!\033[0m")
	} else {
		fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", strings.Join(q.Answer, ", "))
	}
	if q.Explanation != "" {
		fmt.Printf("Explanation: %s\n", q.Explanation)
	}

	return sess.Advance()
}

// parseResponse turns a raw input line into a Response. Option numbers
// are accepted wherever the question has options.
func parseResponse(q *practice.Question, line string) practice.Response {
	line = strings.TrimSpace(line)

	if q.Kind == practice.KindSelectAllApplies {
		var selected []string
		for _, part := range strings.Split(line, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			selected = append(selected, resolveOption(q, part))
		}
		return practice.Response{Selected: selected}
	}

	return practice.Response{Text: resolveOption(q, line)}
}

// resolveOption maps a 1-based option number to its text; anything else
// passes through unchanged.
func resolveOption(q *practice.Question, s string) string {
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= len(q.Options) {
		return q.Options[n-1]
	}
	return s
}

// printCompletion celebrates one badge at most: a backlog completion
// can unlock several at once, and the lowest milestone is the one
// announced. The rest stay in the earned list shown by `chemcat stats`.
func printCompletion(w io.Writer, result progress.CompletionResult) {
	fmt.Fprintf(w, "\n+%d XP", result.XPEarned)
	if result.NewStreak > result.OldStreak {
		fmt.Fprintf(w, "   Streak: %d day(s)!", result.NewStreak)
	}
	fmt.Fprintln(w)
	if len(result.Unlocked) > 0 {
		b := result.Unlocked[0]
		fmt.Fprintf(w, "🏅 Badge unlocked: %s — %s\n", b.Name, b.Description)
	}
}

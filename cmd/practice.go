package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepforge/prepforge/internal/achievements"
	"github.com/prepforge/prepforge/internal/questionbank"
	"github.com/prepforge/prepforge/internal/xp"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an adaptive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	practiceCmd.Flags().String("subject", "", "Limit to one subject: math, reading, or writing")
	practiceCmd.Flags().Int("count", 5, "Questions per batch")
}

// runPractice serves one adaptively selected batch and records each
// self-scored answer.
func runPractice(cmd *cobra.Command) error {
	ctx := cmd.Context()
	svcs, err := openServices(ctx, cmd)
	if err != nil {
		return err
	}
	defer svcs.Close()

	var filters questionbank.Filters
	if s, _ := cmd.Flags().GetString("subject"); s != "" {
		filters.Subject = questionbank.Subject(s)
	}
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		count = 5
	}

	batch, err := svcs.session.NextBatch(ctx, svcs.user, count, filters)
	if err != nil {
		return fmt.Errorf("select questions: %w", err)
	}
	if len(batch.Questions) == 0 {
		fmt.Println("No questions match those filters.")
		return nil
	}

	fmt.Printf("Practice batch of %d questions. Answer each, then mark yourself y (correct) or n (incorrect). q quits.\n\n", len(batch.Questions))

	reader := bufio.NewReader(os.Stdin)
	sessionStart := time.Now()
	answered := 0

	for i, q := range batch.Questions {
		fmt.Printf("%d/%d  [%s] %s - %s (%s, ~%ds)\n",
			i+1, len(batch.Questions), q.Subject.DisplayName(), q.Skill,
			q.Difficulty, q.Type, q.ExpectedDurationSeconds)

		started := time.Now()
		answer, quit := readAnswer(reader)
		if quit {
			break
		}
		elapsed := time.Since(started).Seconds()

		res, err := svcs.session.RecordAnswer(ctx, svcs.user, q, answer, elapsed, time.Now())
		if err != nil {
			return fmt.Errorf("record answer: %w", err)
		}
		answered++

		fmt.Printf("  %s  |  mastery %.0f%%  |  %s\n", verdict(answer), res.Mastery*100, res.Outcome.Award.Breakdown)
		reportOutcome(res.Outcome.LevelUp.LeveledUp, res.Outcome.LevelUp.ToLevel, res.Outcome.Unlocks)
		for _, rec := range res.FollowUps {
			fmt.Printf("  try next (%s): %s / %s [%s]\n", rec.Tag, rec.Question.Subject, rec.Question.Skill, rec.Question.Difficulty)
		}
		fmt.Println()
	}

	if answered == 0 {
		return nil
	}

	now := time.Now()
	streak, err := svcs.tracker.CurrentStreak(ctx, svcs.user, now)
	if err != nil {
		return fmt.Errorf("compute streak: %w", err)
	}

	minutes := int(time.Since(sessionStart).Minutes())
	out, err := svcs.tracker.RecordActivity(ctx, svcs.user, xp.Event{
		Kind:            xp.KindStudySession,
		BaseActivityKey: xp.KeySessionComplete30Min,
		DurationMinutes: minutes,
		StreakDays:      streak,
		IsWeekend:       now.Weekday() == time.Saturday || now.Weekday() == time.Sunday,
	}, now)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}

	fmt.Printf("Session complete: %s\n", out.Award.Breakdown)
	reportOutcome(out.LevelUp.LeveledUp, out.LevelUp.ToLevel, out.Unlocks)
	fmt.Printf("Total XP %d, level %d (%d/%d into next)\n",
		out.Progress.TotalXP, out.Progress.CurrentLevel,
		out.Progress.CurrentLevelXP, out.Progress.CurrentLevelXP+out.Progress.XPToNextLevel)
	return nil
}

func readAnswer(reader *bufio.Reader) (correct, quit bool) {
	for {
		fmt.Print("  correct? [y/n/q] ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, true
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, false
		case "n", "no":
			return false, false
		case "q", "quit":
			return false, true
		}
	}
}

func verdict(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}

func reportOutcome(leveledUp bool, toLevel int, unlocks []achievements.Unlock) {
	if leveledUp {
		fmt.Printf("  *** Level up! You reached level %d ***\n", toLevel)
	}
	for _, u := range unlocks {
		fmt.Printf("  *** Achievement unlocked: %s (+%d XP): %s ***\n",
			u.Achievement.Name, u.Achievement.XPReward, u.Achievement.Description)
	}
}

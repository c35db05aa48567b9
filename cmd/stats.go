package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepforge/prepforge/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show XP, level, and mastery statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcs, err := openServices(ctx, cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		now := time.Now()
		prog, err := svcs.tracker.Progress(ctx, svcs.user, now)
		if err != nil {
			return fmt.Errorf("fold progress: %w", err)
		}

		fmt.Printf("Profile: %s\n\n", svcs.user)
		fmt.Printf("Level %d  (%d XP into level, %d to next)\n",
			prog.CurrentLevel, prog.CurrentLevelXP, prog.XPToNextLevel)
		fmt.Printf("Total XP:   %d\n", prog.TotalXP)
		fmt.Printf("This week:  %d\n", prog.WeeklyXP)
		fmt.Printf("This month: %d\n", prog.MonthlyXP)
		if !prog.LastActivityAt.IsZero() {
			fmt.Printf("Last active: %s\n", prog.LastActivityAt.Format("2006-01-02 15:04"))
		}

		streak, err := svcs.tracker.CurrentStreak(ctx, svcs.user, now)
		if err != nil {
			return fmt.Errorf("compute streak: %w", err)
		}
		if streak > 0 {
			fmt.Printf("Streak: %d day(s)\n", streak)
		}

		latest, err := svcs.store.EventRepo().LatestMastery(ctx, svcs.user, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("load mastery: %w", err)
		}
		if len(latest) > 0 {
			sort.Slice(latest, func(i, j int) bool {
				if latest[i].Subject != latest[j].Subject {
					return latest[i].Subject < latest[j].Subject
				}
				return latest[i].Skill < latest[j].Skill
			})
			fmt.Println("\nSkill mastery:")
			for _, m := range latest {
				fmt.Printf("  %-8s %-20s %3.0f%%\n", m.Subject, m.Skill, m.Probability*100)
			}
		}

		achProgress, err := svcs.tracker.AchievementProgress(ctx, svcs.user, now)
		if err != nil {
			return fmt.Errorf("achievement progress: %w", err)
		}
		if len(achProgress) > 0 {
			fmt.Println("\nClosest achievements:")
			limit := 5
			if len(achProgress) < limit {
				limit = len(achProgress)
			}
			for _, p := range achProgress[:limit] {
				a, ok := svcs.catalog.Get(p.AchievementID)
				if !ok {
					continue
				}
				fmt.Printf("  %-20s %3.0f%%  %s\n", a.Name, p.ProgressPercent, a.Description)
			}
		}
		return nil
	},
}

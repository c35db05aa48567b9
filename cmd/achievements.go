package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List achievements and unlock status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		svcs, err := openServices(ctx, cmd)
		if err != nil {
			return err
		}
		defer svcs.Close()

		unlocked, err := svcs.store.EventRepo().UnlockedSet(ctx, svcs.user)
		if err != nil {
			return fmt.Errorf("load unlocks: %w", err)
		}

		fmt.Printf("Achievements (%d/%d unlocked)\n\n", len(unlocked), svcs.catalog.Len())
		for _, a := range svcs.catalog.All() {
			mark := " "
			if unlocked[a.ID] {
				mark = "x"
			}
			fmt.Printf("[%s] %-20s %-8s +%-5d %s\n", mark, a.Name, a.Tier, a.XPReward, a.Description)
		}
		return nil
	},
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/ben-spoonradio/examdrill/internal/ui/components"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded session results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sums, err := st.Results().Recent(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query history: %w", err)
		}

		if len(sums) == 0 {
			fmt.Println("No sessions recorded yet.")
			return nil
		}

		// Header.
		fmt.Printf("%-19s  %-12s  %-9s  %-7s  %s\n",
			"Started", "Outcome", "Completed", "Time", "Source")
		fmt.Println(strings.Repeat("─", 72))

		for _, sum := range sums {
			done := fmt.Sprintf("%d/%d", sum.Completed, sum.Total)
			fmt.Printf("%-19s  %-12s  %-9s  %-7s  %s\n",
				sum.StartedAt.Local().Format("2006-01-02 15:04:05"),
				sum.Outcome.String(),
				done,
				components.FormatClock(sum.Elapsed),
				sum.Source,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 10, "Maximum number of sessions to show (0 = all)")
}

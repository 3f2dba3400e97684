package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show the details of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		target, err := resolveSession(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		statusStr := "planned"
		if target.Status == models.StatusCompleted {
			statusStr = "completed"
		}

		fmt.Printf("%s — %s (%s)\n", target.Type, parser.FormatSessionDate(target.Date), statusStr)
		fmt.Printf("id: %s\n\n", target.ID)

		if len(target.Exercises) == 0 {
			fmt.Println("No exercises recorded for this session.")
			return
		}

		for _, ex := range target.Exercises {
			fmt.Printf("%s\n", ex.Name)
			for i, s := range ex.Series {
				fmt.Printf("  Set %d: %s @ %s (%s)\n", i+1,
					formatReps(s.Reps), formatWeight(s.Weight), formatRest(s.Rest))
			}
			fmt.Println()
		}
	},
}

func formatReps(reps *int) string {
	if reps == nil {
		return "— reps"
	}
	return fmt.Sprintf("%d reps", *reps)
}

func formatWeight(weight *float64) string {
	if weight == nil {
		return "— kg"
	}
	return fmt.Sprintf("%g kg", *weight)
}

func formatRest(rest *int) string {
	if rest == nil {
		return "no rest recorded"
	}
	return fmt.Sprintf("%ds rest", *rest)
}

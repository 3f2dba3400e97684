package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/db"
	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
	"github.com/nboyer/gymlog/internal/session"
	"github.com/nboyer/gymlog/internal/tui"
)

var todayCmd = &cobra.Command{
	Use:   "today [date]",
	Short: "Fill in the planned session for today (or a given date)",
	Long: `Open the completion form for the planned session of a date.

Examples:
  gymlog today              # today's planned session
  gymlog today 2025-06-01   # a specific date`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		dateArg := "today"
		if len(args) == 1 {
			dateArg = args[0]
		}
		date, err := parser.ParseSessionDate(dateArg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		planned, err := repo.FindByDateAndStatus(date, models.StatusPlanned)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				fmt.Printf("No planned session for %s.\n", parser.FormatSessionDate(date))
				fmt.Println("Use 'gymlog plan' to create one, or 'gymlog ls' to browse your history.")
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}

		runCompletionTUI(*planned)
	},
}

var completeCmd = &cobra.Command{
	Use:     "complete <session-id>",
	Aliases: []string{"fill"},
	Short:   "Fill in a planned session by id",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		target, err := resolveSession(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if target.Status != models.StatusPlanned {
			fmt.Printf("Session %s is already completed. Delete it if you want it gone.\n", shortID(target.ID))
			return
		}

		runCompletionTUI(*target)
	},
}

func runCompletionTUI(target models.Session) {
	completer := session.NewCompleter(repo)
	model := tui.NewCompleteModel(completer, target)
	if err := tui.RunCompleteTUI(model); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

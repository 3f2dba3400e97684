package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
	"github.com/nboyer/gymlog/internal/session"
	"github.com/nboyer/gymlog/internal/tui"
)

var planCmd = &cobra.Command{
	Use:     "plan",
	Aliases: []string{"new", "add"},
	Short:   "Plan a new gym session",
	Long: `Plan a new gym session for a date.

Modes:
  Interactive: gymlog plan (wizard)
  Quick: gymlog plan --date today --type Legs -e "Squat:3" -e "Leg press:4"

Each date holds at most one planned session; planning a second one for
the same date replaces the first after confirmation (--yes skips the
prompt).`,
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		exercises, _ := cmd.Flags().GetStringArray("exercise")
		if len(exercises) == 0 {
			runInteractivePlan(cmd)
			return
		}
		runDirectPlan(cmd, exercises)
	},
}

// runInteractivePlan starts the planning wizard
func runInteractivePlan(cmd *cobra.Command) {
	prefilled := make(map[string]string)
	if date, _ := cmd.Flags().GetString("date"); date != "" {
		prefilled["date"] = date
	}
	if sessionType, _ := cmd.Flags().GetString("type"); sessionType != "" {
		prefilled["type"] = sessionType
	}

	builder := session.NewBuilder(repo)
	model := tui.NewPlanModel(repo, builder, cfg.Defaults.Types, cfg.Defaults.Sets, prefilled)
	if err := tui.RunPlanTUI(model); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

// runDirectPlan creates the session from flags without the TUI
func runDirectPlan(cmd *cobra.Command, exerciseSpecs []string) {
	dateFlag, _ := cmd.Flags().GetString("date")
	if dateFlag == "" {
		dateFlag = "today"
	}
	date, err := parser.ParseSessionDate(dateFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	sessionType, _ := cmd.Flags().GetString("type")
	replaceWithoutAsking, _ := cmd.Flags().GetBool("yes")

	parsed, err := parser.ParseExercises(exerciseSpecs, cfg.Defaults.Sets)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	req := session.CreateRequest{Date: date, Type: sessionType}
	for _, pe := range parsed {
		req.Exercises = append(req.Exercises, session.PlannedExercise{Name: pe.Name, Sets: pe.Sets})
	}

	confirm := func(existing models.Session) bool {
		if replaceWithoutAsking {
			return true
		}
		return promptYesNo(fmt.Sprintf(
			"A planned session already exists for %s (%s). Replace it?",
			parser.FormatSessionDate(existing.Date), existing.Type))
	}

	created, err := session.NewBuilder(repo).Create(req, confirm)
	if err != nil {
		if errors.Is(err, session.ErrReplaceDeclined) {
			fmt.Println("Kept the existing planned session. Nothing saved.")
			return
		}
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("✅ Planned %s session for %s — id %s\n",
		created.Type, parser.FormatSessionDate(created.Date), shortID(created.ID))
	for i, ex := range created.Exercises {
		fmt.Printf("  %d. %s × %d sets\n", i+1, ex.Name, len(ex.Series))
	}
}

func init() {
	planCmd.Flags().StringP("date", "d", "", "Session date: yyyy-mm-dd, dd/mm/yyyy, today, tomorrow")
	planCmd.Flags().StringP("type", "t", "", "Session type (e.g. Legs, Full Body)")
	planCmd.Flags().StringArrayP("exercise", "e", nil, "Planned exercise as NAME:SETS (repeatable)")
	planCmd.Flags().BoolP("yes", "y", false, "Replace an existing planned session without asking")
}

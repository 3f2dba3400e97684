package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/models"
	"github.com/nboyer/gymlog/internal/parser"
	"github.com/nboyer/gymlog/internal/session"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sessions",
	Long:    "List sessions with optional filters for date, type and status, most recent first",
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		filter, err := filterFromFlags(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		sessions, err := session.NewQuery(repo).List(filter)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			renderSessionsJSON(sessions)
			return
		}

		if len(sessions) == 0 {
			fmt.Println("No sessions found. Use 'gymlog plan' to plan your first one.")
			return
		}

		renderSessionsTable(sessions)
	},
}

// filterFromFlags builds the query filter from the shared ls flags
func filterFromFlags(cmd *cobra.Command) (session.Filter, error) {
	var filter session.Filter

	if dateFlag, _ := cmd.Flags().GetString("date"); dateFlag != "" {
		date, err := parser.ParseSessionDate(dateFlag)
		if err != nil {
			return filter, err
		}
		filter.Date = date
	}

	filter.Type, _ = cmd.Flags().GetString("type")

	if statusFlag, _ := cmd.Flags().GetString("status"); statusFlag != "" {
		status := models.Status(strings.ToLower(statusFlag))
		if !status.IsValid() {
			return filter, fmt.Errorf("invalid status %q, use planned or completed", statusFlag)
		}
		filter.Status = status
	}

	return filter, nil
}

// renderSessionsTable prints sessions the way the session cards used
// to read: type, date, status and exercise count.
func renderSessionsTable(sessions []models.Session) {
	fmt.Printf("%-10s %-12s %-24s %-11s %s\n", "ID", "DATE", "TYPE", "STATUS", "EXERCISES")
	fmt.Println(strings.Repeat("-", 70))

	for _, s := range sessions {
		sessionType := s.Type
		if len(sessionType) > 22 {
			sessionType = sessionType[:19] + "..."
		}

		var statusStr string
		if s.Status == models.StatusCompleted {
			statusStr = "✓ done"
		} else {
			statusStr = "○ planned"
		}

		fmt.Printf("%-10s %-12s %-24s %-11s %d\n",
			shortID(s.ID),
			s.Date,
			sessionType,
			statusStr,
			len(s.Exercises))
	}
}

// renderSessionsJSON outputs sessions as JSON
func renderSessionsJSON(sessions []models.Session) {
	type listResult struct {
		Count    int              `json:"count"`
		Sessions []models.Session `json:"sessions"`
	}

	jsonBytes, err := json.MarshalIndent(listResult{Count: len(sessions), Sessions: sessions}, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

func init() {
	listCmd.Flags().StringP("date", "d", "", "Filter by exact date")
	listCmd.Flags().StringP("type", "t", "", "Filter by type substring (case-insensitive)")
	listCmd.Flags().StringP("status", "s", "", "Filter by status: planned, completed")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}

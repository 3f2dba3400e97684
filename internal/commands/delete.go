package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/parser"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a session",
	Long: `Delete a session, planned or completed. This is permanent; a
completed session cannot be restored and a deleted id is never reused.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		initApp()

		target, err := resolveSession(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			question := fmt.Sprintf("Delete the %s session of %s?",
				target.Type, parser.FormatSessionDate(target.Date))
			if !promptYesNo(question) {
				fmt.Println("Nothing deleted.")
				return
			}
		}

		if err := repo.Delete(target.ID); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted %s session of %s\n",
			target.Type, parser.FormatSessionDate(target.Date))
	},
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Delete without asking")
}

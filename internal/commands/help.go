package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for gymlog",
	Long:  `Display detailed help for all gymlog commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
 ██████╗ ██╗   ██╗███╗   ███╗██╗      ██████╗  ██████╗
██╔════╝ ╚██╗ ██╔╝████╗ ████║██║     ██╔═══██╗██╔════╝
██║  ███╗ ╚████╔╝ ██╔████╔██║██║     ██║   ██║██║  ███╗
██║   ██║  ╚██╔╝  ██║╚██╔╝██║██║     ██║   ██║██║   ██║
╚██████╔╝   ██║   ██║ ╚═╝ ██║███████╗╚██████╔╝╚██████╔╝
 ╚═════╝    ╚═╝   ╚═╝     ╚═╝╚══════╝ ╚═════╝  ╚═════╝

gymlog - plan, log and browse your gym sessions

COMMANDS:

  plan                    Plan a new session (interactive wizard)
    -d, --date            Session date (yyyy-mm-dd, dd/mm/yyyy, today)
    -t, --type            Session type (Legs, Full Body, ...)
    -e, --exercise        Planned exercise as NAME:SETS, repeatable
    -y, --yes             Replace an existing planned session silently

    Example:
      gymlog plan -d today -t Legs -e "Squat:3" -e "Leg press:4"

  today [date]            Fill in the planned session of a date
  complete <id>           Fill in a planned session by id

    In the form:
      tab/enter     Next field
      ctrl+a        Add an extra set
      ctrl+d        Drop the current set
      ctrl+s        Validate and save

  ls                      List sessions, most recent first
    -d, --date            Filter by exact date
    -t, --type            Filter by type substring
    -s, --status          Filter by status: planned|completed
    --json                JSON output

  show <id>               Show a session set by set
  rm <id>                 Delete a session permanently
    -f, --force           Skip the confirmation prompt

  version                 Show version information

Ids can be abbreviated to any unique prefix, e.g. the 8 characters
shown by 'gymlog ls'.

Data lives in ~/.gymlog; see config.yaml there for the session type
picklist and the default set count.
`)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gymlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

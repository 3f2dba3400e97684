package commands

import (
	"github.com/spf13/cobra"

	"github.com/nboyer/gymlog/internal/config"
	"github.com/nboyer/gymlog/internal/db"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gymlog",
	Short: "A CLI workout planner and log",
	Long: `gymlog is a command-line workout tracker.
Plan a gym session ahead of time, fill in reps and weights while you
train, and browse your history with filters — all stored locally.`,
}

var (
	cfg  config.Config
	repo *db.Repository
)

// initApp loads config, opens the database and wires the repository.
// Panics on failure, there is nothing useful to do without storage.
func initApp() {
	c, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg = c
	if err := db.Initialize(cfg.Database.Path); err != nil {
		panic(err)
	}
	repo = db.NewRepository(db.NewSessionStore(db.NewKV()))
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands here
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}

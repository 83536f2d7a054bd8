package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HERYORDEJY/FitQii/internal/config"
	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/query"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfg    *config.Config
	repo   *db.Repository
	client *query.Client
)

var rootCmd = &cobra.Command{
	Use:   "fitqii",
	Short: "A CLI session scheduler",
	Long: `fitqii keeps a local calendar of sessions: schedule them, browse today's
and this week's agenda, search past sessions, and move them through their
lifecycle, all from the terminal.`,
}

// initServices loads configuration, opens the database and builds the single
// repository and query client every command shares.
func initServices() error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg = loaded

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	logger := zap.NewNop()
	if os.Getenv("FITQII_DEBUG") != "" {
		logger, _ = zap.NewDevelopment()
	}

	repo = db.NewRepository(gdb, logger)
	client = query.NewClient(repo, cfg.QueryConfig(), logger)
	return nil
}

// withServices wraps a command function to initialize the services first.
func withServices(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := initServices(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer client.Close()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fitqii %s (commit %s, built %s)\n", version, commit, date)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

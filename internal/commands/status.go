package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store health and session count",
	Run: withServices(func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		if !client.Health(ctx) {
			fmt.Println("Database: unreachable")
			return
		}
		fmt.Println("Database: ok")
		fmt.Printf("Path: %s\n", cfg.DatabasePath)

		count, err := client.Count(ctx)
		if err != nil {
			fmt.Printf("Error counting sessions: %v\n", err)
			return
		}
		fmt.Printf("Sessions: %d\n", count)
	}),
}

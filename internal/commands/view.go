package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [session-id]",
	Short: "Show one session in full",
	Args:  cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := client.ByID(context.Background(), id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Printf("Session #%d not found\n", id)
			return
		}

		printSessionDetail(session)
	}),
}

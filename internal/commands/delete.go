package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm [session-id]",
	Aliases: []string{"delete"},
	Short:   "Delete a session permanently",
	Long: `Delete a session. Only upcoming sessions can be deleted unless --force
is passed; deletion is permanent either way.`,
	Args: cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		session, err := client.ByID(ctx, id)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if session == nil {
			fmt.Printf("Session #%d not found\n", id)
			return
		}

		force, _ := cmd.Flags().GetBool("force")
		if !session.Status.IsEditable() && !force {
			fmt.Printf("Session #%d is %s; pass --force to delete it anyway\n", id, session.Status)
			return
		}

		if err := client.Delete(ctx, id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("🗑  Deleted session #%d: %s\n", id, session.Name)
	}),
}

func init() {
	deleteCmd.Flags().BoolP("force", "f", false, "Delete even if the session is not upcoming")
}
